package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/managers"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/processor"
)

type ExpenseHandler struct {
	processor *processor.ExpenseProcessor
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{processor: processor.NewExpenseProcessor(db)}
}

func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	defer badRequestOnPanic(c)
	resp := h.processor.ProcessGet(auth.IdentityFrom(c))
	c.JSON(http.StatusOK, resp)
}

func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	defer badRequestOnPanic(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense ID"})
		return
	}
	resp := h.processor.ProcessGetByID(id, auth.IdentityFrom(c))
	c.JSON(http.StatusOK, resp)
}

func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	defer badRequestOnPanic(c)
	var model managers.ExpenseAddModel
	if err := c.ShouldBindJSON(&model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp := h.processor.ProcessPost(&model, auth.IdentityFrom(c))
	c.JSON(http.StatusOK, resp)
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	defer badRequestOnPanic(c)
	var model managers.ExpenseUpdateModel
	if err := c.ShouldBindJSON(&model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp := h.processor.ProcessPut(&model, auth.IdentityFrom(c))
	c.JSON(http.StatusOK, resp)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	defer badRequestOnPanic(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense ID"})
		return
	}
	resp := h.processor.ProcessDelete(id, auth.IdentityFrom(c))
	c.JSON(http.StatusOK, resp)
}
