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

type InvoiceHandler struct {
	processor *processor.InvoiceProcessor
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{processor: processor.NewInvoiceProcessor(db)}
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	defer badRequestOnPanic(c)
	resp := h.processor.ProcessGet(auth.IdentityFrom(c))
	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	defer badRequestOnPanic(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	resp := h.processor.ProcessGetByID(id, auth.IdentityFrom(c))
	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) AddInvoice(c *gin.Context) {
	defer badRequestOnPanic(c)
	var model managers.InvoiceAddModel
	if err := c.ShouldBindJSON(&model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp := h.processor.ProcessPost(&model, auth.IdentityFrom(c))
	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	defer badRequestOnPanic(c)
	var model managers.InvoiceUpdateModel
	if err := c.ShouldBindJSON(&model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp := h.processor.ProcessPut(&model, auth.IdentityFrom(c))
	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	defer badRequestOnPanic(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	resp := h.processor.ProcessDelete(id, auth.IdentityFrom(c))
	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) DownloadCSV(c *gin.Context) {
	csvBytes, err := h.processor.GenerateCSV(auth.IdentityFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="Invoices.csv"`)
	c.Data(http.StatusOK, "text/csv", csvBytes)
}
