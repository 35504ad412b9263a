package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/api"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/managers"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/repository"
)

type ChangeLogHandler struct {
	changeLog *repository.ChangeLogRepository
}

func NewChangeLogHandler(db *gorm.DB) *ChangeLogHandler {
	return &ChangeLogHandler{changeLog: repository.NewChangeLogRepository(db)}
}

// GetForEntity returns the audit trail of one row, newest first.
// Admin only.
func (h *ChangeLogHandler) GetForEntity(c *gin.Context) {
	actor := auth.IdentityFrom(c)
	if !actor.IsAdmin() {
		c.JSON(http.StatusOK, api.Unauthorized("Only admin can view change logs"))
		return
	}

	module := managers.Module(c.Param("entity"))
	if !module.Valid() {
		c.JSON(http.StatusOK, api.BadRequest("Unknown entity"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entity ID"})
		return
	}

	entries, err := h.changeLog.ListForEntity(string(module), id)
	if err != nil {
		c.JSON(http.StatusOK, api.ServerError(err))
		return
	}
	c.JSON(http.StatusOK, api.OK("", entries))
}
