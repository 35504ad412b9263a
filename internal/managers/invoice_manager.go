package managers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/api"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/repository"
)

type InvoiceBaseModel struct {
	Title         string        `json:"title" binding:"required"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Amount        float64       `json:"amount"`
	CustomerName  string        `json:"customerName" binding:"required"`
	InvoiceDate   time.Time     `json:"invoiceDate"`
	Action        models.Action `json:"action"`
	Remarks       string        `json:"remarks"`
}

type InvoiceAddModel struct {
	InvoiceBaseModel
}

type InvoiceUpdateModel struct {
	InvoiceBaseModel
	ID uuid.UUID `json:"id" binding:"required"`
}

type InvoiceManager struct {
	repo      *repository.InvoiceRepository
	changeLog *repository.ChangeLogRepository
	logger    *slog.Logger
}

func NewInvoiceManager(db *gorm.DB) *InvoiceManager {
	return &InvoiceManager{
		repo:      repository.NewInvoiceRepository(db),
		changeLog: repository.NewChangeLogRepository(db),
		logger:    slog.Default().With("component", "invoice-manager"),
	}
}

// List returns all non-deleted invoices. An empty table is reported as
// 404, not an empty 200 list; the dashboard depends on that.
func (m *InvoiceManager) List(actor auth.Identity) *api.Response {
	invoices, err := m.repo.ListActive()
	if err != nil {
		return api.ServerError(err)
	}
	if len(invoices) == 0 {
		return api.NotFound("No record found")
	}
	return api.OK("", invoices)
}

func (m *InvoiceManager) GetByID(id uuid.UUID, actor auth.Identity) *api.Response {
	invoice, err := m.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && invoice.Action.Deleted()) {
		return api.NotFound("Invoice not found")
	}
	if err != nil {
		return api.ServerError(err)
	}
	return api.OK("", invoice)
}

func (m *InvoiceManager) Create(model *InvoiceAddModel, actor auth.Identity) *api.Response {
	if !actor.IsAdmin() {
		return api.Unauthorized("Only admin can create invoices")
	}

	invoice := models.Invoice{
		ID:            uuid.New(),
		Title:         model.Title,
		InvoiceNumber: model.InvoiceNumber,
		InvoiceDate:   model.InvoiceDate,
		CustomerName:  model.CustomerName,
		Amount:        model.Amount,
		Remarks:       model.Remarks,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     actor.UserID,
		Action:        models.ActionAdded,
	}
	if err := m.repo.Create(&invoice); err != nil {
		return api.ServerError(err)
	}
	m.audit(&invoice, models.ActionAdded, actor)
	return api.OK("Invoice created successfully", nil)
}

func (m *InvoiceManager) Update(model *InvoiceUpdateModel, actor auth.Identity) *api.Response {
	if !actor.IsAdmin() {
		return api.Unauthorized("Only admin can update invoices")
	}

	invoice, err := m.repo.GetByID(model.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && invoice.Action.Deleted()) {
		return api.NotFound("Invoice not found")
	}
	if err != nil {
		return api.ServerError(err)
	}

	now := time.Now().UTC()
	invoice.Title = model.Title
	invoice.Amount = model.Amount
	invoice.CustomerName = model.CustomerName
	invoice.InvoiceDate = model.InvoiceDate
	invoice.Remarks = model.Remarks
	invoice.UpdatedAt = &now
	invoice.UpdatedBy = &actor.UserID
	// Action comes from the caller, not forced to "E" here.
	invoice.Action = model.Action

	if err := m.repo.Save(invoice); err != nil {
		return api.ServerError(err)
	}
	m.audit(invoice, models.ActionEdited, actor)
	return api.OK("Invoice updated successfully", nil)
}

func (m *InvoiceManager) Delete(id uuid.UUID, actor auth.Identity) *api.Response {
	if !actor.IsAdmin() {
		return api.Unauthorized("Only admin can delete invoices")
	}

	invoice, err := m.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && invoice.Action.Deleted()) {
		return api.NotFound("Invoice not found")
	}
	if err != nil {
		return api.ServerError(err)
	}

	now := time.Now().UTC()
	invoice.Action = models.ActionDeleted
	invoice.DeletedAt = &now
	invoice.DeletedBy = &actor.UserID

	if err := m.repo.Save(invoice); err != nil {
		return api.ServerError(err)
	}
	m.audit(invoice, models.ActionDeleted, actor)
	return api.OK("Invoice deleted successfully", nil)
}

// audit appends a change-log row; failures are logged, never surfaced.
func (m *InvoiceManager) audit(invoice *models.Invoice, action models.Action, actor auth.Identity) {
	if err := m.changeLog.Append("Invoice", invoice.ID, action, actor.UserID, invoice); err != nil {
		m.logger.Warn("change log append failed",
			"operation", "audit", "entity_id", invoice.ID, "error", err)
	}
}
