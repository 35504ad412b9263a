package managers

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/api"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/repository"
)

type ExpenseBaseModel struct {
	Title         string        `json:"title" binding:"required"`
	Amount        float64       `json:"amount"`
	ExpenseNumber string        `json:"expenseNumber"`
	ExpenseDate   time.Time     `json:"expenseDate"`
	Category      string        `json:"category"`
	PaymentMethod string        `json:"paymentMethod"`
	Notes         string        `json:"notes"`
	Action        models.Action `json:"action"`
}

type ExpenseAddModel struct {
	ExpenseBaseModel
}

type ExpenseUpdateModel struct {
	ExpenseBaseModel
	ID uuid.UUID `json:"id" binding:"required"`
}

type ExpenseManager struct {
	repo      *repository.ExpenseRepository
	changeLog *repository.ChangeLogRepository
	logger    *slog.Logger
}

func NewExpenseManager(db *gorm.DB) *ExpenseManager {
	return &ExpenseManager{
		repo:      repository.NewExpenseRepository(db),
		changeLog: repository.NewChangeLogRepository(db),
		logger:    slog.Default().With("component", "expense-manager"),
	}
}

func (m *ExpenseManager) List(actor auth.Identity) *api.Response {
	expenses, err := m.repo.ListActive()
	if err != nil {
		return api.ServerError(err)
	}
	if len(expenses) == 0 {
		return api.NotFound("No record found")
	}
	return api.OK("", expenses)
}

func (m *ExpenseManager) GetByID(id uuid.UUID, actor auth.Identity) *api.Response {
	expense, err := m.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && expense.Action.Deleted()) {
		return api.NotFound("Expense not found")
	}
	if err != nil {
		return api.ServerError(err)
	}
	return api.OK("", expense)
}

func (m *ExpenseManager) Create(model *ExpenseAddModel, actor auth.Identity) *api.Response {
	if !actor.IsAdmin() {
		return api.Unauthorized("Only admin can create expenses")
	}

	if model.Amount < 0 {
		return api.BadRequest("Invalid amount")
	}

	exists, err := m.repo.TitleExists(strings.TrimSpace(model.Title), uuid.Nil)
	if err != nil {
		return api.ServerError(err)
	}
	if exists {
		return api.Conflict("Title already exists", "Title already exist")
	}

	expense := models.Expense{
		ID:            uuid.New(),
		Title:         model.Title,
		Amount:        model.Amount,
		ExpenseNumber: model.ExpenseNumber,
		ExpenseDate:   model.ExpenseDate,
		Category:      model.Category,
		PaymentMethod: model.PaymentMethod,
		Notes:         model.Notes,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     actor.UserID,
		Action:        models.ActionAdded,
	}
	if err := m.repo.Create(&expense); err != nil {
		return api.ServerError(err)
	}
	m.audit(&expense, models.ActionAdded, actor)
	return api.OK("Expense created successfully", nil)
}

func (m *ExpenseManager) Update(model *ExpenseUpdateModel, actor auth.Identity) *api.Response {
	if !actor.IsAdmin() {
		return api.Unauthorized("Only admin can update expenses")
	}

	expense, err := m.repo.GetByID(model.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && expense.Action.Deleted()) {
		return api.NotFound("Expense not found")
	}
	if err != nil {
		return api.ServerError(err)
	}

	exists, err := m.repo.TitleExists(strings.TrimSpace(model.Title), model.ID)
	if err != nil {
		return api.ServerError(err)
	}
	if exists {
		return api.Conflict("Title already exists")
	}

	now := time.Now().UTC()
	expense.Title = model.Title
	expense.Amount = model.Amount
	expense.ExpenseDate = model.ExpenseDate
	expense.Category = model.Category
	expense.PaymentMethod = model.PaymentMethod
	expense.Notes = model.Notes
	expense.UpdatedAt = &now
	expense.UpdatedBy = &actor.UserID
	// Action comes from the caller, not forced to "E" here.
	expense.Action = model.Action

	if err := m.repo.Save(expense); err != nil {
		return api.ServerError(err)
	}
	m.audit(expense, models.ActionEdited, actor)
	return api.OK("Expense updated successfully", nil)
}

func (m *ExpenseManager) Delete(id uuid.UUID, actor auth.Identity) *api.Response {
	if !actor.IsAdmin() {
		return api.Unauthorized("Only admin can delete expenses")
	}

	expense, err := m.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && expense.Action.Deleted()) {
		return api.NotFound("Expense not found")
	}
	if err != nil {
		return api.ServerError(err)
	}

	now := time.Now().UTC()
	expense.Action = models.ActionDeleted
	expense.DeletedAt = &now
	expense.DeletedBy = &actor.UserID

	if err := m.repo.Save(expense); err != nil {
		return api.ServerError(err)
	}
	m.audit(expense, models.ActionDeleted, actor)
	return api.OK("Expense deleted successfully", nil)
}

func (m *ExpenseManager) audit(expense *models.Expense, action models.Action, actor auth.Identity) {
	if err := m.changeLog.Append("Expense", expense.ID, action, actor.UserID, expense); err != nil {
		m.logger.Warn("change log append failed",
			"operation", "audit", "entity_id", expense.ID, "error", err)
	}
}
