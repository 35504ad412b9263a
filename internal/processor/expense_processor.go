package processor

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/api"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/managers"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/repository"
)

// ErrNotImplemented marks operations an entity does not support.
var ErrNotImplemented = errors.New("not implemented")

type ExpenseViewModel struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Amount        float64       `json:"amount"`
	ExpenseNumber string        `json:"expenseNumber"`
	ExpenseDate   time.Time     `json:"expenseDate"`
	Category      string        `json:"category"`
	PaymentMethod string        `json:"paymentMethod"`
	Notes         string        `json:"notes"`
	Action        models.Action `json:"action"`
}

type ExpenseViewByIDModel struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Amount        float64       `json:"amount"`
	ExpenseNumber string        `json:"expenseNumber"`
	ExpenseDate   time.Time     `json:"expenseDate"`
	Category      string        `json:"category"`
	PaymentMethod string        `json:"paymentMethod"`
	Notes         string        `json:"notes"`
	Action        models.Action `json:"action"`
}

type ExpenseProcessor struct {
	manager *managers.ExpenseManager
	repo    *repository.ExpenseRepository
}

func NewExpenseProcessor(db *gorm.DB) *ExpenseProcessor {
	return &ExpenseProcessor{
		manager: managers.NewExpenseManager(db),
		repo:    repository.NewExpenseRepository(db),
	}
}

func (p *ExpenseProcessor) ProcessGet(actor auth.Identity) *api.Response {
	resp := p.manager.List(actor)
	if resp.Code() != 200 {
		return resp
	}
	expenses, ok := resp.Data.([]models.Expense)
	if !ok {
		return resp
	}
	views := make([]ExpenseViewModel, 0, len(expenses))
	for _, exp := range expenses {
		views = append(views, ExpenseViewModel{
			ID:            exp.ID,
			Title:         exp.Title,
			Amount:        exp.Amount,
			ExpenseNumber: exp.ExpenseNumber,
			ExpenseDate:   exp.ExpenseDate,
			PaymentMethod: exp.PaymentMethod,
			Category:      exp.Category,
			Notes:         exp.Notes,
		})
	}
	resp.Data = views
	return resp
}

func (p *ExpenseProcessor) ProcessGetByID(id uuid.UUID, actor auth.Identity) *api.Response {
	resp := p.manager.GetByID(id, actor)
	if resp.Code() != 200 {
		return resp
	}
	exp, ok := resp.Data.(*models.Expense)
	if !ok {
		return resp
	}
	resp.Data = ExpenseViewByIDModel{
		ID:            exp.ID,
		Title:         exp.Title,
		Amount:        exp.Amount,
		ExpenseNumber: exp.ExpenseNumber,
		ExpenseDate:   exp.ExpenseDate,
		PaymentMethod: exp.PaymentMethod,
		Category:      exp.Category,
		Notes:         exp.Notes,
	}
	return resp
}

func (p *ExpenseProcessor) ProcessPost(model *managers.ExpenseAddModel, actor auth.Identity) *api.Response {
	last, err := p.repo.LastNumbered()
	if err != nil {
		panic(err)
	}
	lastNumber := ""
	if last != nil {
		lastNumber = last.ExpenseNumber
	}
	model.ExpenseNumber = nextSequenceNumber(lastNumber)
	return p.manager.Create(model, actor)
}

func (p *ExpenseProcessor) ProcessPut(model *managers.ExpenseUpdateModel, actor auth.Identity) *api.Response {
	return p.manager.Update(model, actor)
}

func (p *ExpenseProcessor) ProcessDelete(id uuid.UUID, actor auth.Identity) *api.Response {
	return p.manager.Delete(id, actor)
}

// GenerateCSV is not offered for expenses.
func (p *ExpenseProcessor) GenerateCSV(actor auth.Identity) ([]byte, error) {
	return nil, ErrNotImplemented
}
