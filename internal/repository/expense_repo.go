package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) ListActive() ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("action <> ?", models.ActionDeleted).Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

func (r *ExpenseRepository) Save(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

// TitleExists reports whether a non-deleted expense already uses the
// title (trimmed comparison). excludeID skips the row being updated;
// pass uuid.Nil on create.
func (r *ExpenseRepository) TitleExists(title string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := r.db.Model(&models.Expense{}).
		Where("TRIM(title) = ?", title).
		Where("action <> ?", models.ActionDeleted)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *ExpenseRepository) LastNumbered() (*models.Expense, error) {
	var expense models.Expense
	err := r.db.
		Where("expense_number <> ''").
		Order("created_at DESC").
		First(&expense).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) SumActiveAmount() (float64, error) {
	var total float64
	err := r.db.Model(&models.Expense{}).
		Where("action <> ?", models.ActionDeleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ExpenseRepository) MonthlyTotals() ([]MonthTotal, error) {
	var totals []MonthTotal
	err := r.db.Model(&models.Expense{}).
		Select("EXTRACT(MONTH FROM expense_date)::int AS month, SUM(amount) AS total").
		Group("month").
		Scan(&totals).Error
	return totals, err
}

func (r *ExpenseRepository) Recent(limit int) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Order("expense_date DESC").Limit(limit).Find(&expenses).Error
	return expenses, err
}
