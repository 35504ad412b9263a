package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// ListActive returns every invoice that is not soft-deleted.
func (r *InvoiceRepository) ListActive() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("action <> ?", models.ActionDeleted).Find(&invoices).Error
	return invoices, err
}

// GetByID fetches by primary key regardless of action; callers decide
// how to treat soft-deleted rows.
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *InvoiceRepository) Save(invoice *models.Invoice) error {
	return r.db.Save(invoice).Error
}

// LastNumbered returns the most recently created invoice that carries a
// number, or nil if none exists yet.
func (r *InvoiceRepository) LastNumbered() (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.
		Where("invoice_number <> ''").
		Order("created_at DESC").
		First(&invoice).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).
		Where("action <> ?", models.ActionDeleted).
		Count(&count).Error
	return count, err
}

func (r *InvoiceRepository) SumActiveAmount() (float64, error) {
	var total float64
	err := r.db.Model(&models.Invoice{}).
		Where("action <> ?", models.ActionDeleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// MonthTotal is one month's bucket in the dashboard chart.
type MonthTotal struct {
	Month int
	Total float64
}

// MonthlyTotals groups invoice amounts by calendar month of the invoice
// date. Soft-deleted rows are not filtered here; the dashboard has
// always charted them.
func (r *InvoiceRepository) MonthlyTotals() ([]MonthTotal, error) {
	var totals []MonthTotal
	err := r.db.Model(&models.Invoice{}).
		Select("EXTRACT(MONTH FROM invoice_date)::int AS month, SUM(amount) AS total").
		Group("month").
		Scan(&totals).Error
	return totals, err
}

// Recent returns the latest invoices by invoice date, soft-deleted rows
// included, matching the dashboard's historical behavior.
func (r *InvoiceRepository) Recent(limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Order("invoice_date DESC").Limit(limit).Find(&invoices).Error
	return invoices, err
}
