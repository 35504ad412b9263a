package handler

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/repository"
)

type DashboardHandler struct {
	invoices *repository.InvoiceRepository
	expenses *repository.ExpenseRepository
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		invoices: repository.NewInvoiceRepository(db),
		expenses: repository.NewExpenseRepository(db),
	}
}

type chartPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type recentInvoice struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	CustomerName  string  `json:"customerName"`
	Amount        float64 `json:"amount"`
	Remarks       string  `json:"remarks"`
}

type recentExpense struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	ExpenseDate time.Time `json:"expenseDate"`
}

// GetDashboardData aggregates the landing-page numbers: headline stats
// over non-deleted rows, the month-bucketed income/expense series, and
// the five most recent documents of each kind.
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	totalInvoices, err := h.invoices.CountActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalExpenses, err := h.expenses.SumActiveAmount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalRevenue, err := h.invoices.SumActiveAmount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	monthlyBalance := totalRevenue - totalExpenses

	incomeByMonth, err := h.invoices.MonthlyTotals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	expensesByMonth, err := h.expenses.MonthlyTotals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	expenseTotals := make(map[int]float64, len(expensesByMonth))
	for _, e := range expensesByMonth {
		expenseTotals[e.Month] = e.Total
	}
	// Months with expenses but no invoices are dropped, like the
	// original left join from the income side.
	sort.Slice(incomeByMonth, func(i, j int) bool { return incomeByMonth[i].Month < incomeByMonth[j].Month })
	chartData := make([]chartPoint, 0, len(incomeByMonth))
	for _, inc := range incomeByMonth {
		chartData = append(chartData, chartPoint{
			Month:    time.Month(inc.Month).String()[:3],
			Income:   inc.Total,
			Expenses: expenseTotals[inc.Month],
		})
	}

	invoices, err := h.invoices.Recent(5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	recentInvoices := make([]recentInvoice, 0, len(invoices))
	for _, inv := range invoices {
		recentInvoices = append(recentInvoices, recentInvoice{
			InvoiceNumber: inv.InvoiceNumber,
			CustomerName:  inv.CustomerName,
			Amount:        inv.Amount,
			Remarks:       inv.Remarks,
		})
	}

	expenses, err := h.expenses.Recent(5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	recentExpenses := make([]recentExpense, 0, len(expenses))
	for _, exp := range expenses {
		recentExpenses = append(recentExpenses, recentExpense{
			ID:          exp.ID,
			Category:    exp.Category,
			Amount:      exp.Amount,
			ExpenseDate: exp.ExpenseDate,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"totalInvoices":  totalInvoices,
			"totalExpenses":  totalExpenses,
			"revenue":        totalRevenue,
			"monthlyBalance": monthlyBalance,
		},
		"chartData":      chartData,
		"recentInvoices": recentInvoices,
		"recentExpenses": recentExpenses,
	})
}
