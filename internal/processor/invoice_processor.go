// Package processor adapts the external request/response models to the
// managers: view-model projection, sequence-number assignment and the
// CSV export.
package processor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/api"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/managers"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/repository"
)

// InvoiceViewModel is the list projection. Audit fields stay internal;
// action is part of the wire shape but is not populated on reads.
type InvoiceViewModel struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Amount        float64       `json:"amount"`
	CustomerName  string        `json:"customerName"`
	InvoiceDate   time.Time     `json:"invoiceDate"`
	Remarks       string        `json:"remarks"`
	Action        models.Action `json:"action"`
}

// InvoiceViewByIDModel is the by-id projection; same field set as the
// list projection.
type InvoiceViewByIDModel struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Amount        float64       `json:"amount"`
	CustomerName  string        `json:"customerName"`
	InvoiceDate   time.Time     `json:"invoiceDate"`
	Remarks       string        `json:"remarks"`
	Action        models.Action `json:"action"`
}

type InvoiceProcessor struct {
	manager *managers.InvoiceManager
	repo    *repository.InvoiceRepository
}

func NewInvoiceProcessor(db *gorm.DB) *InvoiceProcessor {
	return &InvoiceProcessor{
		manager: managers.NewInvoiceManager(db),
		repo:    repository.NewInvoiceRepository(db),
	}
}

func (p *InvoiceProcessor) ProcessGet(actor auth.Identity) *api.Response {
	resp := p.manager.List(actor)
	if resp.Code() != 200 {
		return resp
	}
	invoices, ok := resp.Data.([]models.Invoice)
	if !ok {
		return resp
	}
	views := make([]InvoiceViewModel, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, InvoiceViewModel{
			ID:            inv.ID,
			Title:         inv.Title,
			Amount:        inv.Amount,
			CustomerName:  inv.CustomerName,
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   inv.InvoiceDate,
			Remarks:       inv.Remarks,
		})
	}
	resp.Data = views
	return resp
}

func (p *InvoiceProcessor) ProcessGetByID(id uuid.UUID, actor auth.Identity) *api.Response {
	resp := p.manager.GetByID(id, actor)
	if resp.Code() != 200 {
		return resp
	}
	inv, ok := resp.Data.(*models.Invoice)
	if !ok {
		return resp
	}
	resp.Data = InvoiceViewByIDModel{
		ID:            inv.ID,
		Title:         inv.Title,
		Amount:        inv.Amount,
		CustomerName:  inv.CustomerName,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		Remarks:       inv.Remarks,
	}
	return resp
}

// ProcessPost assigns the next invoice number before delegating to the
// manager's create.
func (p *InvoiceProcessor) ProcessPost(model *managers.InvoiceAddModel, actor auth.Identity) *api.Response {
	last, err := p.repo.LastNumbered()
	if err != nil {
		panic(err)
	}
	lastNumber := ""
	if last != nil {
		lastNumber = last.InvoiceNumber
	}
	model.InvoiceNumber = nextSequenceNumber(lastNumber)
	return p.manager.Create(model, actor)
}

func (p *InvoiceProcessor) ProcessPut(model *managers.InvoiceUpdateModel, actor auth.Identity) *api.Response {
	return p.manager.Update(model, actor)
}

func (p *InvoiceProcessor) ProcessDelete(id uuid.UUID, actor auth.Identity) *api.Response {
	return p.manager.Delete(id, actor)
}

// GenerateCSV streams all non-deleted invoices as comma-separated text.
func (p *InvoiceProcessor) GenerateCSV(actor auth.Identity) ([]byte, error) {
	invoices, err := p.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return invoicesCSV(invoices), nil
}

// invoicesCSV writes the export by hand rather than through
// encoding/csv: the consumers of this file expect raw unquoted fields,
// so embedded commas or quotes in Title/CustomerName pass through
// unescaped. Known correctness gap, kept for compatibility.
func invoicesCSV(invoices []models.Invoice) []byte {
	var b strings.Builder
	b.WriteString("InvoiceNumber,Title,Amount,CustomerName,InvoiceDate\n")
	for _, inv := range invoices {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n",
			inv.InvoiceNumber,
			inv.Title,
			strconv.FormatFloat(inv.Amount, 'f', -1, 64),
			inv.CustomerName,
			inv.InvoiceDate.Format("2006-01-02"),
		)
	}
	return []byte(b.String())
}
