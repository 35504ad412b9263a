// Package managers implements the per-entity CRUD layer: role gating,
// soft-delete bookkeeping, duplicate checks and audit logging. Each
// manager returns the shared response envelope rather than raw errors.
package managers

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/api"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
)

// Module selects which entity a manager operates on.
type Module string

const (
	ModuleInvoice Module = "Invoice"
	ModuleExpense Module = "Expense"
)

func (m Module) Valid() bool {
	return m == ModuleInvoice || m == ModuleExpense
}

// Manager is the uniform surface shared by both entities. Create and
// Update take entity-specific models and live on the concrete types.
type Manager interface {
	List(actor auth.Identity) *api.Response
	GetByID(id uuid.UUID, actor auth.Identity) *api.Response
	Delete(id uuid.UUID, actor auth.Identity) *api.Response
}

// Build returns the manager for the module. An unknown module is a
// configuration error and fails immediately.
func Build(module Module, db *gorm.DB) Manager {
	switch module {
	case ModuleInvoice:
		return NewInvoiceManager(db)
	case ModuleExpense:
		return NewExpenseManager(db)
	default:
		panic(fmt.Sprintf("managers: unknown module %q", module))
	}
}
