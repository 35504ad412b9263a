package models

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"size:100;not null;index"`
	Amount        float64
	ExpenseNumber string `gorm:"size:50;index"`
	ExpenseDate   time.Time
	Category      string `gorm:"size:100"`
	PaymentMethod string `gorm:"size:50"`
	Notes         string `gorm:"size:250"`

	CreatedAt time.Time
	CreatedBy string
	UpdatedAt *time.Time
	UpdatedBy *string
	DeletedAt *time.Time
	DeletedBy *string

	Action Action `gorm:"size:1;index"`
}
