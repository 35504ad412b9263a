package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"size:100;not null"`
	InvoiceNumber string    `gorm:"size:50;index"`
	InvoiceDate   time.Time
	CustomerName  string `gorm:"size:100;index"`
	Amount        float64
	Remarks       string `gorm:"size:250"`

	CreatedAt time.Time
	CreatedBy string
	UpdatedAt *time.Time
	UpdatedBy *string
	DeletedAt *time.Time
	DeletedBy *string

	Action Action `gorm:"size:1;index"`
}
