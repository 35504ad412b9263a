package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record. Username mirrors Email; login looks the
// account up by email.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"size:255;not null;uniqueIndex"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash []byte    `gorm:"not null"`
	FirstName    string    `gorm:"size:100"`
	LastName     string    `gorm:"size:100"`
	Roles        []Role    `gorm:"many2many:user_roles;"`
	CreatedAt    time.Time
}

type Role struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:32;not null;uniqueIndex"`
	CreatedAt time.Time
}

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)
