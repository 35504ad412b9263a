package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChangeLog records every successful create/update/delete with a JSON
// snapshot of the row as written. It is append-only.
type ChangeLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Entity      string         `gorm:"size:50;index:idx_changelog_entity" json:"entity"`
	EntityID    uuid.UUID      `gorm:"type:uuid;index:idx_changelog_entity" json:"entityId"`
	Action      Action         `gorm:"size:1" json:"action"`
	PerformedBy string         `json:"performedBy"`
	Payload     datatypes.JSON `json:"payload"`
	CreatedAt   time.Time      `json:"createdAt"`
}
