package repository

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
)

type ChangeLogRepository struct {
	db *gorm.DB
}

func NewChangeLogRepository(db *gorm.DB) *ChangeLogRepository {
	return &ChangeLogRepository{db: db}
}

// Append writes one audit row with a JSON snapshot of the entity as it
// was persisted.
func (r *ChangeLogRepository) Append(entity string, entityID uuid.UUID, action models.Action, performedBy string, snapshot any) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	entry := models.ChangeLog{
		ID:          uuid.New(),
		Entity:      entity,
		EntityID:    entityID,
		Action:      action,
		PerformedBy: performedBy,
		Payload:     datatypes.JSON(payload),
	}
	return r.db.Create(&entry).Error
}

// ListForEntity returns the audit trail for one row, newest first.
func (r *ChangeLogRepository) ListForEntity(entity string, entityID uuid.UUID) ([]models.ChangeLog, error) {
	var entries []models.ChangeLog
	err := r.db.
		Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
