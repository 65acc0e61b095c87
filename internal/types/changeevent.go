package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

// ChangeEvent is an append-only audit row recording a creation observed by
// the dispatcher. Payload holds a JSON snapshot of the created fields.
type ChangeEvent struct {
  ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  Kind      string         `gorm:"not null;index;column:kind" json:"kind"`
  EntityID  uuid.UUID      `gorm:"type:uuid;not null;column:entity_id" json:"entity_id"`
  Payload   datatypes.JSON `gorm:"column:payload" json:"payload"`
  CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (ChangeEvent) TableName() string {
  return TableFor(KindChangeEvent)
}

func (e *ChangeEvent) BeforeCreate(tx *gorm.DB) error {
  if e.ID == uuid.Nil {
    e.ID = uuid.New()
  }
  return nil
}
