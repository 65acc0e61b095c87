package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

// Project is soft-deletable: DeletedAt marks the row removed without
// destroying it. Removed rows stay retrievable through Unscoped lookups.
type Project struct {
  ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  Name      string          `gorm:"not null;column:name" json:"name"`
  CreatedAt time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
  DeletedAt gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (Project) TableName() string {
  return TableFor(KindProject)
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
  if p.ID == uuid.Nil {
    p.ID = uuid.New()
  }
  return nil
}

func (p *Project) Removed() bool {
  return p.DeletedAt.Valid
}
