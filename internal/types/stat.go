package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

// Stat is a singleton-per-key aggregate counter, e.g. key "projects_count".
// It is created lazily on the first observed creation event and only ever
// mutated by the stats observer.
type Stat struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Key       string    `gorm:"uniqueIndex;not null;column:key" json:"key"`
  Value     int64     `gorm:"not null;default:0;column:value" json:"value"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Stat) TableName() string {
  return TableFor(KindStat)
}

func (s *Stat) BeforeCreate(tx *gorm.DB) error {
  if s.ID == uuid.Nil {
    s.ID = uuid.New()
  }
  return nil
}
