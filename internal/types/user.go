package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

type User struct {
  ID              uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Name            string      `gorm:"not null;column:name" json:"name"`
  Email           string      `gorm:"not null;column:email" json:"email"`
  EmailVerifiedAt *time.Time  `gorm:"column:email_verified_at" json:"email_verified_at"`
  CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
  return TableFor(KindUser)
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
  if u.ID == uuid.Nil {
    u.ID = uuid.New()
  }
  return nil
}
