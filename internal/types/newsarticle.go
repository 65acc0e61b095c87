package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

// NewsArticle is the "news-article" kind. Its physical table is
// "morning_news" by default, which is why every query goes through the
// binding registry instead of a derived table name.
type NewsArticle struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Title     string    `gorm:"not null;column:title" json:"title"`
  NewsText  string    `gorm:"not null;column:news_text" json:"news_text"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (NewsArticle) TableName() string {
  return TableFor(KindNewsArticle)
}

func (n *NewsArticle) BeforeCreate(tx *gorm.DB) error {
  if n.ID == uuid.Nil {
    n.ID = uuid.New()
  }
  return nil
}
