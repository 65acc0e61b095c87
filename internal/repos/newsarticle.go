package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

type NewsArticleRepo interface {
  Create(ctx context.Context, tx *gorm.DB, article *types.NewsArticle) error
  List(ctx context.Context, tx *gorm.DB) ([]*types.NewsArticle, error)
}

type newsArticleRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewNewsArticleRepo(db *gorm.DB, baseLog *logger.Logger) NewsArticleRepo {
  repoLog := baseLog.With("repo", "NewsArticleRepo")
  return &newsArticleRepo{db: db, log: repoLog}
}

func (nr *newsArticleRepo) Create(ctx context.Context, tx *gorm.DB, article *types.NewsArticle) error {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }
  return transaction.WithContext(ctx).Create(article).Error
}

func (nr *newsArticleRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.NewsArticle, error) {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  var results []*types.NewsArticle
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
