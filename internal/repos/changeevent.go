package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

type ChangeEventRepo interface {
  Append(ctx context.Context, tx *gorm.DB, event *types.ChangeEvent) error
  ListByKind(ctx context.Context, tx *gorm.DB, kind string) ([]*types.ChangeEvent, error)
}

type changeEventRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewChangeEventRepo(db *gorm.DB, baseLog *logger.Logger) ChangeEventRepo {
  repoLog := baseLog.With("repo", "ChangeEventRepo")
  return &changeEventRepo{db: db, log: repoLog}
}

func (cr *changeEventRepo) Append(ctx context.Context, tx *gorm.DB, event *types.ChangeEvent) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  return transaction.WithContext(ctx).Create(event).Error
}

func (cr *changeEventRepo) ListByKind(ctx context.Context, tx *gorm.DB, kind string) ([]*types.ChangeEvent, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.ChangeEvent
  if err := transaction.WithContext(ctx).
    Where("kind = ?", kind).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
