package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

type StatRepo interface {
  GetByKey(ctx context.Context, tx *gorm.DB, key string) (*types.Stat, error)
  Increment(ctx context.Context, tx *gorm.DB, key string) error
}

type statRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStatRepo(db *gorm.DB, baseLog *logger.Logger) StatRepo {
  repoLog := baseLog.With("repo", "StatRepo")
  return &statRepo{db: db, log: repoLog}
}

func (sr *statRepo) GetByKey(ctx context.Context, tx *gorm.DB, key string) (*types.Stat, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  var result types.Stat
  if err := transaction.WithContext(ctx).
    Where("key = ?", key).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

// Increment adds exactly 1 to the named counter, creating the row lazily on
// first use. The seed insert goes through ON CONFLICT DO NOTHING so a lost
// claim on the unique key never aborts the caller's transaction; the loser
// retries the in-place increment against the winner's row.
func (sr *statRepo) Increment(ctx context.Context, tx *gorm.DB, key string) error {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  bump := func() (int64, error) {
    res := transaction.WithContext(ctx).
      Model(&types.Stat{}).
      Where("key = ?", key).
      UpdateColumn("value", gorm.Expr("value + ?", 1))
    return res.RowsAffected, res.Error
  }

  affected, err := bump()
  if err != nil {
    return err
  }
  if affected > 0 {
    return nil
  }

  seed := &types.Stat{Key: key, Value: 1}
  res := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{DoNothing: true}).
    Create(seed)
  if res.Error != nil {
    return res.Error
  }
  if res.RowsAffected > 0 {
    return nil
  }

  // Lost the creation race; the winner's row exists now.
  affected, err = bump()
  if err != nil {
    return err
  }
  if affected == 0 {
    return errors.New("counter row vanished during increment")
  }
  return nil
}
