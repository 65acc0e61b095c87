package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

type ProjectRepo interface {
  Create(ctx context.Context, tx *gorm.DB, project *types.Project) error
  GetByID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.Project, error)
  ListActive(ctx context.Context, tx *gorm.DB) ([]*types.Project, error)
  RenameAll(ctx context.Context, tx *gorm.DB, oldName, newName string) (int64, error)
  SoftDelete(ctx context.Context, tx *gorm.DB, project *types.Project) error
}

type projectRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
  repoLog := baseLog.With("repo", "ProjectRepo")
  return &projectRepo{db: db, log: repoLog}
}

func (pr *projectRepo) Create(ctx context.Context, tx *gorm.DB, project *types.Project) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  return transaction.WithContext(ctx).Create(project).Error
}

// GetByID bypasses the soft-delete filter: identity lookup returns removed
// rows too, callers decide what "removed" means for them.
func (pr *projectRepo) GetByID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.Project, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var result types.Project
  if err := transaction.WithContext(ctx).
    Unscoped().
    Where("id = ?", projectID).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (pr *projectRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.Project, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []*types.Project
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// RenameAll applies the rename to every active row with the old name in a
// single statement. Zero matches is not an error. The scan is single-pass,
// not snapshot-isolated against concurrent writers.
func (pr *projectRepo) RenameAll(ctx context.Context, tx *gorm.DB, oldName, newName string) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  res := transaction.WithContext(ctx).
    Model(&types.Project{}).
    Where("name = ?", oldName).
    Update("name", newName)
  if res.Error != nil {
    return 0, res.Error
  }
  return res.RowsAffected, nil
}

func (pr *projectRepo) SoftDelete(ctx context.Context, tx *gorm.DB, project *types.Project) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  return transaction.WithContext(ctx).Delete(project).Error
}
