package services

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/recorddesk-backend/internal/apierr"
  "github.com/yungbote/recorddesk-backend/internal/events"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/repos"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

type ProjectService interface {
  Create(ctx context.Context, name string) (*types.Project, error)
  GetByID(ctx context.Context, projectID uuid.UUID) (*types.Project, error)
  ListActive(ctx context.Context) ([]*types.Project, error)
  MassUpdate(ctx context.Context, oldName, newName string) (int64, error)
  SoftDelete(ctx context.Context, projectID uuid.UUID) (*types.Project, error)
}

type projectService struct {
  db          *gorm.DB
  log         *logger.Logger
  projectRepo repos.ProjectRepo
  dispatcher  *events.Dispatcher
}

func NewProjectService(db *gorm.DB, log *logger.Logger, projectRepo repos.ProjectRepo, dispatcher *events.Dispatcher) ProjectService {
  serviceLog := log.With("service", "ProjectService")
  return &projectService{db: db, log: serviceLog, projectRepo: projectRepo, dispatcher: dispatcher}
}

// Create inserts the project and announces the creation inside the same
// transaction, so a failing hook rolls the insert back and an aborted insert
// never leaves a hook side effect behind.
func (ps *projectService) Create(ctx context.Context, name string) (*types.Project, error) {
  if name == "" {
    return nil, apierr.Validation("project name is required")
  }

  project := &types.Project{Name: name}
  err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if err := ps.projectRepo.Create(ctx, tx, project); err != nil {
      return err
    }
    return ps.dispatcher.EntityCreated(ctx, tx, events.CreatedEvent{
      Kind:     types.KindProject,
      EntityID: project.ID,
      Fields:   map[string]interface{}{"name": project.Name},
    })
  })
  if err != nil {
    return nil, serviceError(err, "create project %q", name)
  }
  return project, nil
}

func (ps *projectService) GetByID(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
  found, err := ps.projectRepo.GetByID(ctx, nil, projectID)
  if err != nil {
    return nil, apierr.Store(err, "get project %s", projectID)
  }
  if found == nil {
    return nil, apierr.NotFound("project %s not found", projectID)
  }
  return found, nil
}

func (ps *projectService) ListActive(ctx context.Context) ([]*types.Project, error) {
  found, err := ps.projectRepo.ListActive(ctx, nil)
  if err != nil {
    return nil, apierr.Store(err, "list active projects")
  }
  return found, nil
}

func (ps *projectService) MassUpdate(ctx context.Context, oldName, newName string) (int64, error) {
  if oldName == "" {
    return 0, apierr.Validation("old project name is required")
  }
  if newName == "" {
    return 0, apierr.Validation("new project name is required")
  }

  renamed, err := ps.projectRepo.RenameAll(ctx, nil, oldName, newName)
  if err != nil {
    return 0, apierr.Store(err, "mass update projects %q -> %q", oldName, newName)
  }
  ps.log.Info("Mass updated projects", "old_name", oldName, "new_name", newName, "count", renamed)
  return renamed, nil
}

// SoftDelete marks the project removed and hands back its latest field
// values for confirmation. Deleting an already-removed project is a no-op
// with the same result.
func (ps *projectService) SoftDelete(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
  project, err := ps.projectRepo.GetByID(ctx, nil, projectID)
  if err != nil {
    return nil, apierr.Store(err, "get project %s", projectID)
  }
  if project == nil {
    return nil, apierr.NotFound("project %s not found", projectID)
  }
  if project.Removed() {
    return project, nil
  }
  if err := ps.projectRepo.SoftDelete(ctx, nil, project); err != nil {
    return nil, apierr.Store(err, "soft delete project %s", projectID)
  }
  return project, nil
}
