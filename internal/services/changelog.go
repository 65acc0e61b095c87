package services

import (
  "context"
  "encoding/json"

  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/yungbote/recorddesk-backend/internal/apierr"
  "github.com/yungbote/recorddesk-backend/internal/events"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/repos"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

// ChangeLogService appends an audit row for every creation the dispatcher
// observes, carrying a JSON snapshot of the inserted fields.
type ChangeLogService interface {
  Hook() events.CreateHook
  ListByKind(ctx context.Context, kind string) ([]*types.ChangeEvent, error)
}

type changeLogService struct {
  db        *gorm.DB
  log       *logger.Logger
  eventRepo repos.ChangeEventRepo
}

func NewChangeLogService(db *gorm.DB, log *logger.Logger, eventRepo repos.ChangeEventRepo) ChangeLogService {
  serviceLog := log.With("service", "ChangeLogService")
  return &changeLogService{db: db, log: serviceLog, eventRepo: eventRepo}
}

func (cs *changeLogService) Hook() events.CreateHook {
  return func(ctx context.Context, tx *gorm.DB, evt events.CreatedEvent) error {
    payload, err := json.Marshal(evt.Fields)
    if err != nil {
      return err
    }
    return cs.eventRepo.Append(ctx, tx, &types.ChangeEvent{
      Kind:     evt.Kind,
      EntityID: evt.EntityID,
      Payload:  datatypes.JSON(payload),
    })
  }
}

func (cs *changeLogService) ListByKind(ctx context.Context, kind string) ([]*types.ChangeEvent, error) {
  found, err := cs.eventRepo.ListByKind(ctx, nil, kind)
  if err != nil {
    return nil, apierr.Store(err, "list change events for %q", kind)
  }
  return found, nil
}
