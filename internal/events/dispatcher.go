package events

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/recorddesk-backend/internal/logger"
)

// CreatedEvent describes one committed-or-pending entity creation. Fields is
// a snapshot of what was inserted, keyed by column name.
type CreatedEvent struct {
  Kind     string
  EntityID uuid.UUID
  Fields   map[string]interface{}
}

// CreateHook runs synchronously inside the creating transaction. Returning an
// error aborts the creation, so a hook's side effects can never outlive a
// rolled-back insert.
type CreateHook func(ctx context.Context, tx *gorm.DB, evt CreatedEvent) error

// Dispatcher fans creation events out to statically registered per-kind
// hooks. Registration happens during wiring, before any request is served;
// after that the hook table is read-only.
type Dispatcher struct {
  log    *logger.Logger
  hooks  map[string][]CreateHook
  sealed bool
}

func NewDispatcher(log *logger.Logger) *Dispatcher {
  return &Dispatcher{
    log:   log.With("component", "Dispatcher"),
    hooks: map[string][]CreateHook{},
  }
}

func (d *Dispatcher) OnCreate(kind string, hook CreateHook) {
  if d.sealed {
    panic(fmt.Sprintf("OnCreate(%q) after dispatcher was sealed", kind))
  }
  d.hooks[kind] = append(d.hooks[kind], hook)
}

// Seal freezes registration. Wiring calls it once all services have attached
// their hooks.
func (d *Dispatcher) Seal() {
  d.sealed = true
}

// EntityCreated invokes the kind's hooks in registration order. The first
// hook error is returned unchanged so the enclosing transaction rolls back.
func (d *Dispatcher) EntityCreated(ctx context.Context, tx *gorm.DB, evt CreatedEvent) error {
  for _, hook := range d.hooks[evt.Kind] {
    if err := hook(ctx, tx, evt); err != nil {
      d.log.Warn("Create hook failed, aborting creation", "kind", evt.Kind, "entity_id", evt.EntityID, "error", err)
      return err
    }
  }
  return nil
}
