package services

import (
  "context"
  "errors"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/recorddesk-backend/internal/apierr"
  "github.com/yungbote/recorddesk-backend/internal/events"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/repos"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

type UserService interface {
  ListVerified(ctx context.Context, limit int) ([]*types.User, error)
  GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
  FindOrCreate(ctx context.Context, name, email string) (*types.User, error)
  FindOrUpdate(ctx context.Context, name, email string) (*types.User, error)
  MassDelete(ctx context.Context, userIDs []uuid.UUID) (int64, error)
}

type userService struct {
  db         *gorm.DB
  log        *logger.Logger
  userRepo   repos.UserRepo
  dispatcher *events.Dispatcher
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, dispatcher *events.Dispatcher) UserService {
  serviceLog := log.With("service", "UserService")
  return &userService{db: db, log: serviceLog, userRepo: userRepo, dispatcher: dispatcher}
}

func (us *userService) ListVerified(ctx context.Context, limit int) ([]*types.User, error) {
  found, err := us.userRepo.ListVerified(ctx, nil, limit)
  if err != nil {
    return nil, apierr.Store(err, "list verified users")
  }
  return found, nil
}

func (us *userService) GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
  found, err := us.userRepo.GetByID(ctx, nil, userID)
  if err != nil {
    return nil, apierr.Store(err, "get user %s", userID)
  }
  if found == nil {
    return nil, apierr.NotFound("user %s not found", userID)
  }
  return found, nil
}

// FindOrCreate looks a user up by its full identity key (name, email) and
// creates it when absent. Repeated calls with the same key never insert a
// second row: the unique identity index makes the slow path race-safe, and a
// lost race is absorbed by re-reading the winner's row.
func (us *userService) FindOrCreate(ctx context.Context, name, email string) (*types.User, error) {
  if name == "" {
    return nil, apierr.Validation("user name is required")
  }
  if email == "" {
    return nil, apierr.Validation("user email is required")
  }

  existing, err := us.userRepo.GetByNameEmail(ctx, nil, name, email)
  if err != nil {
    return nil, apierr.Store(err, "lookup user %q", name)
  }
  if existing != nil {
    return existing, nil
  }

  created, err := us.createUser(ctx, name, email)
  if err == nil {
    return created, nil
  }
  if !errors.Is(err, gorm.ErrDuplicatedKey) {
    return nil, serviceError(err, "create user %q", name)
  }

  // A concurrent caller won the insert; hand back its row.
  winner, readErr := us.userRepo.GetByNameEmail(ctx, nil, name, email)
  if readErr != nil {
    return nil, apierr.Store(readErr, "re-read user %q after conflict", name)
  }
  if winner == nil {
    return nil, apierr.Store(err, "user %q conflicted but is gone", name)
  }
  return winner, nil
}

// FindOrUpdate matches on the name alone; the contact email is a mutable
// attribute of the row, not part of the match key. Calling again with the
// same name and a new email updates the existing row in place.
func (us *userService) FindOrUpdate(ctx context.Context, name, email string) (*types.User, error) {
  if name == "" {
    return nil, apierr.Validation("user name is required")
  }
  if email == "" {
    return nil, apierr.Validation("user email is required")
  }

  existing, err := us.userRepo.GetByName(ctx, nil, name)
  if err != nil {
    return nil, apierr.Store(err, "lookup user %q", name)
  }
  if existing == nil {
    created, createErr := us.createUser(ctx, name, email)
    if createErr == nil {
      return created, nil
    }
    if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
      return nil, serviceError(createErr, "create user %q", name)
    }
    winner, readErr := us.userRepo.GetByName(ctx, nil, name)
    if readErr != nil || winner == nil {
      return nil, apierr.Store(createErr, "user %q conflicted but is gone", name)
    }
    existing = winner
  }

  if existing.Email == email {
    return existing, nil
  }
  existing.Email = email
  if err := us.userRepo.Save(ctx, nil, existing); err != nil {
    return nil, apierr.Store(err, "update user %q", name)
  }
  return existing, nil
}

func (us *userService) MassDelete(ctx context.Context, userIDs []uuid.UUID) (int64, error) {
  deleted, err := us.userRepo.DeleteByIDs(ctx, nil, userIDs)
  if err != nil {
    return 0, apierr.Store(err, "mass delete users")
  }
  us.log.Info("Mass deleted users", "requested", len(userIDs), "deleted", deleted)
  return deleted, nil
}

func (us *userService) createUser(ctx context.Context, name, email string) (*types.User, error) {
  user := &types.User{Name: name, Email: email}
  err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if err := us.userRepo.Create(ctx, tx, user); err != nil {
      return err
    }
    return us.dispatcher.EntityCreated(ctx, tx, events.CreatedEvent{
      Kind:     types.KindUser,
      EntityID: user.ID,
      Fields:   map[string]interface{}{"name": user.Name, "email": user.Email},
    })
  })
  if err != nil {
    return nil, err
  }
  return user, nil
}
