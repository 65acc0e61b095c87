package services

import (
  "context"
  "strconv"
  "time"

  "github.com/redis/go-redis/v9"
  "gorm.io/gorm"

  "github.com/yungbote/recorddesk-backend/internal/apierr"
  "github.com/yungbote/recorddesk-backend/internal/events"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/repos"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

// ProjectsCountKey is the counter subject for project creations.
const ProjectsCountKey = "projects_count"

const statCacheTTL = 30 * time.Second

// StatsService owns the aggregate counters. Counters are write-only from the
// creation hook and read-only from everywhere else; nothing outside this
// service may set a counter value.
type StatsService interface {
  Get(ctx context.Context, key string) (int64, error)
  RegisterHooks(dispatcher *events.Dispatcher)
}

type statsService struct {
  db       *gorm.DB
  log      *logger.Logger
  statRepo repos.StatRepo
  cache    *redis.Client
}

// NewStatsService takes an optional redis client; pass nil to read straight
// from the store.
func NewStatsService(db *gorm.DB, log *logger.Logger, statRepo repos.StatRepo, cache *redis.Client) StatsService {
  serviceLog := log.With("service", "StatsService")
  return &statsService{db: db, log: serviceLog, statRepo: statRepo, cache: cache}
}

// RegisterHooks subscribes the counter to project creations. The increment
// runs on the creating transaction, so a rolled-back creation never leaves a
// phantom count behind.
func (ss *statsService) RegisterHooks(dispatcher *events.Dispatcher) {
  dispatcher.OnCreate(types.KindProject, func(ctx context.Context, tx *gorm.DB, evt events.CreatedEvent) error {
    if err := ss.statRepo.Increment(ctx, tx, ProjectsCountKey); err != nil {
      return err
    }
    ss.invalidate(ctx, ProjectsCountKey)
    return nil
  })
}

func (ss *statsService) Get(ctx context.Context, key string) (int64, error) {
  if key == "" {
    return 0, apierr.Validation("stat key is required")
  }

  if ss.cache != nil {
    raw, err := ss.cache.Get(ctx, statCacheKey(key)).Result()
    if err == nil {
      if val, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
        return val, nil
      }
    }
  }

  stat, err := ss.statRepo.GetByKey(ctx, nil, key)
  if err != nil {
    return 0, apierr.Store(err, "get stat %q", key)
  }

  // Counters are created lazily: an unobserved subject reads as zero.
  var val int64
  if stat != nil {
    val = stat.Value
  }

  if ss.cache != nil {
    if err := ss.cache.Set(ctx, statCacheKey(key), strconv.FormatInt(val, 10), statCacheTTL).Err(); err != nil {
      ss.log.Debug("Stat cache write failed", "key", key, "error", err)
    }
  }
  return val, nil
}

// invalidate drops the cached value after an increment. The entry may be
// refilled from a pre-commit read; the short TTL bounds that staleness.
func (ss *statsService) invalidate(ctx context.Context, key string) {
  if ss.cache == nil {
    return
  }
  if err := ss.cache.Del(ctx, statCacheKey(key)).Err(); err != nil {
    ss.log.Debug("Stat cache invalidation failed", "key", key, "error", err)
  }
}

func statCacheKey(key string) string {
  return "stats:" + key
}
