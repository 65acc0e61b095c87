package services

import (
  "testing"

  "gorm.io/gorm"

  "github.com/yungbote/recorddesk-backend/internal/db/dbtest"
  "github.com/yungbote/recorddesk-backend/internal/events"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/repos"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

type testEnv struct {
  db        *gorm.DB
  users     UserService
  projects  ProjectService
  news      NewsService
  stats     StatsService
  changeLog ChangeLogService
  userRepo  repos.UserRepo
}

// newTestEnv wires services over an isolated in-memory store the same way
// app wiring does: counter hook first, audit hook second, then any
// test-supplied hooks, then seal.
func newTestEnv(t *testing.T, extraHooks ...func(d *events.Dispatcher)) *testEnv {
  t.Helper()

  gdb := dbtest.Open(t)
  log := logger.NewNop()
  dispatcher := events.NewDispatcher(log)

  userRepo := repos.NewUserRepo(gdb, log)
  projectRepo := repos.NewProjectRepo(gdb, log)
  newsRepo := repos.NewNewsArticleRepo(gdb, log)
  statRepo := repos.NewStatRepo(gdb, log)
  changeRepo := repos.NewChangeEventRepo(gdb, log)

  stats := NewStatsService(gdb, log, statRepo, nil)
  stats.RegisterHooks(dispatcher)

  changeLog := NewChangeLogService(gdb, log, changeRepo)
  auditHook := changeLog.Hook()
  for _, kind := range []string{types.KindUser, types.KindProject, types.KindNewsArticle} {
    dispatcher.OnCreate(kind, auditHook)
  }
  for _, register := range extraHooks {
    register(dispatcher)
  }
  dispatcher.Seal()

  return &testEnv{
    db:        gdb,
    users:     NewUserService(gdb, log, userRepo, dispatcher),
    projects:  NewProjectService(gdb, log, projectRepo, dispatcher),
    news:      NewNewsService(gdb, log, newsRepo, dispatcher),
    stats:     stats,
    changeLog: changeLog,
    userRepo:  userRepo,
  }
}
