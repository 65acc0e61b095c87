package server

import (
  "encoding/json"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/recorddesk-backend/internal/db/dbtest"
  "github.com/yungbote/recorddesk-backend/internal/events"
  "github.com/yungbote/recorddesk-backend/internal/handlers"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/repos"
  "github.com/yungbote/recorddesk-backend/internal/services"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
  t.Helper()
  gin.SetMode(gin.TestMode)

  gdb := dbtest.Open(t)
  log := logger.NewNop()
  dispatcher := events.NewDispatcher(log)

  userRepo := repos.NewUserRepo(gdb, log)
  projectRepo := repos.NewProjectRepo(gdb, log)
  newsRepo := repos.NewNewsArticleRepo(gdb, log)
  statRepo := repos.NewStatRepo(gdb, log)

  statsService := services.NewStatsService(gdb, log, statRepo, nil)
  statsService.RegisterHooks(dispatcher)
  dispatcher.Seal()

  router := NewRouter(RouterConfig{
    UserHandler:    handlers.NewUserHandler(services.NewUserService(gdb, log, userRepo, dispatcher)),
    ProjectHandler: handlers.NewProjectHandler(services.NewProjectService(gdb, log, projectRepo, dispatcher)),
    NewsHandler:    handlers.NewNewsHandler(services.NewNewsService(gdb, log, newsRepo, dispatcher)),
    StatsHandler:   handlers.NewStatsHandler(statsService),
  })
  return router, gdb
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
  t.Helper()
  var reader *strings.Reader
  if body == "" {
    reader = strings.NewReader("")
  } else {
    reader = strings.NewReader(body)
  }
  req := httptest.NewRequest(method, path, reader)
  if body != "" {
    req.Header.Set("Content-Type", "application/json")
  }
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)
  return rec
}

func TestHealthCheck(t *testing.T) {
  router, _ := newTestRouter(t)
  rec := doRequest(t, router, http.MethodGet, "/healthcheck", "")
  if rec.Code != http.StatusOK {
    t.Fatalf("status=%d, want 200", rec.Code)
  }
}

func TestGetUserAbsentIs404(t *testing.T) {
  router, _ := newTestRouter(t)
  rec := doRequest(t, router, http.MethodGet, "/users/"+uuid.NewString(), "")
  if rec.Code != http.StatusNotFound {
    t.Fatalf("status=%d, want 404", rec.Code)
  }
}

func TestCheckOrCreateFlow(t *testing.T) {
  router, gdb := newTestRouter(t)

  first := doRequest(t, router, http.MethodGet, "/users/check/john/john@john.com", "")
  if first.Code != http.StatusOK {
    t.Fatalf("first check: status=%d, want 200", first.Code)
  }
  second := doRequest(t, router, http.MethodGet, "/users/check/john/john@john.com", "")
  if second.Code != http.StatusOK {
    t.Fatalf("second check: status=%d, want 200", second.Code)
  }

  var count int64
  if err := gdb.Model(&types.User{}).Count(&count).Error; err != nil {
    t.Fatalf("count users: %v", err)
  }
  if count != 1 {
    t.Fatalf("user count=%d, want 1", count)
  }
}

func TestSoftDeleteEchoesProject(t *testing.T) {
  router, _ := newTestRouter(t)

  created := doRequest(t, router, http.MethodPost, "/projects", `{"name":"Some name"}`)
  if created.Code != http.StatusCreated {
    t.Fatalf("create: status=%d, want 201", created.Code)
  }
  var createBody struct {
    Project struct {
      ID string `json:"id"`
    } `json:"project"`
  }
  if err := json.Unmarshal(created.Body.Bytes(), &createBody); err != nil {
    t.Fatalf("decode create response: %v", err)
  }

  deleted := doRequest(t, router, http.MethodDelete, "/projects/"+createBody.Project.ID, "")
  if deleted.Code != http.StatusOK {
    t.Fatalf("delete: status=%d, want 200", deleted.Code)
  }
  if !strings.Contains(deleted.Body.String(), "Some name") {
    t.Fatalf("delete response %q does not echo the project name", deleted.Body.String())
  }
}

func TestValidationErrorIs400(t *testing.T) {
  router, _ := newTestRouter(t)
  rec := doRequest(t, router, http.MethodPost, "/projects", `{"name":""}`)
  if rec.Code != http.StatusBadRequest {
    t.Fatalf("status=%d, want 400", rec.Code)
  }
}
