package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/yungbote/recorddesk-backend/internal/handlers"
  "github.com/yungbote/recorddesk-backend/internal/middleware"
)

type RouterConfig struct {
  UserHandler       *handlers.UserHandler
  ProjectHandler    *handlers.ProjectHandler
  NewsHandler       *handlers.NewsHandler
  StatsHandler      *handlers.StatsHandler
  RequestLog        *middleware.RequestLogMiddleware
  TracingEnabled    bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  if cfg.TracingEnabled {
    router.Use(otelgin.Middleware("recorddesk"))
  }
  if cfg.RequestLog != nil {
    router.Use(cfg.RequestLog.Log())
  }

  router.GET("/healthcheck", handlers.HealthCheck)

  // Users
  router.GET("/users", cfg.UserHandler.List)
  router.GET("/users/active", cfg.UserHandler.Active)
  router.GET("/users/check/:name/:email", cfg.UserHandler.CheckOrCreate)
  router.GET("/users/check_update/:name/:email", cfg.UserHandler.CheckOrUpdate)
  router.GET("/users/:id", cfg.UserHandler.GetByID)
  router.DELETE("/users", cfg.UserHandler.MassDelete)

  // Projects
  router.GET("/projects", cfg.ProjectHandler.List)
  router.POST("/projects", cfg.ProjectHandler.Create)
  router.POST("/projects/mass_update", cfg.ProjectHandler.MassUpdate)
  router.DELETE("/projects/:id", cfg.ProjectHandler.SoftDelete)

  // News articles
  router.GET("/news-articles", cfg.NewsHandler.List)
  router.POST("/news-articles", cfg.NewsHandler.Create)

  // Stats
  router.GET("/stats/:key", cfg.StatsHandler.Get)

  return router
}
