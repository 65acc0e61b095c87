package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/recorddesk-backend/internal/db"
	"github.com/yungbote/recorddesk-backend/internal/events"
	"github.com/yungbote/recorddesk-backend/internal/logger"
	"github.com/yungbote/recorddesk-backend/internal/middleware"
	"github.com/yungbote/recorddesk-backend/internal/observability"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services

	shutdownTracing func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	// Bindings decide which table backs each kind; they have to be in place
	// before migration runs.
	if err := LoadBindings(log, cfg.BindingsPath); err != nil {
		log.Sync()
		return nil, err
	}

	theDB, err := openDatabase(log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}

	dispatcher := events.NewDispatcher(log)
	reposet := wireRepos(theDB, log)
	cache := newRedisClient(log, cfg)
	serviceset := wireServices(theDB, log, reposet, dispatcher, cache)
	registerHooks(dispatcher, serviceset)

	shutdownTracing := observability.InitTracing(context.Background(), log, observability.TracingConfig{
		ServiceName: "recorddesk",
		Environment: cfg.Environment,
	})

	handlerset := wireHandlers(log, serviceset)
	requestLog := middleware.NewRequestLogMiddleware(log)
	router := wireRouter(handlerset, requestLog, shutdownTracing != nil)

	return &App{
		Log:             log,
		DB:              theDB,
		Router:          router,
		Cfg:             cfg,
		Repos:           reposet,
		Services:        serviceset,
		shutdownTracing: shutdownTracing,
	}, nil
}

func openDatabase(log *logger.Logger, cfg Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		svc, err := db.NewSQLiteService(log)
		if err != nil {
			return nil, fmt.Errorf("init sqlite: %w", err)
		}
		if err := svc.AutoMigrateAll(); err != nil {
			return nil, fmt.Errorf("sqlite automigrate: %w", err)
		}
		return svc.DB(), nil
	case "postgres":
		svc, err := db.NewPostgresService(log)
		if err != nil {
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		if err := svc.AutoMigrateAll(); err != nil {
			return nil, fmt.Errorf("postgres automigrate: %w", err)
		}
		return svc.DB(), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(fmt.Sprintf(":%d", a.Cfg.Port))
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.shutdownTracing != nil {
		_ = a.shutdownTracing(context.Background())
		a.shutdownTracing = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
