package app

import (
	"github.com/yungbote/recorddesk-backend/internal/handlers"
	"github.com/yungbote/recorddesk-backend/internal/logger"
)

type Handlers struct {
	User    *handlers.UserHandler
	Project *handlers.ProjectHandler
	News    *handlers.NewsHandler
	Stats   *handlers.StatsHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		User:    handlers.NewUserHandler(serviceset.User),
		Project: handlers.NewProjectHandler(serviceset.Project),
		News:    handlers.NewNewsHandler(serviceset.News),
		Stats:   handlers.NewStatsHandler(serviceset.Stats),
	}
}
