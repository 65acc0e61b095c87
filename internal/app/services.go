package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/recorddesk-backend/internal/events"
	"github.com/yungbote/recorddesk-backend/internal/logger"
	"github.com/yungbote/recorddesk-backend/internal/services"
	"github.com/yungbote/recorddesk-backend/internal/types"
)

type Services struct {
	User      services.UserService
	Project   services.ProjectService
	News      services.NewsService
	Stats     services.StatsService
	ChangeLog services.ChangeLogService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, dispatcher *events.Dispatcher, cache *redis.Client) Services {
	log.Info("Wiring services...")
	return Services{
		User:      services.NewUserService(db, log, reposet.User, dispatcher),
		Project:   services.NewProjectService(db, log, reposet.Project, dispatcher),
		News:      services.NewNewsService(db, log, reposet.NewsArticle, dispatcher),
		Stats:     services.NewStatsService(db, log, reposet.Stat, cache),
		ChangeLog: services.NewChangeLogService(db, log, reposet.ChangeEvent),
	}
}

// registerHooks attaches every on-create subscriber, then seals the
// dispatcher: registration is static, before the first request.
func registerHooks(dispatcher *events.Dispatcher, serviceset Services) {
	serviceset.Stats.RegisterHooks(dispatcher)

	auditHook := serviceset.ChangeLog.Hook()
	for _, kind := range []string{types.KindUser, types.KindProject, types.KindNewsArticle} {
		dispatcher.OnCreate(kind, auditHook)
	}

	dispatcher.Seal()
}
