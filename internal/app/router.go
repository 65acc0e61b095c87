package app

import (
	"github.com/gin-gonic/gin"
	"github.com/yungbote/recorddesk-backend/internal/middleware"
	"github.com/yungbote/recorddesk-backend/internal/server"
)

func wireRouter(handlerset Handlers, requestLog *middleware.RequestLogMiddleware, tracingEnabled bool) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		UserHandler:    handlerset.User,
		ProjectHandler: handlerset.Project,
		NewsHandler:    handlerset.News,
		StatsHandler:   handlerset.Stats,
		RequestLog:     requestLog,
		TracingEnabled: tracingEnabled,
	})
}
