package handlers

import (
  "github.com/gin-gonic/gin"

  "github.com/yungbote/recorddesk-backend/internal/services"
)

type StatsHandler struct {
  statsService    services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
  return &StatsHandler{statsService: statsService}
}

func (sh *StatsHandler) Get(c *gin.Context) {
  key := c.Param("key")
  value, err := sh.statsService.Get(c.Request.Context(), key)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"key": key, "value": value})
}
