package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/yungbote/recorddesk-backend/internal/apierr"
  "github.com/yungbote/recorddesk-backend/internal/services"
)

type NewsHandler struct {
  newsService     services.NewsService
}

func NewNewsHandler(newsService services.NewsService) *NewsHandler {
  return &NewsHandler{newsService: newsService}
}

func (nh *NewsHandler) List(c *gin.Context) {
  articles, err := nh.newsService.List(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"articles": articles})
}

func (nh *NewsHandler) Create(c *gin.Context) {
  var body struct {
    Title         string        `json:"title"`
    NewsText      string        `json:"news_text"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
    return
  }
  article, err := nh.newsService.Create(c.Request.Context(), body.Title, body.NewsText)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"article": article})
}
