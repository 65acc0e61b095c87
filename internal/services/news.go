package services

import (
  "context"

  "gorm.io/gorm"

  "github.com/yungbote/recorddesk-backend/internal/apierr"
  "github.com/yungbote/recorddesk-backend/internal/events"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/repos"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

type NewsService interface {
  Create(ctx context.Context, title, newsText string) (*types.NewsArticle, error)
  List(ctx context.Context) ([]*types.NewsArticle, error)
}

type newsService struct {
  db         *gorm.DB
  log        *logger.Logger
  newsRepo   repos.NewsArticleRepo
  dispatcher *events.Dispatcher
}

func NewNewsService(db *gorm.DB, log *logger.Logger, newsRepo repos.NewsArticleRepo, dispatcher *events.Dispatcher) NewsService {
  serviceLog := log.With("service", "NewsService")
  return &newsService{db: db, log: serviceLog, newsRepo: newsRepo, dispatcher: dispatcher}
}

func (ns *newsService) Create(ctx context.Context, title, newsText string) (*types.NewsArticle, error) {
  if title == "" {
    return nil, apierr.Validation("article title is required")
  }
  if newsText == "" {
    return nil, apierr.Validation("article text is required")
  }

  article := &types.NewsArticle{Title: title, NewsText: newsText}
  err := ns.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if err := ns.newsRepo.Create(ctx, tx, article); err != nil {
      return err
    }
    return ns.dispatcher.EntityCreated(ctx, tx, events.CreatedEvent{
      Kind:     types.KindNewsArticle,
      EntityID: article.ID,
      Fields:   map[string]interface{}{"title": article.Title, "news_text": article.NewsText},
    })
  })
  if err != nil {
    return nil, serviceError(err, "create news article %q", title)
  }
  return article, nil
}

func (ns *newsService) List(ctx context.Context) ([]*types.NewsArticle, error) {
  found, err := ns.newsRepo.List(ctx, nil)
  if err != nil {
    return nil, apierr.Store(err, "list news articles")
  }
  return found, nil
}
