package app

import (
	"gorm.io/gorm"
	"github.com/yungbote/recorddesk-backend/internal/logger"
	"github.com/yungbote/recorddesk-backend/internal/repos"
)

type Repos struct {
	User        repos.UserRepo
	Project     repos.ProjectRepo
	NewsArticle repos.NewsArticleRepo
	Stat        repos.StatRepo
	ChangeEvent repos.ChangeEventRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:        repos.NewUserRepo(db, log),
		Project:     repos.NewProjectRepo(db, log),
		NewsArticle: repos.NewNewsArticleRepo(db, log),
		Stat:        repos.NewStatRepo(db, log),
		ChangeEvent: repos.NewChangeEventRepo(db, log),
	}
}
