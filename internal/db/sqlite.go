package db

import (
  "fmt"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "github.com/yungbote/recorddesk-backend/internal/logger"
  "github.com/yungbote/recorddesk-backend/internal/utils"
)

// SQLiteService backs local development and the test suite; it exposes the
// same surface as PostgresService so app wiring can switch on DB_DRIVER.
type SQLiteService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSQLiteService(log *logger.Logger) (*SQLiteService, error) {
  serviceLog := log.With("service", "SQLiteService")

  path := utils.GetEnv("SQLITE_PATH", "recorddesk.db", log)

  log.Info("Opening SQLite database...", "path", path)
  db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
    TranslateError: true,
  })
  if err != nil {
    log.Error("Failed to open SQLite database", "error", err)
    return nil, fmt.Errorf("Failed to open SQLite database: %w", err)
  }

  return &SQLiteService{db: db, log: serviceLog}, nil
}

func (s *SQLiteService) AutoMigrateAll() error {
  s.log.Info("Auto migrating sqlite tables...")
  if err := MigrateAll(s.db); err != nil {
    s.log.Error("Auto migration failed for sqlite tables", "error", err)
    return err
  }
  return nil
}

func (s *SQLiteService) DB() *gorm.DB {
  return s.db
}
