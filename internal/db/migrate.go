package db

import (
  "fmt"
  "gorm.io/gorm"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

// MigrateAll creates the tables for every bound kind plus the raw-SQL indexes
// gorm's tags cannot express. Both drivers share it, so the test database has
// the same uniqueness guarantees as production.
func MigrateAll(db *gorm.DB) error {
  if err := db.AutoMigrate(
    &types.User{},
    &types.Project{},
    &types.NewsArticle{},
    &types.Stat{},
    &types.ChangeEvent{},
  ); err != nil {
    return fmt.Errorf("auto migrate: %w", err)
  }

  // Identity-key guard for the upsert engine: without it two concurrent
  // find-or-create calls could both observe "absent" and both insert.
  usersTable := types.TableFor(types.KindUser)
  stmt := fmt.Sprintf(
    `CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_identity ON %s (name, email)`,
    usersTable, usersTable,
  )
  if err := db.Exec(stmt).Error; err != nil {
    return fmt.Errorf("create identity index on %s: %w", usersTable, err)
  }
  return nil
}
