package dbtest

import (
  "fmt"
  "testing"

  "github.com/google/uuid"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/yungbote/recorddesk-backend/internal/db"
)

// Open returns an isolated in-memory database with the full schema applied.
// A single pooled connection keeps the shared-cache handle alive for the
// lifetime of the test and serializes writers the way the store contract
// assumes per-statement atomicity.
func Open(t *testing.T) *gorm.DB {
  t.Helper()

  dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
  gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
    TranslateError: true,
  })
  if err != nil {
    t.Fatalf("open sqlite: %v", err)
  }

  sqlDB, err := gdb.DB()
  if err != nil {
    t.Fatalf("unwrap sql.DB: %v", err)
  }
  sqlDB.SetMaxOpenConns(1)
  t.Cleanup(func() { _ = sqlDB.Close() })

  if err := db.MigrateAll(gdb); err != nil {
    t.Fatalf("migrate: %v", err)
  }
  return gdb
}
