package services

import (
  "context"
  "testing"

  "github.com/google/uuid"

  "github.com/yungbote/recorddesk-backend/internal/apierr"
  "github.com/yungbote/recorddesk-backend/internal/types"
)

func TestMassUpdateRenamesMatchingRows(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  for i := 0; i < 3; i++ {
    if _, err := env.projects.Create(ctx, "Old name"); err != nil {
      t.Fatalf("create project: %v", err)
    }
  }
  if _, err := env.projects.Create(ctx, "Unrelated"); err != nil {
    t.Fatalf("create project: %v", err)
  }

  updated, err := env.projects.MassUpdate(ctx, "Old name", "New name")
  if err != nil {
    t.Fatalf("MassUpdate: %v", err)
  }
  if updated != 3 {
    t.Fatalf("updated=%d, want 3", updated)
  }

  var oldCount, newCount int64
  if err := env.db.Model(&types.Project{}).Where("name = ?", "Old name").Count(&oldCount).Error; err != nil {
    t.Fatalf("count old: %v", err)
  }
  if err := env.db.Model(&types.Project{}).Where("name = ?", "New name").Count(&newCount).Error; err != nil {
    t.Fatalf("count new: %v", err)
  }
  if oldCount != 0 || newCount != 3 {
    t.Fatalf("old=%d new=%d, want 0 and 3", oldCount, newCount)
  }
}

func TestMassUpdateZeroMatchesIsNotAnError(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  updated, err := env.projects.MassUpdate(ctx, "Nobody", "Anybody")
  if err != nil {
    t.Fatalf("MassUpdate: %v", err)
  }
  if updated != 0 {
    t.Fatalf("updated=%d, want 0", updated)
  }
}

func TestSoftDeleteVisibility(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  kept, err := env.projects.Create(ctx, "Kept")
  if err != nil {
    t.Fatalf("create project: %v", err)
  }
  doomed, err := env.projects.Create(ctx, "Some name")
  if err != nil {
    t.Fatalf("create project: %v", err)
  }

  removed, err := env.projects.SoftDelete(ctx, doomed.ID)
  if err != nil {
    t.Fatalf("SoftDelete: %v", err)
  }
  if removed.Name != "Some name" {
    t.Fatalf("SoftDelete returned name %q, want the latest field values", removed.Name)
  }
  if !removed.Removed() {
    t.Fatal("SoftDelete left the project active")
  }

  // Removed rows disappear from default listings but stay retrievable by id.
  active, err := env.projects.ListActive(ctx)
  if err != nil {
    t.Fatalf("ListActive: %v", err)
  }
  if len(active) != 1 || active[0].ID != kept.ID {
    t.Fatalf("ListActive=%+v, want only the kept project", active)
  }

  byID, err := env.projects.GetByID(ctx, doomed.ID)
  if err != nil {
    t.Fatalf("GetByID on removed project: %v", err)
  }
  if byID.Name != "Some name" || !byID.Removed() {
    t.Fatalf("GetByID=%+v, want removed project with its fields", byID)
  }
}

func TestSoftDeleteIsIdempotent(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  project, err := env.projects.Create(ctx, "Some name")
  if err != nil {
    t.Fatalf("create project: %v", err)
  }

  first, err := env.projects.SoftDelete(ctx, project.ID)
  if err != nil {
    t.Fatalf("first SoftDelete: %v", err)
  }
  second, err := env.projects.SoftDelete(ctx, project.ID)
  if err != nil {
    t.Fatalf("second SoftDelete: %v", err)
  }
  if !second.Removed() {
    t.Fatal("second SoftDelete lost the removal mark")
  }
  if !first.DeletedAt.Time.Equal(second.DeletedAt.Time) {
    t.Fatalf("removal timestamp moved: %v vs %v", first.DeletedAt.Time, second.DeletedAt.Time)
  }
}

func TestSoftDeleteNotFound(t *testing.T) {
  env := newTestEnv(t)
  if _, err := env.projects.SoftDelete(context.Background(), uuid.New()); !apierr.IsNotFound(err) {
    t.Fatalf("err=%v, want not_found", err)
  }
}

func TestCreateProjectValidation(t *testing.T) {
  env := newTestEnv(t)
  if _, err := env.projects.Create(context.Background(), ""); !apierr.IsValidation(err) {
    t.Fatalf("err=%v, want validation", err)
  }
}
