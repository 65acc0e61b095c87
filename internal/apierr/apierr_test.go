package apierr

import (
  "errors"
  "fmt"
  "net/http"
  "testing"
)

func TestTaxonomyPredicates(t *testing.T) {
  if !IsValidation(Validation("name required")) {
    t.Fatal("Validation error not recognized")
  }
  if !IsNotFound(NotFound("user missing")) {
    t.Fatal("NotFound error not recognized")
  }
  if IsNotFound(Validation("nope")) || IsValidation(NotFound("nope")) {
    t.Fatal("codes bleed into each other")
  }
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
  wrapped := fmt.Errorf("outer context: %w", NotFound("row gone"))
  if !IsNotFound(wrapped) {
    t.Fatal("wrapped NotFound not recognized")
  }
}

func TestStoreKeepsCause(t *testing.T) {
  cause := errors.New("connection refused")
  err := Store(cause, "get user %q", "john")
  if !errors.Is(err, cause) {
    t.Fatal("cause lost")
  }
  if err.Status != http.StatusInternalServerError || err.Code != CodeStore {
    t.Fatalf("status=%d code=%q, want 500/store", err.Status, err.Code)
  }
}
