package services

import (
  "errors"

  "github.com/yungbote/recorddesk-backend/internal/apierr"
)

// serviceError keeps an already-classified apierr intact (a create hook may
// have produced one) and wraps anything else as a store failure.
func serviceError(err error, format string, args ...interface{}) error {
  var ae *apierr.Error
  if errors.As(err, &ae) {
    return err
  }
  return apierr.Store(err, format, args...)
}
