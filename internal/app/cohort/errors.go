// internal/app/cohort/errors.go
package cohort

import (
	"errors"
	"fmt"
)

// ErrReferentialIntegrity means the mutation would orphan a strong
// reference (e.g. deleting a team that projects still point at). The
// caller must resolve the dependents first; nothing is auto-cascaded
// beyond the documented weak-FK cascade.
var ErrReferentialIntegrity = errors.New("operation blocked by referencing rows")

// ValidationError marks malformed or out-of-order input: duplicate names,
// phase skips, posts from non-members. Validation failures abort before
// any sheet is touched and are never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// invalid builds a *ValidationError.
func invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
