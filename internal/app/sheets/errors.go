// internal/app/sheets/errors.go
package sheets

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable wraps transient spreadsheet backend failures
// (network errors, quota exhaustion, 5xx) after the adapter's single
// retry has been spent. Callers may retry the whole operation.
var ErrBackendUnavailable = errors.New("sheet backend unavailable")

// ErrRowNotFound is returned by keyed operations when no row matches.
var ErrRowNotFound = errors.New("sheet row not found")

// ErrUnknownSheet is returned when a caller names a worksheet that has no
// declared schema.
var ErrUnknownSheet = errors.New("unknown sheet")

// unavailable wraps err so it matches ErrBackendUnavailable via errors.Is.
func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}
