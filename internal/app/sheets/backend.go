// internal/app/sheets/backend.go
package sheets

import "context"

// Backend is the raw transport to the remote spreadsheet. Row indexes are
// zero-based data rows: index 0 is the first row below the header.
//
// Implementations must surface transient failures as ErrBackendUnavailable
// (after their own bounded retry) and must not buffer writes; every write
// is visible to the next Values call against the backend.
type Backend interface {
	// Ping verifies the spreadsheet is reachable.
	Ping(ctx context.Context) error

	// Values returns the full grid of the sheet, header row first.
	Values(ctx context.Context, sheet string) ([][]string, error)

	// Append adds one row after the last non-empty row.
	Append(ctx context.Context, sheet string, values []string) error

	// UpdateRow overwrites the data row at index with values.
	UpdateRow(ctx context.Context, sheet string, index int, values []string) error

	// DeleteRow removes the data row at index, shifting later rows up.
	DeleteRow(ctx context.Context, sheet string, index int) error

	// EnsureSheet creates the sheet with the given header row if it does
	// not exist, or verifies the existing header matches exactly.
	EnsureSheet(ctx context.Context, sheet string, header []string) error
}
