// internal/app/system/status/status.go

// Package status holds the canonical entity status values stored in the
// sheets. Keep these as the single source of truth for validation.
package status

const (
	Active   = "active"
	Inactive = "inactive"
)
