// internal/domain/models/progress.go
package models

// PhaseProgress represents one row of the ProjectProgress sheet: the
// tracked state of a single (project, phase) pair. Rows exist only for
// phases the project has reached and are upserted as work proceeds; they
// are removed only when the parent project is deleted.
type PhaseProgress struct {
	ProjectName string `json:"project_name"`
	Phase       string `json:"phase"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate     string `json:"end_date,omitempty"`   // YYYY-MM-DD, set when completed
	Comments    string `json:"comments,omitempty"`
}
