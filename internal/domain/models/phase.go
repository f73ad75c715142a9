// internal/domain/models/phase.go
package models

// Canonical SDLC phase identifiers.
//
// These values are stored verbatim in the Projects and ProjectProgress
// sheets and are used throughout the application as stable keys. Order
// matters: a project moves through phases strictly in sequence.
const (
	PhaseRequirements   = "Requirements"
	PhaseDesign         = "Design"
	PhaseImplementation = "Implementation"
	PhaseTesting        = "Testing"
	PhaseDeployment     = "Deployment"
	PhaseMaintenance    = "Maintenance"
)

// Phases is the full ordered lifecycle. Treat this slice as the single
// source of truth for validation and for rendering phase sequences.
var Phases = []string{
	PhaseRequirements,
	PhaseDesign,
	PhaseImplementation,
	PhaseTesting,
	PhaseDeployment,
	PhaseMaintenance,
}

// PhaseIndex returns the position of phase in the lifecycle, or -1 if the
// value is not a known phase.
func PhaseIndex(phase string) int {
	for i, p := range Phases {
		if p == phase {
			return i
		}
	}
	return -1
}

// IsPhase reports whether phase is a known SDLC phase identifier.
func IsPhase(phase string) bool {
	return PhaseIndex(phase) >= 0
}

// NextPhase returns the successor of phase and true, or "" and false when
// phase is Maintenance (terminal) or unknown.
func NextPhase(phase string) (string, bool) {
	i := PhaseIndex(phase)
	if i < 0 || i+1 >= len(Phases) {
		return "", false
	}
	return Phases[i+1], true
}

// Allowed phase progress statuses, matching the values the original
// tracking sheets used.
const (
	ProgressNotStarted = "Not Started"
	ProgressInProgress = "In Progress"
	ProgressCompleted  = "Completed"
	ProgressOnHold     = "On Hold"
)

// ProgressStatuses is the set of allowed ProjectProgress.Status values.
var ProgressStatuses = []string{
	ProgressNotStarted,
	ProgressInProgress,
	ProgressCompleted,
	ProgressOnHold,
}

// IsProgressStatus reports whether s is an allowed progress status.
func IsProgressStatus(s string) bool {
	for _, v := range ProgressStatuses {
		if v == s {
			return true
		}
	}
	return false
}
