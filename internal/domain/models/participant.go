// internal/domain/models/participant.go
package models

// Participant represents one row of the Participants_list sheet.
//
// NOTE:
//   - Email is the logical primary key; the sheet has no row IDs.
//   - Team is a weak reference to Teams.TeamName; empty means unassigned.
//   - Participants are never removed from the sheet. Deactivation flips
//     Status so history (updates, comments, likes) stays attributable.
type Participant struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Team         string `json:"team,omitempty"`
	Status       string `json:"status"`
	PasswordHash string `json:"-"`
}

// DisplayName returns the name to show in listings, falling back to the
// email when the sheet row has no name.
func (p Participant) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}

// HasPassword reports whether the participant has completed signup.
func (p Participant) HasPassword() bool {
	return p.PasswordHash != ""
}
