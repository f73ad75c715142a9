// internal/domain/models/team.go
package models

import "time"

// Team represents one row of the Teams sheet. TeamName is the logical
// primary key; membership is discovered from Participants_list.Team, not
// embedded here.
type Team struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
