// internal/domain/models/project.go
package models

import "time"

// Project represents one row of the Projects sheet.
//
// AssignedTeam references Teams.TeamName and must always resolve; the
// consistency layer refuses to delete a team while projects point at it.
type Project struct {
	Name         string    `json:"name"`
	Info         string    `json:"info"`
	AssignedTeam string    `json:"assigned_team"`
	CreatedAt    time.Time `json:"created_at"`
	CurrentPhase string    `json:"current_phase"`
	Progress     int       `json:"progress"` // overall percent, 0-100
}
