// internal/domain/models/update.go
package models

import "time"

// Update is a progress post a participant shares with the cohort. Updates
// are immutable once appended; reactions live in Comments and Likes.
type Update struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Team      string    `json:"team"`
	Email     string    `json:"email"`
	Text      string    `json:"text"`
	Phase     string    `json:"phase,omitempty"`
}

// Comment is an append-only reply to an update.
type Comment struct {
	UpdateID  string    `json:"update_id"`
	Timestamp time.Time `json:"timestamp"`
	Email     string    `json:"email"`
	Text      string    `json:"text"`
}

// Like marks that a participant liked an update. The Likes sheet holds at
// most one row per (UpdateID, Email) pair; liking again removes the row.
type Like struct {
	UpdateID string `json:"update_id"`
	Email    string `json:"email"`
}
