// internal/app/store/comments/commentstore.go
package commentstore

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dalemusser/cohorthub/internal/app/sheetcache"
	"github.com/dalemusser/cohorthub/internal/app/sheets"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the append-only Comments sheet.
type Store struct {
	cache *sheetcache.Cache
}

func New(cache *sheetcache.Cache) *Store {
	return &Store{cache: cache}
}

// ListByUpdate returns the comments on an update, oldest first.
func (s *Store) ListByUpdate(ctx context.Context, updateID string) ([]models.Comment, error) {
	rows, err := s.cache.Rows(ctx, sheets.SheetComments)
	if err != nil {
		return nil, err
	}
	var out []models.Comment
	for _, r := range rows {
		if r["UpdateID"] == updateID {
			out = append(out, fromRow(r))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// Create appends a comment.
func (s *Store) Create(ctx context.Context, c models.Comment) (models.Comment, error) {
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now().UTC()
	}
	c.Text = strings.TrimSpace(c.Text)
	if err := s.cache.Append(ctx, sheets.SheetComments, toRow(c)); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

func fromRow(r sheets.Row) models.Comment {
	c := models.Comment{
		UpdateID: r["UpdateID"],
		Email:    r["Email"],
		Text:     r["Comment"],
	}
	if ts, err := time.Parse(timeLayout, r["Timestamp"]); err == nil {
		c.Timestamp = ts
	}
	return c
}

func toRow(c models.Comment) sheets.Row {
	return sheets.Row{
		"UpdateID":  c.UpdateID,
		"Timestamp": c.Timestamp.UTC().Format(timeLayout),
		"Email":     c.Email,
		"Comment":   c.Text,
	}
}
