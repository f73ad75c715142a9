// internal/app/store/updates/updatestore.go
package updatestore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"

	"github.com/dalemusser/cohorthub/internal/app/sheetcache"
	"github.com/dalemusser/cohorthub/internal/app/sheets"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

var ErrNotFound = errors.New("update not found")

const timeLayout = "2006-01-02 15:04:05"

type Store struct {
	cache *sheetcache.Cache
}

func New(cache *sheetcache.Cache) *Store {
	return &Store{cache: cache}
}

// List returns updates, optionally filtered by team, newest first.
func (s *Store) List(ctx context.Context, team string) ([]models.Update, error) {
	rows, err := s.cache.Rows(ctx, sheets.SheetUpdates)
	if err != nil {
		return nil, err
	}
	want := text.Fold(team)
	out := make([]models.Update, 0, len(rows))
	for _, r := range rows {
		u := fromRow(r)
		if team != "" && text.Fold(u.Team) != want {
			continue
		}
		out = append(out, u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// GetByID returns one update.
func (s *Store) GetByID(ctx context.Context, id string) (models.Update, error) {
	rows, err := s.cache.Rows(ctx, sheets.SheetUpdates)
	if err != nil {
		return models.Update{}, err
	}
	for _, r := range rows {
		if r["UpdateID"] == id {
			return fromRow(r), nil
		}
	}
	return models.Update{}, ErrNotFound
}

// Create appends a new update with a generated ID and timestamp. Updates
// are immutable after this.
func (s *Store) Create(ctx context.Context, u models.Update) (models.Update, error) {
	if u.ID == "" {
		u.ID = "upd_" + uuid.NewString()
	}
	if u.Timestamp.IsZero() {
		u.Timestamp = time.Now().UTC()
	}
	u.Text = strings.TrimSpace(u.Text)
	if err := s.cache.Append(ctx, sheets.SheetUpdates, toRow(u)); err != nil {
		return models.Update{}, err
	}
	return u, nil
}

func fromRow(r sheets.Row) models.Update {
	u := models.Update{
		ID:    r["UpdateID"],
		Team:  r["Team"],
		Email: r["Email"],
		Text:  r["Update"],
		Phase: r["Phase"],
	}
	if ts, err := time.Parse(timeLayout, r["Timestamp"]); err == nil {
		u.Timestamp = ts
	}
	return u
}

func toRow(u models.Update) sheets.Row {
	return sheets.Row{
		"UpdateID":  u.ID,
		"Timestamp": u.Timestamp.UTC().Format(timeLayout),
		"Team":      u.Team,
		"Email":     u.Email,
		"Update":    u.Text,
		"Phase":     u.Phase,
	}
}
