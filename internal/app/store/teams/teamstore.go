// internal/app/store/teams/teamstore.go
package teamstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/dalemusser/cohorthub/internal/app/sheetcache"
	"github.com/dalemusser/cohorthub/internal/app/sheets"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

var (
	ErrDuplicateTeamName = errors.New("a team with this name already exists")
	ErrNotFound          = errors.New("team not found")
)

const timeLayout = "2006-01-02 15:04:05"

type Store struct {
	cache *sheetcache.Cache
}

func New(cache *sheetcache.Cache) *Store {
	return &Store{cache: cache}
}

// List returns all teams in sheet order.
func (s *Store) List(ctx context.Context) ([]models.Team, error) {
	rows, err := s.cache.Rows(ctx, sheets.SheetTeams)
	if err != nil {
		return nil, err
	}
	teams := make([]models.Team, 0, len(rows))
	for _, r := range rows {
		teams = append(teams, fromRow(r))
	}
	return teams, nil
}

// GetByName returns the team with the given name (case-folded compare).
func (s *Store) GetByName(ctx context.Context, name string) (models.Team, error) {
	rows, err := s.cache.Rows(ctx, sheets.SheetTeams)
	if err != nil {
		return models.Team{}, err
	}
	want := text.Fold(name)
	for _, r := range rows {
		if text.Fold(r["TeamName"]) == want {
			return fromRow(r), nil
		}
	}
	return models.Team{}, ErrNotFound
}

// Exists reports whether a team with the given name exists.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.GetByName(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create appends a new team row. Duplicate names (case-folded) are
// rejected with ErrDuplicateTeamName.
func (s *Store) Create(ctx context.Context, t models.Team) (models.Team, error) {
	t.Name = strings.TrimSpace(t.Name)
	dup, err := s.Exists(ctx, t.Name)
	if err != nil {
		return models.Team{}, err
	}
	if dup {
		return models.Team{}, ErrDuplicateTeamName
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if err := s.cache.Append(ctx, sheets.SheetTeams, toRow(t)); err != nil {
		return models.Team{}, err
	}
	return t, nil
}

// Delete removes the team row. The caller is responsible for referential
// checks and the membership cascade; this is the raw row removal.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.cache.DeleteByKey(ctx, sheets.SheetTeams, name)
	if errors.Is(err, sheets.ErrRowNotFound) {
		return ErrNotFound
	}
	return err
}

func fromRow(r sheets.Row) models.Team {
	t := models.Team{
		Name:        r["TeamName"],
		Description: r["Description"],
	}
	if ts, err := time.Parse(timeLayout, r["CreatedAt"]); err == nil {
		t.CreatedAt = ts
	}
	return t
}

func toRow(t models.Team) sheets.Row {
	return sheets.Row{
		"TeamName":    t.Name,
		"Description": t.Description,
		"CreatedAt":   t.CreatedAt.UTC().Format(timeLayout),
	}
}
