// internal/app/store/progress/progressstore.go
package progressstore

import (
	"context"
	"errors"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/dalemusser/cohorthub/internal/app/sheetcache"
	"github.com/dalemusser/cohorthub/internal/app/sheets"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

// Store manages the ProjectProgress sheet: one row per (project, phase).
type Store struct {
	cache *sheetcache.Cache
}

func New(cache *sheetcache.Cache) *Store {
	return &Store{cache: cache}
}

// ListByProject returns the phase rows recorded for the project, in
// sheet order (phases are appended as they are reached, so sheet order is
// lifecycle order in practice).
func (s *Store) ListByProject(ctx context.Context, project string) ([]models.PhaseProgress, error) {
	rows, err := s.cache.Rows(ctx, sheets.SheetProgress)
	if err != nil {
		return nil, err
	}
	want := text.Fold(project)
	var out []models.PhaseProgress
	for _, r := range rows {
		if text.Fold(r["ProjectName"]) == want {
			out = append(out, fromRow(r))
		}
	}
	return out, nil
}

// Get returns the row for (project, phase), if recorded.
func (s *Store) Get(ctx context.Context, project, phase string) (models.PhaseProgress, bool, error) {
	all, err := s.ListByProject(ctx, project)
	if err != nil {
		return models.PhaseProgress{}, false, err
	}
	for _, pp := range all {
		if pp.Phase == phase {
			return pp, true, nil
		}
	}
	return models.PhaseProgress{}, false, nil
}

// Upsert writes the (project, phase) row, updating in place when the
// phase was already recorded and appending otherwise.
func (s *Store) Upsert(ctx context.Context, pp models.PhaseProgress) error {
	wantProject := text.Fold(pp.ProjectName)
	err := s.cache.UpdateWhere(ctx, sheets.SheetProgress,
		func(r sheets.Row) bool {
			return text.Fold(r["ProjectName"]) == wantProject && r["Phase"] == pp.Phase
		},
		toRow(pp))
	if errors.Is(err, sheets.ErrRowNotFound) {
		return s.cache.Append(ctx, sheets.SheetProgress, toRow(pp))
	}
	return err
}

// DeleteByProject removes every phase row of the project and returns how
// many were removed.
func (s *Store) DeleteByProject(ctx context.Context, project string) (int, error) {
	want := text.Fold(project)
	return s.cache.DeleteWhere(ctx, sheets.SheetProgress,
		func(r sheets.Row) bool { return text.Fold(r["ProjectName"]) == want })
}

func fromRow(r sheets.Row) models.PhaseProgress {
	return models.PhaseProgress{
		ProjectName: r["ProjectName"],
		Phase:       r["Phase"],
		Status:      r["Status"],
		StartDate:   r["StartDate"],
		EndDate:     r["EndDate"],
		Comments:    r["Comments"],
	}
}

func toRow(pp models.PhaseProgress) sheets.Row {
	return sheets.Row{
		"ProjectName": pp.ProjectName,
		"Phase":       pp.Phase,
		"Status":      pp.Status,
		"StartDate":   pp.StartDate,
		"EndDate":     pp.EndDate,
		"Comments":    pp.Comments,
	}
}
