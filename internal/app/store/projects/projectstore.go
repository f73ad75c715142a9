// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/dalemusser/cohorthub/internal/app/sheetcache"
	"github.com/dalemusser/cohorthub/internal/app/sheets"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

var (
	ErrDuplicateProjectName = errors.New("a project with this name already exists")
	ErrNotFound             = errors.New("project not found")
)

const timeLayout = "2006-01-02 15:04:05"

type Store struct {
	cache *sheetcache.Cache
}

func New(cache *sheetcache.Cache) *Store {
	return &Store{cache: cache}
}

// List returns all projects in sheet order.
func (s *Store) List(ctx context.Context) ([]models.Project, error) {
	rows, err := s.cache.Rows(ctx, sheets.SheetProjects)
	if err != nil {
		return nil, err
	}
	out := make([]models.Project, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out, nil
}

// GetByName returns the named project.
func (s *Store) GetByName(ctx context.Context, name string) (models.Project, error) {
	all, err := s.List(ctx)
	if err != nil {
		return models.Project{}, err
	}
	want := text.Fold(name)
	for _, p := range all {
		if text.Fold(p.Name) == want {
			return p, nil
		}
	}
	return models.Project{}, ErrNotFound
}

// ListByTeam returns the projects assigned to the named team.
func (s *Store) ListByTeam(ctx context.Context, team string) ([]models.Project, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	want := text.Fold(team)
	var out []models.Project
	for _, p := range all {
		if text.Fold(p.AssignedTeam) == want {
			out = append(out, p)
		}
	}
	return out, nil
}

// AnyForTeam reports whether at least one project references the team.
func (s *Store) AnyForTeam(ctx context.Context, team string) (bool, error) {
	ps, err := s.ListByTeam(ctx, team)
	if err != nil {
		return false, err
	}
	return len(ps) > 0, nil
}

// Create appends a project row. New projects start at Requirements / 0%.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	p.Name = strings.TrimSpace(p.Name)
	if _, err := s.GetByName(ctx, p.Name); err == nil {
		return models.Project{}, ErrDuplicateProjectName
	} else if !errors.Is(err, ErrNotFound) {
		return models.Project{}, err
	}
	if p.CurrentPhase == "" {
		p.CurrentPhase = models.PhaseRequirements
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if err := s.cache.Append(ctx, sheets.SheetProjects, toRow(p)); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// SetPhase writes the project's current phase and overall percent.
func (s *Store) SetPhase(ctx context.Context, name, phase string, progress int) error {
	err := s.cache.UpdateByKey(ctx, sheets.SheetProjects, name, sheets.Row{
		"CurrentPhase": phase,
		"Progress":     strconv.Itoa(progress),
	})
	if errors.Is(err, sheets.ErrRowNotFound) {
		return ErrNotFound
	}
	return err
}

// Delete removes the project row. Dependent ProjectProgress rows are the
// caller's responsibility.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.cache.DeleteByKey(ctx, sheets.SheetProjects, name)
	if errors.Is(err, sheets.ErrRowNotFound) {
		return ErrNotFound
	}
	return err
}

func fromRow(r sheets.Row) models.Project {
	p := models.Project{
		Name:         r["ProjectName"],
		Info:         r["ProjectInfo"],
		AssignedTeam: r["AssignedTeam"],
		CurrentPhase: r["CurrentPhase"],
	}
	if ts, err := time.Parse(timeLayout, r["CreatedAt"]); err == nil {
		p.CreatedAt = ts
	}
	// Progress cells hold free text in old rows; bad values read as 0.
	if n, err := strconv.Atoi(strings.TrimSpace(r["Progress"])); err == nil {
		p.Progress = n
	}
	return p
}

func toRow(p models.Project) sheets.Row {
	return sheets.Row{
		"ProjectName":  p.Name,
		"ProjectInfo":  p.Info,
		"AssignedTeam": p.AssignedTeam,
		"CreatedAt":    p.CreatedAt.UTC().Format(timeLayout),
		"CurrentPhase": p.CurrentPhase,
		"Progress":     strconv.Itoa(p.Progress),
	}
}
