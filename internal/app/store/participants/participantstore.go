// internal/app/store/participants/participantstore.go
package participantstore

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/dalemusser/cohorthub/internal/app/sheetcache"
	"github.com/dalemusser/cohorthub/internal/app/sheets"
	"github.com/dalemusser/cohorthub/internal/app/system/status"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

var (
	ErrNotFound       = errors.New("participant not found")
	ErrDuplicateEmail = errors.New("a participant with this email already exists")
)

type Store struct {
	cache *sheetcache.Cache
}

func New(cache *sheetcache.Cache) *Store {
	return &Store{cache: cache}
}

// List returns all participants with a non-empty email, in sheet order.
// Rows without an email are import artifacts and are skipped.
func (s *Store) List(ctx context.Context) ([]models.Participant, error) {
	rows, err := s.cache.Rows(ctx, sheets.SheetParticipants)
	if err != nil {
		return nil, err
	}
	out := make([]models.Participant, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r["Email"]) == "" {
			continue
		}
		out = append(out, fromRow(r))
	}
	return out, nil
}

// GetByEmail returns the participant with the given email (case-folded).
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Participant, error) {
	all, err := s.List(ctx)
	if err != nil {
		return models.Participant{}, err
	}
	want := text.Fold(strings.TrimSpace(email))
	for _, p := range all {
		if text.Fold(p.Email) == want {
			return p, nil
		}
	}
	return models.Participant{}, ErrNotFound
}

// ListByTeam returns the participants assigned to the named team.
func (s *Store) ListByTeam(ctx context.Context, team string) ([]models.Participant, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	want := text.Fold(team)
	var out []models.Participant
	for _, p := range all {
		if text.Fold(p.Team) == want {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create appends a participant row, rejecting duplicate emails.
func (s *Store) Create(ctx context.Context, p models.Participant) (models.Participant, error) {
	p.Email = strings.TrimSpace(p.Email)
	if _, err := s.GetByEmail(ctx, p.Email); err == nil {
		return models.Participant{}, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return models.Participant{}, err
	}
	if p.Status == "" {
		p.Status = status.Active
	}
	if err := s.cache.Append(ctx, sheets.SheetParticipants, toRow(p)); err != nil {
		return models.Participant{}, err
	}
	return p, nil
}

// SetTeam writes the participant's team assignment.
func (s *Store) SetTeam(ctx context.Context, email, team string) error {
	return s.patch(ctx, email, sheets.Row{"Team": team})
}

// ClearTeam blanks the Team cell on every participant assigned to the
// named team. Clearing an unreferenced team is a no-op, not an error.
func (s *Store) ClearTeam(ctx context.Context, team string) error {
	want := text.Fold(team)
	err := s.cache.UpdateWhere(ctx, sheets.SheetParticipants,
		func(r sheets.Row) bool { return text.Fold(r["Team"]) == want },
		sheets.Row{"Team": ""})
	if errors.Is(err, sheets.ErrRowNotFound) {
		return nil
	}
	return err
}

// SetPasswordHash stores a new credential hash for the participant.
func (s *Store) SetPasswordHash(ctx context.Context, email, hash string) error {
	return s.patch(ctx, email, sheets.Row{"PasswordHash": hash})
}

// SetStatus flips the participant's status (active/inactive). Rows are
// never deleted so authored history keeps resolving.
func (s *Store) SetStatus(ctx context.Context, email, stat string) error {
	return s.patch(ctx, email, sheets.Row{"Status": stat})
}

func (s *Store) patch(ctx context.Context, email string, patch sheets.Row) error {
	want := text.Fold(strings.TrimSpace(email))
	err := s.cache.UpdateWhere(ctx, sheets.SheetParticipants,
		func(r sheets.Row) bool { return text.Fold(r["Email"]) == want },
		patch)
	if errors.Is(err, sheets.ErrRowNotFound) {
		return ErrNotFound
	}
	return err
}

func fromRow(r sheets.Row) models.Participant {
	return models.Participant{
		Name:         strings.TrimSpace(r["Name"]),
		Email:        strings.TrimSpace(r["Email"]),
		Team:         strings.TrimSpace(r["Team"]),
		Status:       r["Status"],
		PasswordHash: r["PasswordHash"],
	}
}

func toRow(p models.Participant) sheets.Row {
	return sheets.Row{
		"Name":         p.Name,
		"Email":        p.Email,
		"Team":         p.Team,
		"Status":       p.Status,
		"PasswordHash": p.PasswordHash,
	}
}
