// internal/app/store/likes/likestore.go
package likestore

import (
	"context"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/dalemusser/cohorthub/internal/app/sheetcache"
	"github.com/dalemusser/cohorthub/internal/app/sheets"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

// Store manages the Likes sheet. The sheet has set semantics: at most one
// row per (UpdateID, Email) pair.
type Store struct {
	cache *sheetcache.Cache
}

func New(cache *sheetcache.Cache) *Store {
	return &Store{cache: cache}
}

// ListByUpdate returns the likes on an update from the cached snapshot.
func (s *Store) ListByUpdate(ctx context.Context, updateID string) ([]models.Like, error) {
	rows, err := s.cache.Rows(ctx, sheets.SheetLikes)
	if err != nil {
		return nil, err
	}
	return filter(rows, updateID), nil
}

// CountByUpdate returns the like count for an update.
func (s *Store) CountByUpdate(ctx context.Context, updateID string) (int, error) {
	likes, err := s.ListByUpdate(ctx, updateID)
	if err != nil {
		return 0, err
	}
	return len(likes), nil
}

// HasFresh reports whether the pair exists, bypassing the snapshot. The
// toggle decision must not act on rows up to a TTL stale, or a
// double-submitted like would append a duplicate pair.
func (s *Store) HasFresh(ctx context.Context, updateID, email string) (bool, error) {
	rows, err := s.cache.Refresh(ctx, sheets.SheetLikes)
	if err != nil {
		return false, err
	}
	want := text.Fold(email)
	for _, l := range filter(rows, updateID) {
		if text.Fold(l.Email) == want {
			return true, nil
		}
	}
	return false, nil
}

// Add appends the pair.
func (s *Store) Add(ctx context.Context, updateID, email string) error {
	return s.cache.Append(ctx, sheets.SheetLikes, sheets.Row{
		"UpdateID": updateID,
		"Email":    email,
	})
}

// Remove deletes every row for the pair (more than one can exist only if
// an older client raced the toggle; removing all restores the set).
func (s *Store) Remove(ctx context.Context, updateID, email string) error {
	want := text.Fold(email)
	_, err := s.cache.DeleteWhere(ctx, sheets.SheetLikes, func(r sheets.Row) bool {
		return r["UpdateID"] == updateID && text.Fold(r["Email"]) == want
	})
	return err
}

func filter(rows []sheets.Row, updateID string) []models.Like {
	var out []models.Like
	for _, r := range rows {
		if r["UpdateID"] == updateID {
			out = append(out, models.Like{UpdateID: r["UpdateID"], Email: r["Email"]})
		}
	}
	return out
}
