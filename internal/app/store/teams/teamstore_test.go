package teamstore_test

import (
	"context"
	"errors"
	"testing"

	teamstore "github.com/dalemusser/cohorthub/internal/app/store/teams"
	"github.com/dalemusser/cohorthub/internal/domain/models"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func TestCreateAndGet(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	created, err := env.Teams.Create(ctx, models.Team{Name: "Alpha", Description: "first"})
	if err != nil {
		t.Fatal(err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := env.Teams.GetByName(ctx, "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "first" {
		t.Errorf("description: got %q", got.Description)
	}

	// Lookup is case-insensitive.
	if _, err := env.Teams.GetByName(ctx, "ALPHA"); err != nil {
		t.Errorf("case-insensitive lookup failed: %v", err)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	if _, err := env.Teams.Create(ctx, models.Team{Name: "Alpha", Description: "first"}); err != nil {
		t.Fatal(err)
	}
	_, err := env.Teams.Create(ctx, models.Team{Name: "alpha", Description: "again"})
	if !errors.Is(err, teamstore.ErrDuplicateTeamName) {
		t.Errorf("expected ErrDuplicateTeamName, got %v", err)
	}
}

func TestGetByName_NotFound(t *testing.T) {
	env := testutil.NewEnv(t)

	_, err := env.Teams.GetByName(context.Background(), "Ghost")
	if !errors.Is(err, teamstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	env.SeedTeam(ctx, "Alpha")
	if err := env.Teams.Delete(ctx, "Alpha"); err != nil {
		t.Fatal(err)
	}
	if _, err := env.Teams.GetByName(ctx, "Alpha"); !errors.Is(err, teamstore.ErrNotFound) {
		t.Errorf("expected the team to be gone, got %v", err)
	}
}

func TestExists(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	env.SeedTeam(ctx, "Alpha")

	if ok, err := env.Teams.Exists(ctx, "Alpha"); err != nil || !ok {
		t.Errorf("Exists(Alpha): got (%v, %v)", ok, err)
	}
	if ok, err := env.Teams.Exists(ctx, "Ghost"); err != nil || ok {
		t.Errorf("Exists(Ghost): got (%v, %v)", ok, err)
	}
}
