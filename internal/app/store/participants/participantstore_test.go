package participantstore_test

import (
	"context"
	"errors"
	"testing"

	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	"github.com/dalemusser/cohorthub/internal/app/system/status"
	"github.com/dalemusser/cohorthub/internal/domain/models"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func TestCreate_DefaultsAndDuplicates(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	p, err := env.Participants.Create(ctx, models.Participant{Name: "Ava", Email: " ava@example.com "})
	if err != nil {
		t.Fatal(err)
	}
	if p.Email != "ava@example.com" {
		t.Errorf("email not trimmed: %q", p.Email)
	}
	if p.Status != status.Active {
		t.Errorf("status default: got %q, want %q", p.Status, status.Active)
	}

	_, err = env.Participants.Create(ctx, models.Participant{Name: "Ava 2", Email: "AVA@example.com"})
	if !errors.Is(err, participantstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestListByTeam(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ava", "ava@example.com", "Alpha")
	env.SeedParticipant(ctx, "Ben", "ben@example.com", "Beta")
	env.SeedParticipant(ctx, "Cal", "cal@example.com", "alpha")

	members, err := env.Participants.ListByTeam(ctx, "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 Alpha members (case-insensitive), got %d", len(members))
	}
}

func TestSetTeamAndClearTeam(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ava", "ava@example.com", "")
	env.SeedParticipant(ctx, "Ben", "ben@example.com", "Alpha")

	if err := env.Participants.SetTeam(ctx, "ava@example.com", "Alpha"); err != nil {
		t.Fatal(err)
	}
	if err := env.Participants.ClearTeam(ctx, "Alpha"); err != nil {
		t.Fatal(err)
	}
	for _, email := range []string{"ava@example.com", "ben@example.com"} {
		p, err := env.Participants.GetByEmail(ctx, email)
		if err != nil {
			t.Fatal(err)
		}
		if p.Team != "" {
			t.Errorf("%s: team not cleared, got %q", email, p.Team)
		}
	}

	// Clearing a team nobody belongs to is a no-op, not an error.
	if err := env.Participants.ClearTeam(ctx, "Ghost"); err != nil {
		t.Errorf("clearing an empty team should be a no-op: %v", err)
	}
}

func TestPatchUnknownEmail(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	err := env.Participants.SetStatus(ctx, "ghost@example.com", status.Inactive)
	if !errors.Is(err, participantstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetPasswordHash(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ava", "ava@example.com", "")
	if err := env.Participants.SetPasswordHash(ctx, "ava@example.com", "$2a$10$fakehash"); err != nil {
		t.Fatal(err)
	}
	p, err := env.Participants.GetByEmail(ctx, "ava@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !p.HasPassword() {
		t.Error("expected HasPassword after SetPasswordHash")
	}
}
