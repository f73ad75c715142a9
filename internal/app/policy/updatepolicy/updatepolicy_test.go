package updatepolicy_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/cohorthub/internal/app/policy/updatepolicy"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func TestVisibleTeam(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	env.SeedTeam(ctx, "Alpha")
	env.SeedParticipant(ctx, "Ava", "ava@example.com", "Alpha")
	env.SeedParticipant(ctx, "Ben", "ben@example.com", "")

	admin := testutil.WithUser(httptest.NewRequest("GET", "/", nil), testutil.AdminUser())
	if team, ok, err := updatepolicy.VisibleTeam(ctx, env.Participants, admin); err != nil || !ok || team != "" {
		t.Errorf("admin: got (%q, %v, %v), want (\"\", true, nil)", team, ok, err)
	}

	member := testutil.WithUser(httptest.NewRequest("GET", "/", nil), testutil.ParticipantUser("ava@example.com"))
	if team, ok, err := updatepolicy.VisibleTeam(ctx, env.Participants, member); err != nil || !ok || team != "Alpha" {
		t.Errorf("teamed participant: got (%q, %v, %v), want (Alpha, true, nil)", team, ok, err)
	}

	unassigned := testutil.WithUser(httptest.NewRequest("GET", "/", nil), testutil.ParticipantUser("ben@example.com"))
	if _, ok, err := updatepolicy.VisibleTeam(ctx, env.Participants, unassigned); err != nil || ok {
		t.Errorf("unassigned participant: got (ok=%v, err=%v), want (false, nil)", ok, err)
	}

	anon := httptest.NewRequest("GET", "/", nil)
	if _, ok, err := updatepolicy.VisibleTeam(ctx, env.Participants, anon); err != nil || ok {
		t.Errorf("anonymous: got (ok=%v, err=%v), want (false, nil)", ok, err)
	}
}

func TestCanPost(t *testing.T) {
	admin := testutil.WithUser(httptest.NewRequest("GET", "/", nil), testutil.AdminUser())
	member := testutil.WithUser(httptest.NewRequest("GET", "/", nil), testutil.ParticipantUser("ava@example.com"))
	anon := httptest.NewRequest("GET", "/", nil)

	if updatepolicy.CanPost(admin) {
		t.Error("admin should not post updates")
	}
	if !updatepolicy.CanPost(member) {
		t.Error("participant should post updates")
	}
	if updatepolicy.CanPost(anon) {
		t.Error("anonymous should not post updates")
	}
}
