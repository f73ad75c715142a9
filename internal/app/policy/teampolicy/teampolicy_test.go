package teampolicy_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/cohorthub/internal/app/policy/teampolicy"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func TestCanViewTeam(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	env.SeedTeam(ctx, "Alpha")
	env.SeedTeam(ctx, "Beta")
	env.SeedParticipant(ctx, "Ava", "ava@example.com", "Alpha")

	admin := testutil.WithUser(httptest.NewRequest("GET", "/", nil), testutil.AdminUser())
	if ok, err := teampolicy.CanViewTeam(ctx, env.Participants, admin, "Beta"); err != nil || !ok {
		t.Errorf("admin: got (%v, %v), want (true, nil)", ok, err)
	}

	member := testutil.WithUser(httptest.NewRequest("GET", "/", nil), testutil.ParticipantUser("ava@example.com"))
	if ok, err := teampolicy.CanViewTeam(ctx, env.Participants, member, "Alpha"); err != nil || !ok {
		t.Errorf("own team: got (%v, %v), want (true, nil)", ok, err)
	}
	// Team comparison is case-insensitive like everything keyed off sheet text.
	if ok, err := teampolicy.CanViewTeam(ctx, env.Participants, member, "ALPHA"); err != nil || !ok {
		t.Errorf("own team, different case: got (%v, %v), want (true, nil)", ok, err)
	}
	if ok, err := teampolicy.CanViewTeam(ctx, env.Participants, member, "Beta"); err != nil || ok {
		t.Errorf("other team: got (%v, %v), want (false, nil)", ok, err)
	}

	// Not on the roster at all.
	stranger := testutil.WithUser(httptest.NewRequest("GET", "/", nil), testutil.ParticipantUser("ghost@example.com"))
	if ok, err := teampolicy.CanViewTeam(ctx, env.Participants, stranger, "Alpha"); err != nil || ok {
		t.Errorf("unknown participant: got (%v, %v), want (false, nil)", ok, err)
	}

	anon := httptest.NewRequest("GET", "/", nil)
	if ok, err := teampolicy.CanViewTeam(ctx, env.Participants, anon, "Alpha"); err != nil || ok {
		t.Errorf("anonymous: got (%v, %v), want (false, nil)", ok, err)
	}
}
