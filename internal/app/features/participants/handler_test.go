package participants_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/features/participants"
	"github.com/dalemusser/cohorthub/internal/app/system/authutil"
	"github.com/dalemusser/cohorthub/internal/app/system/status"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func newHandler(env *testutil.Env) *participants.Handler {
	return participants.NewHandler(env.Service, env.Participants, zap.NewNop())
}

func TestHandleList(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(env)
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ava", "ava@example.com", "")
	env.SeedParticipant(ctx, "Ben", "ben@example.com", "")

	req := httptest.NewRequest("GET", "/participants", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got []struct {
		Email string `json:"email"`
	}
	testutil.DecodeJSON(t, rec, &got)
	if len(got) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(got))
	}
}

func TestHandleAdd(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(env)

	req := testutil.NewJSONRequest(t, "POST", "/participants", map[string]string{
		"name":  "Ava",
		"email": "ava@example.com",
	})
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.HandleAdd(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	p, err := env.Participants.GetByEmail(context.Background(), "ava@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != status.Active {
		t.Errorf("status: got %q, want %q", p.Status, status.Active)
	}
	if p.HasPassword() {
		t.Error("expected a fresh roster row to have no password hash")
	}
}

func TestHandleAdd_DuplicateEmail(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(env)
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ava", "ava@example.com", "")

	req := testutil.NewJSONRequest(t, "POST", "/participants", map[string]string{
		"name":  "Ava Again",
		"email": "Ava@Example.com",
	})
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.HandleAdd(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleAdd_WithTeam(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(env)
	ctx := context.Background()

	env.SeedTeam(ctx, "Alpha")

	req := testutil.NewJSONRequest(t, "POST", "/participants", map[string]string{
		"name":  "Ava",
		"email": "ava@example.com",
		"team":  "Alpha",
	})
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.HandleAdd(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	p, err := env.Participants.GetByEmail(ctx, "ava@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if p.Team != "Alpha" {
		t.Errorf("team: got %q, want Alpha", p.Team)
	}

	sent := env.Notifier.Sent()
	if len(sent) != 1 || sent[0].Kind != "team_assigned" || sent[0].Team != "Alpha" {
		t.Errorf("unexpected notifications %+v", sent)
	}
}

func TestHandleAdd_UnknownTeam(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(env)
	ctx := context.Background()

	req := testutil.NewJSONRequest(t, "POST", "/participants", map[string]string{
		"name":  "Ghost",
		"email": "ghost@example.com",
		"team":  "NoSuchTeam",
	})
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.HandleAdd(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, rec.Code, rec.Body.String())
	}

	// No roster row may be written on a refused placement.
	if _, err := env.Participants.GetByEmail(ctx, "ghost@example.com"); err == nil {
		t.Error("expected no roster row for a participant with an unknown team")
	}
}

func TestHandleAdd_BadEmail(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(env)

	for _, email := range []string{"", "   ", "not-an-address"} {
		req := testutil.NewJSONRequest(t, "POST", "/participants", map[string]string{
			"name":  "Ava",
			"email": email,
		})
		req = testutil.WithUser(req, testutil.AdminUser())
		rec := httptest.NewRecorder()

		h.HandleAdd(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("email %q: expected status %d, got %d", email, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestHandleResetPassword(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(env)
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ava", "ava@example.com", "")

	req := httptest.NewRequest("POST", "/participants/ava@example.com/reset-password", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "email", "ava@example.com")
	rec := httptest.NewRecorder()

	h.HandleResetPassword(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		TempPassword string `json:"temp_password"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.TempPassword == "" {
		t.Fatal("expected a temp password in the response")
	}

	p, err := env.Participants.GetByEmail(ctx, "ava@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !authutil.CheckPassword(resp.TempPassword, p.PasswordHash) {
		t.Error("expected temp password to verify against stored hash")
	}

	sent := env.Notifier.Sent()
	if len(sent) != 1 || sent[0].Kind != "password_reset" {
		t.Fatalf("expected one password_reset notification, got %+v", sent)
	}
	if sent[0].Temp != resp.TempPassword {
		t.Error("expected notification to carry the same temp password")
	}
}

func TestHandleResetPassword_UnknownEmail(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(env)

	req := httptest.NewRequest("POST", "/participants/nobody@example.com/reset-password", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "email", "nobody@example.com")
	rec := httptest.NewRecorder()

	h.HandleResetPassword(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandleDeactivate(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(env)
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ava", "ava@example.com", "Alpha")

	req := httptest.NewRequest("POST", "/participants/ava@example.com/deactivate", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "email", "ava@example.com")
	rec := httptest.NewRecorder()

	h.HandleDeactivate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	p, err := env.Participants.GetByEmail(ctx, "ava@example.com")
	if err != nil {
		t.Fatalf("expected roster row to survive deactivation: %v", err)
	}
	if p.Status != status.Inactive {
		t.Errorf("status: got %q, want %q", p.Status, status.Inactive)
	}
}
