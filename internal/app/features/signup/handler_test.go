package signup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/features/signup"
	"github.com/dalemusser/cohorthub/internal/app/system/authutil"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func TestHandleSignup_RosterParticipant(t *testing.T) {
	env := testutil.NewEnv(t)
	h := signup.NewHandler(env.Service, zap.NewNop())
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ava", "ava@example.com", "")

	req := testutil.NewJSONRequest(t, "POST", "/signup", map[string]string{
		"email":    "ava@example.com",
		"password": "hunter22",
	})
	rec := httptest.NewRecorder()

	h.HandleSignup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	p, err := env.Participants.GetByEmail(ctx, "ava@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !p.HasPassword() {
		t.Error("expected password hash to be stored")
	}
	if !authutil.CheckPassword("hunter22", p.PasswordHash) {
		t.Error("expected stored hash to verify the password")
	}
}

func TestHandleSignup_NotOnRoster(t *testing.T) {
	env := testutil.NewEnv(t)
	h := signup.NewHandler(env.Service, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/signup", map[string]string{
		"email":    "stranger@example.com",
		"password": "hunter22",
	})
	rec := httptest.NewRecorder()

	h.HandleSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleSignup_AlreadyRegistered(t *testing.T) {
	env := testutil.NewEnv(t)
	h := signup.NewHandler(env.Service, zap.NewNop())
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ava", "ava@example.com", "")
	hash, _ := authutil.HashPassword("existing1")
	if err := env.Participants.SetPasswordHash(ctx, "ava@example.com", hash); err != nil {
		t.Fatal(err)
	}

	req := testutil.NewJSONRequest(t, "POST", "/signup", map[string]string{
		"email":    "ava@example.com",
		"password": "hunter22",
	})
	rec := httptest.NewRecorder()

	h.HandleSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleSignup_ShortPassword(t *testing.T) {
	env := testutil.NewEnv(t)
	h := signup.NewHandler(env.Service, zap.NewNop())
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ava", "ava@example.com", "")

	req := testutil.NewJSONRequest(t, "POST", "/signup", map[string]string{
		"email":    "ava@example.com",
		"password": "short",
	})
	rec := httptest.NewRecorder()

	h.HandleSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
