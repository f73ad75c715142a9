package login_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/features/login"
	"github.com/dalemusser/cohorthub/internal/app/system/auth"
	"github.com/dalemusser/cohorthub/internal/app/system/authutil"
	"github.com/dalemusser/cohorthub/internal/app/system/status"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func initSessions(t *testing.T) {
	t.Helper()
	if err := auth.InitSessionStore("test-session-key-must-be-32-chars-long", "", false, zap.NewNop()); err != nil {
		t.Fatalf("init session store: %v", err)
	}
}

func newHandler(t *testing.T, env *testutil.Env) *login.Handler {
	t.Helper()
	initSessions(t)
	return login.NewHandler(env.Participants, "admin@cohorthub.test", "admin-secret", "Program Admin", zap.NewNop())
}

func TestHandleLogin_Admin(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(t, env)

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"email":    "admin@cohorthub.test",
		"password": "admin-secret",
	})
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Role string `json:"role"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Role != "admin" {
		t.Errorf("role: got %q, want %q", resp.Role, "admin")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Error("expected a session cookie to be set")
	}
}

func TestHandleLogin_AdminWrongPassword(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(t, env)

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"email":    "admin@cohorthub.test",
		"password": "wrong",
	})
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandleLogin_Participant(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(t, env)
	ctx := context.Background()

	hash, err := authutil.HashPassword("hunter22")
	if err != nil {
		t.Fatal(err)
	}
	env.SeedParticipant(ctx, "Ava", "ava@example.com", "")
	if err := env.Participants.SetPasswordHash(ctx, "ava@example.com", hash); err != nil {
		t.Fatal(err)
	}

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"email":    "ava@example.com",
		"password": "hunter22",
	})
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Role  string `json:"role"`
		Email string `json:"email"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Role != "participant" {
		t.Errorf("role: got %q, want %q", resp.Role, "participant")
	}
	if resp.Email != "ava@example.com" {
		t.Errorf("email: got %q, want %q", resp.Email, "ava@example.com")
	}
}

func TestHandleLogin_ParticipantWrongPassword(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(t, env)
	ctx := context.Background()

	hash, _ := authutil.HashPassword("hunter22")
	env.SeedParticipant(ctx, "Ava", "ava@example.com", "")
	if err := env.Participants.SetPasswordHash(ctx, "ava@example.com", hash); err != nil {
		t.Fatal(err)
	}

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"email":    "ava@example.com",
		"password": "wrong",
	})
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandleLogin_NoPasswordYet(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(t, env)
	ctx := context.Background()

	env.SeedParticipant(ctx, "Ben", "ben@example.com", "")

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"email":    "ben@example.com",
		"password": "anything",
	})
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandleLogin_InactiveParticipant(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(t, env)
	ctx := context.Background()

	hash, _ := authutil.HashPassword("hunter22")
	env.SeedParticipant(ctx, "Cam", "cam@example.com", "")
	if err := env.Participants.SetPasswordHash(ctx, "cam@example.com", hash); err != nil {
		t.Fatal(err)
	}
	if err := env.Participants.SetStatus(ctx, "cam@example.com", status.Inactive); err != nil {
		t.Fatal(err)
	}

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"email":    "cam@example.com",
		"password": "hunter22",
	})
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestHandleLogin_UnknownEmail(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(t, env)

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandleMe(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(t, env)

	req := httptest.NewRequest("GET", "/me", nil)
	req = testutil.WithUser(req, testutil.ParticipantUser("ava@example.com"))
	rec := httptest.NewRecorder()

	h.HandleMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		Email string `json:"email"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Email != "ava@example.com" {
		t.Errorf("email: got %q, want %q", resp.Email, "ava@example.com")
	}
}

func TestHandleMe_NotSignedIn(t *testing.T) {
	env := testutil.NewEnv(t)
	h := newHandler(t, env)

	req := httptest.NewRequest("GET", "/me", nil)
	rec := httptest.NewRecorder()

	h.HandleMe(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}
