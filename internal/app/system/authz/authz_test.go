package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/cohorthub/internal/app/system/auth"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
)

func TestIsAdmin_True(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		Email: "admin@cohorthub.local",
		Role:  "admin",
	})

	if !authz.IsAdmin(req) {
		t.Error("expected IsAdmin to return true for admin user")
	}
}

func TestIsAdmin_False_ForParticipant(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		Email: "ava@example.com",
		Role:  "participant",
	})

	if authz.IsAdmin(req) {
		t.Error("expected IsAdmin to return false for participant user")
	}
}

func TestIsAdmin_False_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)

	if authz.IsAdmin(req) {
		t.Error("expected IsAdmin to return false when no user")
	}
}

func TestIsParticipant_True(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		Email: "ava@example.com",
		Role:  "Participant",
	})

	if !authz.IsParticipant(req) {
		t.Error("expected IsParticipant to return true regardless of role case")
	}
}

func TestSameUser_CaseInsensitive(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		Email: "Ava@Example.com",
		Role:  "participant",
	})

	if !authz.SameUser(req, "ava@example.com") {
		t.Error("expected SameUser to match emails case-insensitively")
	}
	if authz.SameUser(req, "ben@example.com") {
		t.Error("expected SameUser to reject a different email")
	}
}

func TestUserCtx_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)

	role, name, email, ok := authz.UserCtx(req)
	if ok {
		t.Fatal("expected UserCtx to return ok=false with no user")
	}
	if role != authz.RoleVisitor || name != "" || email != "" {
		t.Errorf("expected visitor defaults, got role=%q name=%q email=%q", role, name, email)
	}
}

func TestHasAnyRole(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		Email: "ava@example.com",
		Role:  "participant",
	})

	if !authz.HasAnyRole(req, "admin", "participant") {
		t.Error("expected HasAnyRole to match participant")
	}
	if authz.HasAnyRole(req, "admin") {
		t.Error("expected HasAnyRole to reject admin-only list")
	}
}

func TestHasAnyRole_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)

	if authz.HasAnyRole(req, "admin", "participant", "visitor") {
		t.Error("expected HasAnyRole to reject anonymous requests")
	}
}
