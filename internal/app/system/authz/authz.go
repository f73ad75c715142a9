// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/cohorthub/internal/app/system/auth"
)

// Role names. The portal has exactly one admin (from config) and any
// number of participants (from the Participants_list sheet).
const (
	RoleAdmin       = "admin"
	RoleParticipant = "participant"
	RoleVisitor     = "visitor"
)

// UserCtx returns the user's role (lowercased), name, email, and a found
// flag. If no user is present in context it returns "visitor", "", "",
// false, so callers can trust that ok=true means an authenticated user.
func UserCtx(r *http.Request) (role string, name string, email string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return RoleVisitor, "", "", false
	}
	return strings.ToLower(user.Role), user.Name, user.Email, true
}

// IsAdmin reports whether the current request's user is the admin.
func IsAdmin(r *http.Request) bool {
	return HasRole(r, RoleAdmin)
}

// IsParticipant reports whether the current request's user is a participant.
func IsParticipant(r *http.Request) bool {
	return HasRole(r, RoleParticipant)
}

// SameUser reports whether the current user is the given participant.
// Email comparison is case-insensitive.
func SameUser(r *http.Request, email string) bool {
	_, _, self, ok := UserCtx(r)
	return ok && strings.EqualFold(self, email)
}
