// internal/app/policy/updatepolicy/updatepolicy.go
package updatepolicy

import (
	"context"
	"errors"
	"net/http"

	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
)

// VisibleTeam returns the team whose updates the current request user may
// read, and a found flag. Admins get "" meaning every team; participants
// get their own team from the roster sheet. A participant without a team
// assignment sees nothing (ok=false).
func VisibleTeam(ctx context.Context, participants *participantstore.Store, r *http.Request) (string, bool, error) {
	role, _, email, ok := authz.UserCtx(r)
	if !ok {
		return "", false, nil
	}
	if role == authz.RoleAdmin {
		return "", true, nil
	}
	p, err := participants.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, participantstore.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	if p.Team == "" {
		return "", false, nil
	}
	return p.Team, true, nil
}

// CanPost reports whether the current request user can publish updates.
// Only roster participants post; the admin observes and comments.
func CanPost(r *http.Request) bool {
	return authz.IsParticipant(r)
}
