// internal/app/policy/teampolicy/teampolicy.go
package teampolicy

import (
	"context"
	"errors"
	"net/http"

	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/text"
)

// CanViewTeam reports whether the current request user can see a team's
// roster and projects:
//   - Admins always can
//   - Participants can only view their own team, per the roster sheet
//
// Returns an error if the roster lookup fails, allowing callers to
// distinguish "not authorized" (false, nil) from "backend error"
// (false, err).
func CanViewTeam(ctx context.Context, participants *participantstore.Store, r *http.Request, team string) (bool, error) {
	role, _, email, ok := authz.UserCtx(r)
	if !ok {
		return false, nil
	}
	if role == authz.RoleAdmin {
		return true, nil
	}
	p, err := participants.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, participantstore.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return text.Fold(p.Team) == text.Fold(team), nil
}
