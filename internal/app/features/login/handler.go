// internal/app/features/login/handler.go
package login

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/features/shared/httpapi"
	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	"github.com/dalemusser/cohorthub/internal/app/system/auth"
	"github.com/dalemusser/cohorthub/internal/app/system/authutil"
	"github.com/dalemusser/cohorthub/internal/app/system/authz"
	"github.com/dalemusser/cohorthub/internal/app/system/status"
	"github.com/dalemusser/cohorthub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/text"
)

type Handler struct {
	Participants *participantstore.Store
	Log          *zap.Logger

	// Admin credentials come from config, not the roster sheet, and are
	// checked before the sheet is consulted.
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func NewHandler(participants *participantstore.Store, adminEmail, adminPassword, adminName string, logger *zap.Logger) *Handler {
	return &Handler{
		Participants:  participants,
		Log:           logger,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
		AdminName:     adminName,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleLogin authenticates a user and writes the session cookie.
// The admin account (from config) is checked first; on a miss the
// participant roster is consulted and the bcrypt hash verified.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpapi.Decode(w, r, &req); err != nil {
		httpapi.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		httpapi.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if h.isAdmin(req.Email, req.Password) {
		u := auth.SessionUser{Name: h.AdminName, Email: h.AdminEmail, Role: authz.RoleAdmin}
		if err := auth.SignIn(w, r, u); err != nil {
			h.Log.Error("save session failed", zap.Error(err), zap.String("email", req.Email))
			httpapi.Error(w, http.StatusInternalServerError, "unable to create session")
			return
		}
		h.Log.Info("admin signed in", zap.String("email", req.Email))
		httpapi.WriteJSON(w, http.StatusOK, loginResponse{Name: u.Name, Email: u.Email, Role: u.Role})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Participants.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, participantstore.ErrNotFound) {
			httpapi.Error(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		httpapi.ServiceError(w, h.Log, err)
		return
	}

	if p.Status == status.Inactive {
		httpapi.Error(w, http.StatusForbidden, "your account is disabled; contact an administrator")
		return
	}
	if !p.HasPassword() {
		httpapi.Error(w, http.StatusUnauthorized, "no account yet for this email; sign up first")
		return
	}
	if !authutil.CheckPassword(req.Password, p.PasswordHash) {
		h.Log.Info("login failed: wrong password", zap.String("email", req.Email))
		httpapi.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	u := auth.SessionUser{Name: p.Name, Email: p.Email, Role: authz.RoleParticipant}
	if err := auth.SignIn(w, r, u); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("email", req.Email))
		httpapi.Error(w, http.StatusInternalServerError, "unable to create session")
		return
	}
	h.Log.Info("participant signed in", zap.String("email", p.Email))
	httpapi.WriteJSON(w, http.StatusOK, loginResponse{Name: u.Name, Email: u.Email, Role: u.Role})
}

// isAdmin checks the configured admin credentials in constant time.
func (h *Handler) isAdmin(email, password string) bool {
	if h.AdminEmail == "" || h.AdminPassword == "" {
		return false
	}
	emailOK := text.Fold(email) == text.Fold(h.AdminEmail)
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(h.AdminPassword)) == 1
	return emailOK && passOK
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /me                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleMe returns the signed-in user, or 401.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.Error(w, http.StatusUnauthorized, "not signed in")
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, loginResponse{Name: u.Name, Email: u.Email, Role: u.Role})
}
