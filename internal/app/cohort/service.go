// internal/app/cohort/service.go

// Package cohort is the consistency layer over the per-sheet stores. The
// spreadsheet backend has no transactions, so every compound operation
// here front-loads its validation reads and only then issues the ordered
// single-row writes. A validation failure leaves every sheet untouched.
package cohort

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	commentstore "github.com/dalemusser/cohorthub/internal/app/store/comments"
	likestore "github.com/dalemusser/cohorthub/internal/app/store/likes"
	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	progressstore "github.com/dalemusser/cohorthub/internal/app/store/progress"
	projectstore "github.com/dalemusser/cohorthub/internal/app/store/projects"
	teamstore "github.com/dalemusser/cohorthub/internal/app/store/teams"
	updatestore "github.com/dalemusser/cohorthub/internal/app/store/updates"
	"github.com/dalemusser/cohorthub/internal/app/system/authutil"
	"github.com/dalemusser/cohorthub/internal/app/system/status"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

// Notifier delivers participant emails for cohort events. Delivery is
// fire-and-forget: implementations log failures and never return them
// into the mutation path.
type Notifier interface {
	TeamAssigned(p models.Participant, team string)
	ProjectAssigned(p models.Participant, team, project string)
	PasswordReset(p models.Participant, tempPassword string)
}

// Service wires the stores together and owns the cross-sheet rules.
type Service struct {
	Teams        *teamstore.Store
	Participants *participantstore.Store
	Projects     *projectstore.Store
	Progress     *progressstore.Store
	Updates      *updatestore.Store
	Comments     *commentstore.Store
	Likes        *likestore.Store

	Notify Notifier
	Log    *zap.Logger

	sanitize *bluemonday.Policy
}

// New builds the service. notify may be nil (notifications disabled).
func New(teams *teamstore.Store, participants *participantstore.Store,
	projects *projectstore.Store, progress *progressstore.Store,
	updates *updatestore.Store, comments *commentstore.Store,
	likes *likestore.Store, notify Notifier, logger *zap.Logger) *Service {
	return &Service{
		Teams:        teams,
		Participants: participants,
		Projects:     projects,
		Progress:     progress,
		Updates:      updates,
		Comments:     comments,
		Likes:        likes,
		Notify:       notify,
		Log:          logger,
		sanitize:     bluemonday.StrictPolicy(),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Teams                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// CreateTeam creates a team. Name and description are required; duplicate
// names are a validation failure.
func (s *Service) CreateTeam(ctx context.Context, name, description string) (models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(description) == "" {
		return models.Team{}, invalid("team name and description are required")
	}
	t, err := s.Teams.Create(ctx, models.Team{Name: name, Description: description})
	if errors.Is(err, teamstore.ErrDuplicateTeamName) {
		return models.Team{}, invalid("a team named %q already exists", name)
	}
	return t, err
}

// DeleteTeam removes a team. Projects are a strong reference: if any
// project is still assigned, the delete fails with
// ErrReferentialIntegrity and nothing changes. Participant.Team is the
// weak reference and is cleared first, then the team row is removed, so a
// crash mid-sequence leaves only valid states (unassigned participants).
func (s *Service) DeleteTeam(ctx context.Context, name string) error {
	if _, err := s.Teams.GetByName(ctx, name); err != nil {
		return err
	}
	referenced, err := s.Projects.AnyForTeam(ctx, name)
	if err != nil {
		return err
	}
	if referenced {
		return ErrReferentialIntegrity
	}
	if err := s.Participants.ClearTeam(ctx, name); err != nil {
		return err
	}
	return s.Teams.Delete(ctx, name)
}

// AssignParticipant moves a participant onto a team and notifies them.
func (s *Service) AssignParticipant(ctx context.Context, email, team string) error {
	if _, err := s.Teams.GetByName(ctx, team); err != nil {
		if errors.Is(err, teamstore.ErrNotFound) {
			return invalid("team %q does not exist", team)
		}
		return err
	}
	p, err := s.Participants.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := s.Participants.SetTeam(ctx, p.Email, team); err != nil {
		return err
	}
	if s.Notify != nil {
		s.Notify.TeamAssigned(p, team)
	}
	return nil
}

// AddParticipant puts a new row on the roster. The email must be well
// formed and the team, when given, must already exist; the row is
// created unassigned otherwise. A team placement notifies the
// participant the same way AssignParticipant does.
func (s *Service) AddParticipant(ctx context.Context, name, email, team string) (models.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Participant{}, invalid("participant name is required")
	}
	if err := authutil.ValidateEmail(email); err != nil {
		return models.Participant{}, invalid("%s", err)
	}
	team = strings.TrimSpace(team)
	if team != "" {
		if _, err := s.Teams.GetByName(ctx, team); err != nil {
			if errors.Is(err, teamstore.ErrNotFound) {
				return models.Participant{}, invalid("team %q does not exist", team)
			}
			return models.Participant{}, err
		}
	}
	p, err := s.Participants.Create(ctx, models.Participant{Name: name, Email: email, Team: team})
	if errors.Is(err, participantstore.ErrDuplicateEmail) {
		return models.Participant{}, invalid("a participant with email %q already exists", email)
	}
	if err != nil {
		return models.Participant{}, err
	}
	if p.Team != "" && s.Notify != nil {
		s.Notify.TeamAssigned(p, p.Team)
	}
	return p, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Projects & phase tracking                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// CreateProject assigns a new project to a team and notifies the team's
// members. New projects start at Requirements / 0%.
func (s *Service) CreateProject(ctx context.Context, name, info, team string) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(info) == "" || strings.TrimSpace(team) == "" {
		return models.Project{}, invalid("project name, description, and team are required")
	}
	if _, err := s.Teams.GetByName(ctx, team); err != nil {
		if errors.Is(err, teamstore.ErrNotFound) {
			return models.Project{}, invalid("team %q does not exist", team)
		}
		return models.Project{}, err
	}
	p, err := s.Projects.Create(ctx, models.Project{Name: name, Info: info, AssignedTeam: team})
	if errors.Is(err, projectstore.ErrDuplicateProjectName) {
		return models.Project{}, invalid("a project named %q already exists", name)
	}
	if err != nil {
		return models.Project{}, err
	}
	if s.Notify != nil {
		members, merr := s.Participants.ListByTeam(ctx, team)
		if merr != nil {
			s.Log.Warn("project notification skipped: member lookup failed",
				zap.String("team", team), zap.Error(merr))
		}
		for _, m := range members {
			s.Notify.ProjectAssigned(m, team, p.Name)
		}
	}
	return p, nil
}

// DeleteProject removes a project and its phase-tracking rows. Progress
// rows never outlive the parent project.
func (s *Service) DeleteProject(ctx context.Context, name string) error {
	if _, err := s.Projects.GetByName(ctx, name); err != nil {
		return err
	}
	if _, err := s.Progress.DeleteByProject(ctx, name); err != nil {
		return err
	}
	return s.Projects.Delete(ctx, name)
}

// AdvancePhase records phase progress. The requested phase must be the
// project's current phase (re-submitting status/comments) or its
// immediate successor; skips and backward moves are validation failures.
// Maintenance is terminal.
func (s *Service) AdvancePhase(ctx context.Context, project string, pp models.PhaseProgress, overall int) (models.Project, error) {
	if !models.IsPhase(pp.Phase) {
		return models.Project{}, invalid("unknown phase %q", pp.Phase)
	}
	if pp.Status != "" && !models.IsProgressStatus(pp.Status) {
		return models.Project{}, invalid("unknown status %q", pp.Status)
	}
	if overall < 0 || overall > 100 {
		return models.Project{}, invalid("overall progress must be 0-100")
	}

	proj, err := s.Projects.GetByName(ctx, project)
	if err != nil {
		return models.Project{}, err
	}

	cur := models.PhaseIndex(proj.CurrentPhase)
	req := models.PhaseIndex(pp.Phase)
	switch {
	case req == cur:
		// Re-recording the current phase is always allowed.
	case req == cur+1:
		// Moving forward one phase.
	default:
		return models.Project{}, invalid("cannot move from %q to %q: phases advance one at a time",
			proj.CurrentPhase, pp.Phase)
	}

	pp.ProjectName = proj.Name
	pp.Comments = s.sanitize.Sanitize(pp.Comments)
	if pp.Status == "" {
		pp.Status = models.ProgressInProgress
	}
	if pp.StartDate == "" {
		pp.StartDate = time.Now().UTC().Format("2006-01-02")
	}
	if err := s.Progress.Upsert(ctx, pp); err != nil {
		return models.Project{}, err
	}
	if err := s.Projects.SetPhase(ctx, proj.Name, pp.Phase, overall); err != nil {
		return models.Project{}, err
	}
	proj.CurrentPhase = pp.Phase
	proj.Progress = overall
	return proj, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Updates, comments, likes                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// PostUpdate publishes a progress update from a participant. The author
// must be assigned to a team; the text is sanitized before storage.
func (s *Service) PostUpdate(ctx context.Context, authorEmail, text, phase string) (models.Update, error) {
	if strings.TrimSpace(text) == "" {
		return models.Update{}, invalid("update text is required")
	}
	if phase != "" && !models.IsPhase(phase) {
		return models.Update{}, invalid("unknown phase %q", phase)
	}
	p, err := s.Participants.GetByEmail(ctx, authorEmail)
	if err != nil {
		return models.Update{}, err
	}
	if p.Team == "" {
		return models.Update{}, invalid("you are not assigned to a team yet")
	}
	return s.Updates.Create(ctx, models.Update{
		Team:  p.Team,
		Email: p.Email,
		Text:  s.sanitize.Sanitize(text),
		Phase: phase,
	})
}

// AddComment appends a comment to an existing update.
func (s *Service) AddComment(ctx context.Context, updateID, authorEmail, text string) (models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return models.Comment{}, invalid("comment text is required")
	}
	if _, err := s.Updates.GetByID(ctx, updateID); err != nil {
		return models.Comment{}, err
	}
	return s.Comments.Create(ctx, models.Comment{
		UpdateID: updateID,
		Email:    authorEmail,
		Text:     s.sanitize.Sanitize(text),
	})
}

// ToggleLike flips set membership of (update, participant) in the Likes
// sheet and returns whether the update is liked afterwards. The presence
// check reads the sheet uncached so a double-submitted toggle lands as a
// no-op pair instead of a duplicate row.
func (s *Service) ToggleLike(ctx context.Context, updateID, email string) (bool, error) {
	if _, err := s.Updates.GetByID(ctx, updateID); err != nil {
		return false, err
	}
	liked, err := s.Likes.HasFresh(ctx, updateID, email)
	if err != nil {
		return false, err
	}
	if liked {
		if err := s.Likes.Remove(ctx, updateID, email); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.Likes.Add(ctx, updateID, email); err != nil {
		return false, err
	}
	return true, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Accounts                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// SignUp sets the initial password for a roster participant. Only
// participants the admin has already added can sign up, and only once.
func (s *Service) SignUp(ctx context.Context, email, password string) error {
	if err := authutil.ValidateEmail(email); err != nil {
		return invalid("%s", err.Error())
	}
	p, err := s.Participants.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, participantstore.ErrNotFound) {
			return invalid("no participant found for %q; ask your administrator to add you", email)
		}
		return err
	}
	if p.HasPassword() {
		return invalid("an account already exists for %q; sign in instead", email)
	}
	if err := authutil.ValidatePassword(password); err != nil {
		return invalid("%s", err.Error())
	}
	hash, err := authutil.HashPassword(password)
	if err != nil {
		return err
	}
	return s.Participants.SetPasswordHash(ctx, p.Email, hash)
}

// ChangePassword verifies the current password and stores a new one.
func (s *Service) ChangePassword(ctx context.Context, email, current, next string) error {
	p, err := s.Participants.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !p.HasPassword() || !authutil.CheckPassword(current, p.PasswordHash) {
		return invalid("current password is incorrect")
	}
	if err := authutil.ValidatePassword(next); err != nil {
		return invalid("%s", err.Error())
	}
	hash, err := authutil.HashPassword(next)
	if err != nil {
		return err
	}
	return s.Participants.SetPasswordHash(ctx, p.Email, hash)
}

// ResetPassword generates a temporary password, stores its hash, and
// emails it to the participant. Returns the temporary password so the
// admin UI can display it as a fallback when email is disabled.
func (s *Service) ResetPassword(ctx context.Context, email string) (string, error) {
	p, err := s.Participants.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	temp, err := tempPassword()
	if err != nil {
		return "", err
	}
	hash, err := authutil.HashPassword(temp)
	if err != nil {
		return "", err
	}
	if err := s.Participants.SetPasswordHash(ctx, p.Email, hash); err != nil {
		return "", err
	}
	if s.Notify != nil {
		s.Notify.PasswordReset(p, temp)
	}
	return temp, nil
}

// DeactivateParticipant marks a participant inactive. The roster row is
// kept so their updates and comments stay attributable.
func (s *Service) DeactivateParticipant(ctx context.Context, email string) error {
	p, err := s.Participants.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.Participants.SetStatus(ctx, p.Email, status.Inactive)
}

// tempPassword returns a 10-char random password over an alphabet with
// no look-alike characters.
func tempPassword() (string, error) {
	const alphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate temp password: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
