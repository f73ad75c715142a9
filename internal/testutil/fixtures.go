package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/cohort"
	"github.com/dalemusser/cohorthub/internal/app/sheetcache"
	"github.com/dalemusser/cohorthub/internal/app/sheets"
	commentstore "github.com/dalemusser/cohorthub/internal/app/store/comments"
	likestore "github.com/dalemusser/cohorthub/internal/app/store/likes"
	participantstore "github.com/dalemusser/cohorthub/internal/app/store/participants"
	progressstore "github.com/dalemusser/cohorthub/internal/app/store/progress"
	projectstore "github.com/dalemusser/cohorthub/internal/app/store/projects"
	teamstore "github.com/dalemusser/cohorthub/internal/app/store/teams"
	updatestore "github.com/dalemusser/cohorthub/internal/app/store/updates"
	"github.com/dalemusser/cohorthub/internal/domain/models"
)

// Env wires a full store stack over a FakeBackend for tests.
type Env struct {
	Backend *FakeBackend
	Client  *sheets.Client
	Cache   *sheetcache.Cache

	Teams        *teamstore.Store
	Participants *participantstore.Store
	Projects     *projectstore.Store
	Progress     *progressstore.Store
	Updates      *updatestore.Store
	Comments     *commentstore.Store
	Likes        *likestore.Store

	Notifier *RecordingNotifier
	Service  *cohort.Service

	t *testing.T
}

// NewEnv builds the stack with the default cache TTL. The cache janitor
// is stopped automatically when the test finishes.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	return NewEnvTTL(t, sheetcache.DefaultTTL)
}

// NewEnvTTL is NewEnv with an explicit snapshot TTL, for cache expiry
// tests.
func NewEnvTTL(t *testing.T, ttl time.Duration) *Env {
	t.Helper()

	logger := zap.NewNop()
	backend := NewFakeBackend()
	client := sheets.NewClient(backend, logger)
	cache := sheetcache.New(client, ttl, logger)
	t.Cleanup(cache.Stop)

	env := &Env{
		Backend:      backend,
		Client:       client,
		Cache:        cache,
		Teams:        teamstore.New(cache),
		Participants: participantstore.New(cache),
		Projects:     projectstore.New(cache),
		Progress:     progressstore.New(cache),
		Updates:      updatestore.New(cache),
		Comments:     commentstore.New(cache),
		Likes:        likestore.New(cache),
		Notifier:     &RecordingNotifier{},
		t:            t,
	}
	env.Service = cohort.New(
		env.Teams, env.Participants, env.Projects, env.Progress,
		env.Updates, env.Comments, env.Likes,
		env.Notifier, logger,
	)
	return env
}

/*─────────────────────────────────────────────────────────────────────────────*
| Seed helpers                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// SeedTeam creates a team directly through the store.
func (e *Env) SeedTeam(ctx context.Context, name string) models.Team {
	e.t.Helper()
	team, err := e.Teams.Create(ctx, models.Team{Name: name, Description: name + " description"})
	if err != nil {
		e.t.Fatalf("seed team %q: %v", name, err)
	}
	return team
}

// SeedParticipant creates an active roster participant.
func (e *Env) SeedParticipant(ctx context.Context, name, email, team string) models.Participant {
	e.t.Helper()
	p, err := e.Participants.Create(ctx, models.Participant{Name: name, Email: email, Team: team})
	if err != nil {
		e.t.Fatalf("seed participant %q: %v", email, err)
	}
	return p
}

// SeedProject creates a project assigned to a team. The team must exist.
func (e *Env) SeedProject(ctx context.Context, name, team string) models.Project {
	e.t.Helper()
	p, err := e.Projects.Create(ctx, models.Project{Name: name, Info: name + " info", AssignedTeam: team})
	if err != nil {
		e.t.Fatalf("seed project %q: %v", name, err)
	}
	return p
}

// SeedUpdate creates a progress update for a team.
func (e *Env) SeedUpdate(ctx context.Context, team, email, text string) models.Update {
	e.t.Helper()
	u, err := e.Updates.Create(ctx, models.Update{Team: team, Email: email, Text: text})
	if err != nil {
		e.t.Fatalf("seed update for %q: %v", team, err)
	}
	return u
}

/*─────────────────────────────────────────────────────────────────────────────*
| Recording notifier                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// Notification is one recorded notifier call.
type Notification struct {
	Kind    string // "team_assigned", "project_assigned", "password_reset"
	Email   string
	Team    string
	Project string
	Temp    string
}

// RecordingNotifier captures notifications instead of sending email.
type RecordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

func (n *RecordingNotifier) TeamAssigned(p models.Participant, team string) {
	n.record(Notification{Kind: "team_assigned", Email: p.Email, Team: team})
}

func (n *RecordingNotifier) ProjectAssigned(p models.Participant, team, project string) {
	n.record(Notification{Kind: "project_assigned", Email: p.Email, Team: team, Project: project})
}

func (n *RecordingNotifier) PasswordReset(p models.Participant, tempPassword string) {
	n.record(Notification{Kind: "password_reset", Email: p.Email, Temp: tempPassword})
}

func (n *RecordingNotifier) record(v Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, v)
}

// Sent returns a copy of the recorded notifications.
func (n *RecordingNotifier) Sent() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.sent...)
}
