// internal/app/system/mailer/dispatcher.go
package mailer

import (
	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/domain/models"
)

// Dispatcher sends cohort event emails in the background. Each event
// spawns one goroutine; failures are logged and never surfaced to the
// operation that triggered them.
type Dispatcher struct {
	Mailer   *Mailer
	SiteName string
	BaseURL  string
	Log      *zap.Logger
}

func NewDispatcher(m *Mailer, siteName, baseURL string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{Mailer: m, SiteName: siteName, BaseURL: baseURL, Log: logger}
}

// TeamAssigned notifies a participant they joined a team.
func (d *Dispatcher) TeamAssigned(p models.Participant, team string) {
	e := BuildTeamAssignedEmail(TeamAssignedData{
		SiteName: d.SiteName,
		Name:     p.DisplayName(),
		Team:     team,
		BaseURL:  d.BaseURL,
	})
	e.To = p.Email
	d.send("team_assigned", e)
}

// ProjectAssigned notifies a team member about a new project.
func (d *Dispatcher) ProjectAssigned(p models.Participant, team, project string) {
	e := BuildProjectAssignedEmail(ProjectAssignedData{
		SiteName: d.SiteName,
		Name:     p.DisplayName(),
		Team:     team,
		Project:  project,
		BaseURL:  d.BaseURL,
	})
	e.To = p.Email
	d.send("project_assigned", e)
}

// PasswordReset sends the temporary password to a participant.
func (d *Dispatcher) PasswordReset(p models.Participant, tempPassword string) {
	e := BuildPasswordResetEmail(PasswordResetData{
		SiteName:     d.SiteName,
		Name:         p.DisplayName(),
		TempPassword: tempPassword,
		BaseURL:      d.BaseURL,
	})
	e.To = p.Email
	d.send("password_reset", e)
}

func (d *Dispatcher) send(kind string, e Email) {
	go func() {
		if err := d.Mailer.Send(e); err != nil {
			d.Log.Error("notification email failed",
				zap.String("kind", kind),
				zap.String("to", e.To),
				zap.Error(err))
			return
		}
		d.Log.Info("notification email sent",
			zap.String("kind", kind),
			zap.String("to", e.To))
	}()
}
