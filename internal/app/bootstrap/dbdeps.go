// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
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
	"github.com/dalemusser/cohorthub/internal/app/system/mailer"
)

// DBDeps bundles the backend stack: the Sheets client, the caching
// layer, the per-sheet stores, the consistency service, and the mailer.
// Everything downstream of the spreadsheet hangs off this struct.
type DBDeps struct {
	Backend sheets.Backend
	Client  *sheets.Client
	Cache   *sheetcache.Cache

	Teams        *teamstore.Store
	Participants *participantstore.Store
	Projects     *projectstore.Store
	Progress     *progressstore.Store
	Updates      *updatestore.Store
	Comments     *commentstore.Store
	Likes        *likestore.Store

	Mailer     *mailer.Mailer
	Dispatcher *mailer.Dispatcher
	Service    *cohort.Service
}
