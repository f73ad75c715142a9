// internal/app/sheets/schema.go
package sheets

// Worksheet names inside the cohort spreadsheet.
const (
	SheetTeams        = "Teams"
	SheetParticipants = "Participants_list"
	SheetProjects     = "Projects"
	SheetProgress     = "ProjectProgress"
	SheetUpdates      = "Updates"
	SheetComments     = "Comments"
	SheetLikes        = "Likes"
)

// Schema declares the header row and logical key column of one worksheet.
// The spreadsheet has no real schema; the header row is the contract, so
// it is verified once at startup instead of failing lazily on the first
// malformed row.
type Schema struct {
	Sheet   string
	Key     string // primary key column; empty for sheets keyed by a column pair
	Columns []string
}

// Schemas lists every worksheet the application owns, in the order they
// are ensured at startup.
var Schemas = []Schema{
	{
		Sheet:   SheetTeams,
		Key:     "TeamName",
		Columns: []string{"TeamName", "Description", "CreatedAt"},
	},
	{
		Sheet:   SheetParticipants,
		Key:     "Email",
		Columns: []string{"Name", "Email", "Team", "Status", "PasswordHash"},
	},
	{
		Sheet:   SheetProjects,
		Key:     "ProjectName",
		Columns: []string{"ProjectName", "ProjectInfo", "AssignedTeam", "CreatedAt", "CurrentPhase", "Progress"},
	},
	{
		// Keyed by (ProjectName, Phase); row operations use DeleteWhere/UpdateWhere.
		Sheet:   SheetProgress,
		Columns: []string{"ProjectName", "Phase", "Status", "StartDate", "EndDate", "Comments"},
	},
	{
		Sheet:   SheetUpdates,
		Key:     "UpdateID",
		Columns: []string{"UpdateID", "Timestamp", "Team", "Email", "Update", "Phase"},
	},
	{
		// Append-only; never updated or deleted independently of anything.
		Sheet:   SheetComments,
		Columns: []string{"UpdateID", "Timestamp", "Email", "Comment"},
	},
	{
		// Keyed by (UpdateID, Email) with set semantics.
		Sheet:   SheetLikes,
		Columns: []string{"UpdateID", "Email"},
	},
}

// SchemaFor returns the schema for the named worksheet.
func SchemaFor(sheet string) (Schema, bool) {
	for _, s := range Schemas {
		if s.Sheet == sheet {
			return s, true
		}
	}
	return Schema{}, false
}
