// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS). AppConfig is everything specific to CohortHub: the
// spreadsheet that acts as the database, the admin credentials, session
// and mail settings.
type AppConfig struct {
	// Google Sheets backend configuration. The spreadsheet is the
	// database; the service account in the credentials file must have
	// edit access to it.
	SpreadsheetID   string // ID from the spreadsheet URL
	CredentialsFile string // path to the service-account JSON key

	// CacheTTL bounds how stale reads may be. Writes invalidate the
	// affected sheet immediately; this only covers edits made in the
	// spreadsheet UI behind the app's back.
	CacheTTL time.Duration

	// Admin account. There is exactly one admin and it lives in config,
	// not in the Participants_list sheet.
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// Session management configuration
	SessionKey    string // secret key for signing session cookies
	SessionDomain string // cookie domain (blank means current host)

	// Email/SMTP configuration. Blank host disables outbound mail.
	MailSMTPHost string
	MailSMTPPort int
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string
	MailFromName string

	// SiteName and BaseURL appear in notification emails.
	SiteName string
	BaseURL  string
}
