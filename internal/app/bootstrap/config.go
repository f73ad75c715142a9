// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for CohortHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: spreadsheet_id, admin_email, etc.
//   - Environment variables: COHORTHUB_SPREADSHEET_ID, COHORTHUB_ADMIN_EMAIL, etc.
//   - Command-line flags: --spreadsheet_id, --admin_email, etc.
var appConfigKeys = []config.AppKey{
	{Name: "spreadsheet_id", Default: "", Desc: "Google spreadsheet ID that backs the app"},
	{Name: "google_credentials_file", Default: "credentials.json", Desc: "Path to the Google service-account JSON key"},
	{Name: "cache_ttl", Default: "5m", Desc: "How long sheet snapshots may be served before re-reading (e.g., 5m, 30s)"},

	// Admin account
	{Name: "admin_email", Default: "", Desc: "Admin login email (the admin is not a sheet row)"},
	{Name: "admin_password", Default: "", Desc: "Admin login password"},
	{Name: "admin_name", Default: "Administrator", Desc: "Admin display name"},

	// Session management
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Email/SMTP configuration (blank host disables outbound mail)
	{Name: "mail_smtp_host", Default: "", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 587, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@cohorthub.example", Desc: "From email address"},
	{Name: "mail_from_name", Default: "CohortHub", Desc: "From display name"},

	// Branding for notification emails
	{Name: "site_name", Default: "CohortHub", Desc: "Site name shown in emails"},
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for email links"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config
// files, environment variables (WAFFLE_* for core, COHORTHUB_* for
// app), and command-line flags, merged with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "COHORTHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SpreadsheetID:   appValues.String("spreadsheet_id"),
		CredentialsFile: appValues.String("google_credentials_file"),
		CacheTTL:        appValues.Duration("cache_ttl", 5*time.Minute),

		AdminEmail:    appValues.String("admin_email"),
		AdminPassword: appValues.String("admin_password"),
		AdminName:     appValues.String("admin_name"),

		SessionKey:    appValues.String("session_key"),
		SessionDomain: appValues.String("session_domain"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),

		SiteName: appValues.String("site_name"),
		BaseURL:  appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The spreadsheet and admin credentials are hard requirements; the app
// cannot serve anything without them, so fail before connecting.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet_id is required")
	}
	if appCfg.AdminEmail == "" || appCfg.AdminPassword == "" {
		return fmt.Errorf("admin_email and admin_password are required")
	}
	if appCfg.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive, got %s", appCfg.CacheTTL)
	}
	if len(appCfg.SessionKey) < 32 {
		logger.Warn("session_key is shorter than 32 chars; fine for dev, not for production")
	}
	return nil
}
