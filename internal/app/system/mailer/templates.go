// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// TeamAssignedData holds data for the team assignment email.
type TeamAssignedData struct {
	SiteName string
	Name     string
	Team     string
	BaseURL  string
}

// BuildTeamAssignedEmail creates the team assignment email with both
// HTML and text bodies.
func BuildTeamAssignedEmail(data TeamAssignedData) Email {
	return Email{
		To:       "", // Set by caller
		Subject:  fmt.Sprintf("You have been added to team %s", data.Team),
		TextBody: buildTeamAssignedText(data),
		HTMLBody: renderHTML("team_assigned", teamAssignedHTMLTemplate, data),
	}
}

func buildTeamAssignedText(data TeamAssignedData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Hi %s,\n\n", data.Name))
	buf.WriteString(fmt.Sprintf("You have been added to team %s on %s.\n\n", data.Team, data.SiteName))
	buf.WriteString("Sign in to see your team and its projects:\n")
	buf.WriteString(data.BaseURL + "\n")
	return buf.String()
}

// ProjectAssignedData holds data for the project assignment email.
type ProjectAssignedData struct {
	SiteName string
	Name     string
	Team     string
	Project  string
	BaseURL  string
}

// BuildProjectAssignedEmail creates the project assignment email.
func BuildProjectAssignedEmail(data ProjectAssignedData) Email {
	return Email{
		To:       "",
		Subject:  fmt.Sprintf("New project for team %s: %s", data.Team, data.Project),
		TextBody: buildProjectAssignedText(data),
		HTMLBody: renderHTML("project_assigned", projectAssignedHTMLTemplate, data),
	}
}

func buildProjectAssignedText(data ProjectAssignedData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Hi %s,\n\n", data.Name))
	buf.WriteString(fmt.Sprintf("Your team %s has been assigned a new project: %s.\n\n", data.Team, data.Project))
	buf.WriteString("Sign in to see the details:\n")
	buf.WriteString(data.BaseURL + "\n")
	return buf.String()
}

// PasswordResetData holds data for the password reset email.
type PasswordResetData struct {
	SiteName     string
	Name         string
	TempPassword string
	BaseURL      string
}

// BuildPasswordResetEmail creates the password reset email carrying the
// temporary password.
func BuildPasswordResetEmail(data PasswordResetData) Email {
	return Email{
		To:       "",
		Subject:  fmt.Sprintf("Your %s password has been reset", data.SiteName),
		TextBody: buildPasswordResetText(data),
		HTMLBody: renderHTML("password_reset", passwordResetHTMLTemplate, data),
	}
}

func buildPasswordResetText(data PasswordResetData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Hi %s,\n\n", data.Name))
	buf.WriteString(fmt.Sprintf("An administrator reset your %s password.\n\n", data.SiteName))
	buf.WriteString(fmt.Sprintf("Your temporary password is: %s\n\n", data.TempPassword))
	buf.WriteString("Sign in and change it from your profile page:\n")
	buf.WriteString(data.BaseURL + "\n\n")
	buf.WriteString("If you did not expect this change, contact your program administrator.\n")
	return buf.String()
}

func renderHTML(name, tmpl string, data any) string {
	t := template.Must(template.New(name).Parse(tmpl))
	var buf bytes.Buffer
	_ = t.Execute(&buf, data)
	return buf.String()
}

const emailHead = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #4f46e5;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">`

const emailFoot = `            </td>
          </tr>
          <tr>
            <td style="padding: 24px 32px; background-color: #f9fafb; border-top: 1px solid #e5e7eb; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #9ca3af; text-align: center;">
                You are receiving this because you are registered on {{.SiteName}}.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

const teamAssignedHTMLTemplate = emailHead + `
              <p style="margin: 0 0 16px; font-size: 16px; color: #374151; line-height: 1.5;">Hi {{.Name}},</p>
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                You have been added to team <strong>{{.Team}}</strong>.
              </p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                <tr>
                  <td align="center">
                    <a href="{{.BaseURL}}" style="display: inline-block; padding: 14px 32px; background-color: #4f46e5; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 500; border-radius: 6px;">
                      View Your Team
                    </a>
                  </td>
                </tr>
              </table>
` + emailFoot

const projectAssignedHTMLTemplate = emailHead + `
              <p style="margin: 0 0 16px; font-size: 16px; color: #374151; line-height: 1.5;">Hi {{.Name}},</p>
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                Your team <strong>{{.Team}}</strong> has been assigned a new project:
                <strong>{{.Project}}</strong>.
              </p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                <tr>
                  <td align="center">
                    <a href="{{.BaseURL}}" style="display: inline-block; padding: 14px 32px; background-color: #4f46e5; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 500; border-radius: 6px;">
                      View Project
                    </a>
                  </td>
                </tr>
              </table>
` + emailFoot

const passwordResetHTMLTemplate = emailHead + `
              <p style="margin: 0 0 16px; font-size: 16px; color: #374151; line-height: 1.5;">Hi {{.Name}},</p>
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                An administrator reset your password. Your temporary password is:
              </p>
              <div style="background-color: #f3f4f6; border-radius: 8px; padding: 24px; text-align: center; margin-bottom: 24px;">
                <span style="font-size: 24px; font-weight: 700; letter-spacing: 4px; color: #1f2937; font-family: 'Courier New', monospace;">{{.TempPassword}}</span>
              </div>
              <p style="margin: 0 0 24px; font-size: 14px; color: #6b7280; text-align: center;">
                Sign in and change it from your profile page.
              </p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                <tr>
                  <td align="center">
                    <a href="{{.BaseURL}}" style="display: inline-block; padding: 14px 32px; background-color: #4f46e5; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 500; border-radius: 6px;">
                      Sign In
                    </a>
                  </td>
                </tr>
              </table>
` + emailFoot
