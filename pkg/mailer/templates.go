package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeHTML = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Welcome to {{.AppName}}{{if .Name}}, {{.Name}}{{end}}!</h2>
    <p>Your parent account is ready. Sign in to create your first child
    profile and start a learning session.</p>
    <p style="color: #888; font-size: 12px;">If you did not create this
    account, you can ignore this email.</p>
  </body>
</html>`))

// Render renders a named template into (subject, text, html).
func Render(name string, data map[string]any) (string, string, string, error) {
	switch name {
	case "welcome":
		var buf bytes.Buffer
		if err := welcomeHTML.Execute(&buf, map[string]any{
			"AppName": str(data, "app_name", "AI Teacher"),
			"Name":    str(data, "name", ""),
		}); err != nil {
			return "", "", "", err
		}
		subject := fmt.Sprintf("Welcome to %s", str(data, "app_name", "AI Teacher"))
		text := fmt.Sprintf("Welcome to %s! Your parent account is ready.", str(data, "app_name", "AI Teacher"))
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}

func str(data map[string]any, key, def string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}
