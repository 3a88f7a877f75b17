package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateVerifyEmail renders the account verification email. Data keys:
// Name, Link, Company.
const TemplateVerifyEmail = "verify_email"

var verifyEmailTmpl = template.Must(template.New(TemplateVerifyEmail).Parse(`
<html>
  <body style="font-family: Arial, sans-serif; color: #222;">
    <p>Hi {{.Name}},</p>
    <p>Thanks for registering{{with .Company}} with {{.}}{{end}}. Please confirm
    your email address by clicking the link below:</p>
    <p><a href="{{.Link}}">Verify my email</a></p>
    <p>If the button does not work, copy this address into your browser:<br>
    {{.Link}}</p>
    <p>If you did not create this account you can ignore this message.</p>
  </body>
</html>
`))

// Render produces subject, text and HTML bodies for a known template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateVerifyEmail:
		var buf bytes.Buffer
		if err = verifyEmailTmpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		link, _ := data["Link"].(string)
		text = "Please verify your email address: " + link
		return "Verify your email address", text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
