package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/hannkit/lead-gateway/internal/entity"
)

// Template is embedded rather than loaded from disk so the binary is
// self-contained on serverless hosts.
const leadTemplate = `<div style="font-family:sans-serif;font-size:14px">
  <h2>📩 New lead from hannkit.com</h2>
  <table cellpadding="4">
    <tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
    <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
    <tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>
    <tr><td><b>Language</b></td><td>{{.Lang}}</td></tr>
    <tr><td><b>Source</b></td><td>{{.Source}}</td></tr>
    {{if .Note}}<tr><td><b>Note</b></td><td>{{.Note}}</td></tr>{{end}}
  </table>
  <p style="color:#888">{{.ReceivedAt}}</p>
</div>`

var leadTmpl = template.Must(template.New("lead").Parse(leadTemplate))

// NewEmailSender wires the transactional mail channel. Providers with an SMTP
// bridge take the API key as the password of a fixed user.
func NewEmailSender(host string, port int, user, apiKey, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: apiKey,
		From:     from,
		To:       to,
	}
}

func (s *EmailSender) SendLeadNotification(lead *entity.Lead) error {
	body, err := RenderLeadBody(lead)
	if err != nil {
		return fmt.Errorf("render lead email: %w", err)
	}

	contact := lead.Name
	if contact == "" {
		contact = firstNonEmpty(lead.Email, lead.Phone, "no contact")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("New lead from hannkit.com — %s", contact))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send lead email: %w", err)
	}

	return nil
}

// RenderLeadBody produces the HTML body for a lead notification. Split out so
// composition is testable without an SMTP dialer.
func RenderLeadBody(lead *entity.Lead) (string, error) {
	data := LeadEmailData{
		Name:       orDash(lead.Name),
		Email:      orDash(lead.Email),
		Phone:      orDash(lead.Phone),
		Lang:       lead.Lang.Flag(),
		Source:     lead.Source,
		Note:       lead.Note,
		ReceivedAt: lead.ReceivedAt.UTC().Format("2006-01-02 15:04 UTC"),
	}

	var body bytes.Buffer
	if err := leadTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
