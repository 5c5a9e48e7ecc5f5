package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/config"
)

// Mailer delivers best-effort HTML mail. Callers treat every error as
// log-and-continue; a failed send never rolls anything back.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns nil when mail credentials are missing, which callers
// read as "email disabled".
func NewMailer(cfg config.MailConfig) Mailer {
	if cfg.User == "" || cfg.Password == "" {
		return nil
	}

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)

	return &smtpMailer{
		dialer: dialer,
		from:   fmt.Sprintf("%q <%s>", cfg.From, cfg.User),
	}
}

// Send implements Mailer.
func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// StatusUpdateEmail renders the application-update mail body.
func StatusUpdateEmail(fullName, driveName, driveRole, status, message string) string {
	if fullName == "" {
		fullName = "Candidate"
	}
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; color: #333; padding: 20px;">
    <h2 style="color: #4f46e5;">Application Update</h2>
    <p>Hi <strong>%s</strong>,</p>
    <p>There is an update on your application for <strong>%s</strong> (%s).</p>
    <div style="background: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <p style="margin: 0; font-weight: bold;">New Status: <span style="color: #4f46e5; text-transform: capitalize;">%s</span></p>
        <p style="margin: 5px 0 0 0;">%s</p>
    </div>
    <p>Log in to the portal to view full details.</p>
</div>`, fullName, driveName, driveRole, status, message)
}
