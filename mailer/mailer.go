package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Mailer sends transactional mail over SMTP. Configuration comes from
// SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD and SMTP_FROM.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewFromEnv() (*Mailer, error) {
	m := &Mailer{
		host: os.Getenv("SMTP_HOST"),
		port: os.Getenv("SMTP_PORT"),
		user: os.Getenv("SMTP_USER"),
		pass: os.Getenv("SMTP_PASSWORD"),
		from: os.Getenv("SMTP_FROM"),
	}
	if m.host == "" || m.from == "" {
		return nil, errors.New("mailer: SMTP_HOST and SMTP_FROM must be set")
	}
	if m.port == "" {
		m.port = "587"
	}
	if m.user == "" {
		m.user = m.from
	}
	return m, nil
}

// Send delivers one HTML email. replyTo may be empty.
func (m *Mailer) Send(to, subject, htmlBody, replyTo string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if replyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(b.String()))
}

// Sender lets handlers swap in a fake during tests.
type Sender interface {
	Send(to, subject, htmlBody, replyTo string) error
}

type disabledSender struct{}

func (disabledSender) Send(string, string, string, string) error {
	return errors.New("mailer: SMTP is not configured")
}

// Disabled returns a Sender that always fails. Used when SMTP env vars are
// missing so the server can still boot.
func Disabled() Sender { return disabledSender{} }
