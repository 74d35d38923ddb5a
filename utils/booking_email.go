package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer sends mail over plain SMTP. When the settings are empty the
// message is logged instead of sent, which keeps local development working.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

func (m Mailer) configured() bool {
	return m.Host != "" && m.Port != "" && m.Username != "" && m.Password != ""
}

func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// Send delivers a plain-text message with an HTML alternative part.
func (m Mailer) Send(recipient, subject, body string) error {
	if !m.configured() {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", recipient, subject)
		return nil
	}

	recipient = sanitizeHeader(recipient)
	subject = sanitizeHeader(subject)

	from := fmt.Sprintf("%s <%s>", sanitizeHeader(m.FromName), m.Username)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)

	boundary := "----=_BOOKING_EMAIL_BOUNDARY"

	htmlBody := "<html><body><pre style=\"font-family:Arial, Helvetica, sans-serif\">" +
		strings.ReplaceAll(body, "\n", "<br>") +
		"</pre></body></html>"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, m.Username, []string{recipient}, []byte(sb.String())); err != nil {
		log.Printf("Failed to send email to %s: %v", recipient, err)
		return err
	}

	log.Printf("Email sent to %s", recipient)
	return nil
}
