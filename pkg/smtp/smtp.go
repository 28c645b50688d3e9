package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
	"strings"
)

type ItfSmtp interface {
	Enabled() bool
	SendLeadNotification(subject string, lines []string) error
}

type smtp struct {
	auth    smtpPkg.Auth
	mail    string
	notify  string
	host    string
	address string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	notify := os.Getenv("LEADS_NOTIFY_EMAIL")

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth:    auth,
		mail:    mail,
		notify:  notify,
		host:    host,
		address: host + ":587",
	}
}

func (s *smtp) Enabled() bool {
	return s.mail != "" && s.notify != ""
}

func (s *smtp) SendLeadNotification(subject string, lines []string) error {
	if !s.Enabled() {
		return nil
	}

	to := []string{s.notify}

	message := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s",
		s.notify, subject, strings.Join(lines, "\r\n")))

	if err := smtpPkg.SendMail(s.address, s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}
