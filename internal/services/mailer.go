package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"rakapratama/talent-tracker/internal/models"
)

type ReminderMailer interface {
	SendInterviewReminder(alert models.InterviewAlert) error
}

type MailerConfig struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	From      string
	Recipient string
	UseTLS    bool
}

type smtpMailer struct {
	cfg MailerConfig
}

func NewReminderMailer(cfg MailerConfig) ReminderMailer {
	return &smtpMailer{cfg: cfg}
}

// SendInterviewReminder implements ReminderMailer.
func (s *smtpMailer) SendInterviewReminder(alert models.InterviewAlert) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.Recipient)
	m.SetHeader("Subject", fmt.Sprintf("Interview in %d min: %s", alert.MinutesUntil, alert.Name))
	m.SetBody("text/html", fmt.Sprintf(
		"<p><b>%s</b> has an interview at <b>%s</b> (in %d minutes).</p><p>Position: %s<br>Client: %s</p>",
		alert.Name, alert.InterviewTime, alert.MinutesUntil, alert.Position, alert.ClientName,
	))

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.Username, s.cfg.Password)
	d.SSL = s.cfg.UseTLS // true = 465 SSL, false = 587 STARTTLS

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	return nil
}
