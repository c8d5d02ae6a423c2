package services

import (
	"io"

	"toursapp/internal/config"

	"gopkg.in/gomail.v2"
)

// EmailSender abstracts outbound mail so booking flows can be tested
// without an SMTP server.
type EmailSender interface {
	Send(to, subject, htmlBody string, attachment []byte, attachmentName string) error
}

// EmailService sends mail over authenticated SMTP. One connect, auth, send,
// disconnect per call; a transient failure propagates to the caller with no
// retry.
type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) EmailService {
	return EmailService{cfg: cfg}
}

func (s EmailService) Send(to, subject, htmlBody string, attachment []byte, attachmentName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Sender, s.cfg.SenderName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if len(attachment) > 0 {
		m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}
