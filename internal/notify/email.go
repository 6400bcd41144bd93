// Package notify delivers one-time codes to users over email.
package notify

import (
	"fmt"

	"foodserver/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	cfg config.SMTP
	log *logrus.Entry
}

func NewEmailSender(l *logrus.Logger, cfg config.SMTP) *EmailSender {
	return &EmailSender{
		cfg: cfg,
		log: l.WithFields(map[string]interface{}{
			"from": "notify",
		}),
	}
}

func (s *EmailSender) SendOTP(email string, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Email Verification Code")
	m.SetBody("text/html", otpBody(code))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		s.log.WithError(err).Error("otp delivery failed")
		return err
	}
	s.log.WithField("to", email).Info("otp sent")
	return nil
}

func otpBody(code string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; text-align: center;">
	<h1>Email Confirmation</h1>
	<p>Your OTP code:</p>
	<h2>%s</h2>
	<p>This code is valid for 10 minutes.</p>
</div>`, code)
}
