// Package mailer sends transactional mail for the portal over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"
)

// Mailer delivers mail through a single SMTP endpoint.
type Mailer struct {
	addr string
	from string
	auth smtp.Auth
}

func New(host string, port int, from, password string) *Mailer {
	return &Mailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: smtp.PlainAuth("", from, password, host),
	}
}

// SendPasswordResetOTP mails a password-reset one-time code to a user.
func (m *Mailer) SendPasswordResetOTP(to, name, otp string) error {
	subject := "Password Reset OTP - Community Help Portal"
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\n"+
			"You requested to reset your password. Use the OTP below to proceed:\r\n\r\n"+
			"    %s\r\n\r\n"+
			"This OTP will expire in 10 minutes.\r\n"+
			"If you didn't request this, please ignore this email.\r\n\r\n"+
			"Community Help Portal\r\n",
		name, otp)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}
