package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendPasswordResetOTP(userEmail string, otp string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth: auth,
		mail: mail,
		host: host,
		addr: host + ":587",
	}
}

func (s *smtp) SendPasswordResetOTP(userEmail string, otp string) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Budgefy password reset\r\n\r\nUse this code to reset your Budgefy password: %s\r\nIf you did not request a reset, you can ignore this email.",
		userEmail, otp))

	if err := smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}
