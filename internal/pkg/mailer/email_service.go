package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, fullName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendWelcome(toEmail, fullName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to ContentCraft")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome, %s!</h2>
			<p>Your account is ready. Head over to your dashboard to generate your first content ideas.</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open Dashboard</a>
			<p>If you didn't sign up, please ignore this email.</p>
		</div>
	`, fullName, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send welcome mail to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Welcome mail sent to %s\n", toEmail)
	return nil
}
