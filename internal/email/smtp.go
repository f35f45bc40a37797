package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// sendWithSMTP sends a multipart/alternative message through the configured relay
func (s *Service) sendWithSMTP(data EmailData, htmlContent, textContent string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", data.From, data.FromName)
	m.SetHeader("To", data.To)
	m.SetHeader("Subject", data.Subject)
	m.SetBody("text/plain", textContent)
	m.AddAlternative("text/html", htmlContent)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending email via SMTP: %w", err)
	}

	return nil
}
