package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendWithSendgrid sends both parts as one v3 mail, categorised by template name
func (s *Service) sendWithSendgrid(data EmailData, htmlContent, textContent string) error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(data.FromName, data.From))
	message.Subject = data.Subject
	if data.TemplateName != "" {
		message.AddCategories(data.TemplateName)
	}

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", data.To))
	message.AddPersonalizations(p)
	message.AddContent(
		mail.NewContent("text/plain", textContent),
		mail.NewContent("text/html", htmlContent),
	)

	response, err := s.sendgridClient.Send(message)
	if err != nil {
		return fmt.Errorf("sending %s via SendGrid: %w", data.TemplateName, err)
	}

	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected %s (status %d): %s", data.TemplateName, response.StatusCode, response.Body)
	}

	return nil
}
