// internal/email/service.go
package email

import (
	"bytes"
	"fmt"
	"html/template"
	textTemplate "text/template"

	"github.com/badoux/checkmail"
	"github.com/dangerclosesec/vizboard"
	"github.com/dangerclosesec/vizboard/internal/config"
	"github.com/sendgrid/sendgrid-go"
	"gopkg.in/gomail.v2"
)

var templateFS = vizboard.EmailFS

// Provider identifies supported email providers
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderSendgrid Provider = "sendgrid"

	DefaultTemplatePath = "templates/emails"
)

// EmailData contains all necessary information for sending an email
type EmailData struct {
	To           string
	From         string
	FromName     string
	Subject      string
	TemplateName string
	TemplateData interface{}
}

// Service renders the embedded templates and hands the result to SendGrid or an SMTP relay
type Service struct {
	config         *config.Config
	provider       Provider
	sendgridClient *sendgrid.Client
	dialer         *gomail.Dialer
	Templates      map[string]*Template
}

type Template struct {
	HTML      *template.Template
	Plaintext *textTemplate.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.Config, provider Provider) (*Service, error) {
	s := &Service{
		config:    cfg,
		provider:  provider,
		Templates: make(map[string]*Template),
	}

	switch provider {
	case ProviderSendgrid:
		s.sendgridClient = sendgrid.NewSendClient(cfg.Sendgrid.APIKey)
	case ProviderSMTP:
		s.dialer = gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", provider)
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("loading email templates: %w", err)
	}

	return s, nil
}

// loadTemplates loads every template group (one directory holding html.tmpl
// and plaintext.tmpl) from the embedded filesystem
func (s *Service) loadTemplates() error {
	templateGroups, err := templateFS.ReadDir(DefaultTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read email templates directory: %w", err)
	}

	if len(templateGroups) == 0 {
		return fmt.Errorf("no email templates found")
	}

	for _, group := range templateGroups {
		if !group.IsDir() {
			continue
		}

		groupPath := DefaultTemplatePath + "/" + group.Name()
		groupEntries, err := templateFS.ReadDir(groupPath)
		if err != nil {
			return fmt.Errorf("failed to read email template group %s: %w", group.Name(), err)
		}

		if len(groupEntries) != 2 {
			return fmt.Errorf("invalid email template group %s: must contain exactly two files (HTML and plaintext)", group.Name())
		}

		html, err := template.ParseFS(templateFS, groupPath+"/html.tmpl")
		if err != nil {
			return fmt.Errorf("parsing %s html template: %w", group.Name(), err)
		}
		plaintext, err := textTemplate.ParseFS(templateFS, groupPath+"/plaintext.tmpl")
		if err != nil {
			return fmt.Errorf("parsing %s plaintext template: %w", group.Name(), err)
		}

		s.Templates[group.Name()] = &Template{HTML: html, Plaintext: plaintext}
	}

	return nil
}

// SendEmail sends an email using the configured provider
func (s *Service) SendEmail(data EmailData) error {
	if err := checkmail.ValidateFormat(data.To); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", data.To, err)
	}

	htmlContent, textContent, err := s.renderTemplate(data.TemplateName, data.TemplateData)
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}

	switch s.provider {
	case ProviderSendgrid:
		if data.From == "" {
			data.From = s.config.Sendgrid.From
		}
		return s.sendWithSendgrid(data, htmlContent, textContent)
	case ProviderSMTP:
		if data.From == "" {
			data.From = s.config.SMTP.From
		}
		if data.From == "" {
			return fmt.Errorf("missing sender email address (From)")
		}
		return s.sendWithSMTP(data, htmlContent, textContent)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.provider)
	}
}

// renderTemplate renders both parts of a template group
func (s *Service) renderTemplate(name string, data interface{}) (string, string, error) {
	tmpl, exists := s.Templates[name]
	if !exists {
		return "", "", fmt.Errorf("template %s not found", name)
	}

	var htmlbuf bytes.Buffer
	if err := tmpl.HTML.Execute(&htmlbuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template: %w", err)
	}

	var textbuf bytes.Buffer
	if err := tmpl.Plaintext.Execute(&textbuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template: %w", err)
	}

	return htmlbuf.String(), textbuf.String(), nil
}
