package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/vizboard/internal/email"
	"github.com/dangerclosesec/vizboard/internal/email/mailer"
	"github.com/dangerclosesec/vizboard/internal/model"
)

//go:generate mockgen -source=./notifier.go -destination=../mocks/mock_notifier.go -package=mocks Notifier

// Notifier tells users about changes made to them by others.
type Notifier interface {
	TeamMemberAdded(ctx context.Context, recipient model.User, team model.Team, invitedBy string) error
}

// EmailNotifier delivers notifications through the email service.
type EmailNotifier struct {
	emailService *email.Service
	baseURL      string
}

func NewEmailNotifier(emailService *email.Service, baseURL string) *EmailNotifier {
	return &EmailNotifier{
		emailService: emailService,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

func (n *EmailNotifier) TeamMemberAdded(ctx context.Context, recipient model.User, team model.Team, invitedBy string) error {
	err := mailer.SendTeamMemberAdded(n.emailService, recipient.Email, mailer.TeamMemberAddedData{
		Name:      recipient.Name,
		InvitedBy: invitedBy,
		TeamName:  team.Name,
		TeamLink:  fmt.Sprintf("%s/teams/%s", n.baseURL, team.ID),
	})
	if err != nil {
		return fmt.Errorf("sending team member notification: %w", err)
	}
	return nil
}

// LogNotifier only logs. It is used when email delivery is disabled.
type LogNotifier struct{}

func (LogNotifier) TeamMemberAdded(ctx context.Context, recipient model.User, team model.Team, invitedBy string) error {
	slog.InfoContext(ctx, "Team member added",
		"teamID", team.ID,
		"userID", recipient.ID,
		"invitedBy", invitedBy,
	)
	return nil
}
