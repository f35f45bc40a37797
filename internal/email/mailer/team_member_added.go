package mailer

import (
	"fmt"

	"github.com/dangerclosesec/vizboard/internal/email"
)

const fromName = "Vizboard"

// TeamMemberAddedData fills the team_member_added template
type TeamMemberAddedData struct {
	Name      string
	InvitedBy string
	TeamName  string
	TeamLink  string
}

// SendTeamMemberAdded tells a user they were added to a team
func SendTeamMemberAdded(s *email.Service, to string, data TeamMemberAddedData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      fmt.Sprintf("You were added to %s", data.TeamName),
		TemplateName: "team_member_added",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
