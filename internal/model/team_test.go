package model_test

import (
	"testing"

	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTeamRoleAtLeast(t *testing.T) {
	tests := []struct {
		role model.TeamRole
		min  model.TeamRole
		want bool
	}{
		{model.RoleOwner, model.RoleOwner, true},
		{model.RoleOwner, model.RoleMember, true},
		{model.RoleMember, model.RoleMember, true},
		{model.RoleMember, model.RoleOwner, false},
		{model.TeamRole("ADMIN"), model.RoleMember, false},
		{model.TeamRole(""), model.RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+">="+string(tt.min), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.min))
		})
	}
}

func TestParseTeamRole(t *testing.T) {
	r, err := model.ParseTeamRole("")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleMember, r)

	r, err = model.ParseTeamRole("owner")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleOwner, r)

	_, err = model.ParseTeamRole("viewer")
	assert.Error(t, err)
}

func TestTeamOwner(t *testing.T) {
	team := &model.Team{Members: []model.TeamMember{
		{Role: model.RoleMember},
		{Role: model.RoleOwner},
	}}
	assert.Equal(t, model.RoleOwner, team.Owner().Role)

	assert.Nil(t, (&model.Team{}).Owner())
}
