// internal/service/user.go
package service

import (
	"context"
	"strings"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
)

const userSearchLimit = 10

type UserService struct {
	repo  repository.UserRepositoryIface
	authz *access.Authorizer
}

func NewUserService(repo repository.UserRepositoryIface, authz *access.Authorizer) *UserService {
	return &UserService{repo: repo, authz: authz}
}

// Me returns the caller's user record.
func (s *UserService) Me(ctx context.Context) (*model.User, error) {
	grant, err := s.authz.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, grant.UserID)
}

// Search finds up to ten other users whose name or email contains query.
// A blank query matches nobody.
func (s *UserService) Search(ctx context.Context, query string) ([]model.User, error) {
	grant, err := s.authz.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []model.User{}, nil
	}

	return s.repo.Search(ctx, query, grant.UserID, userSearchLimit)
}
