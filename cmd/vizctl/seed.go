package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/badoux/checkmail"
	"github.com/dangerclosesec/vizboard/internal/auth"
	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/spf13/cobra"
)

var seedPassword string

func init() {
	seedCmd.Flags().StringVar(&seedPassword, "password", "password123", "Password given to every demo user")
}

type demoUser struct {
	name  string
	email string
	image string
}

var demoUsers = []demoUser{
	{name: "John Doe", email: "john@example.com", image: "/avatars/john.jpg"},
	{name: "Jane Smith", email: "jane@example.com", image: "/avatars/jane.jpg"},
	{name: "Alice Johnson", email: "alice@example.com"},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the Acme demo data",
	Long: `Create the demo users, the "Acme Inc" team owned by John Doe with Jane
and Alice as members, and one dataset of each visibility.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		db := openGorm()

		userRepo := repository.NewUserRepository(db)
		teamRepo := repository.NewTeamRepository(db)
		datasetRepo := repository.NewDatasetRepository(db)
		hasher := auth.NewPasswordHasher()

		hash, err := hasher.Hash(seedPassword)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		users := make([]*model.User, 0, len(demoUsers))
		for _, du := range demoUsers {
			user, err := ensureUser(ctx, userRepo, du, hash)
			if err != nil {
				log.Fatalf("Failed to seed user %s: %v", du.email, err)
			}
			users = append(users, user)
		}
		owner := users[0]

		description := "Main team for Acme Inc for data analysis and visualization"
		team := &model.Team{
			Name:        "Acme Inc",
			Description: &description,
			Members: []model.TeamMember{
				{UserID: owner.ID, Role: model.RoleOwner},
				{UserID: users[1].ID, Role: model.RoleMember},
				{UserID: users[2].ID, Role: model.RoleMember},
			},
		}
		if err := teamRepo.Create(ctx, team); err != nil {
			log.Fatalf("Failed to create team: %v", err)
		}

		datasets := []*model.Dataset{
			{Name: "Sales 2024", FileName: "sales_2024.csv", Visibility: model.VisibilityTeam, TeamID: &team.ID},
			{Name: "Public Benchmarks", FileName: "benchmarks.json", Visibility: model.VisibilityPublic},
			{Name: "Personal Budget", FileName: "budget.xlsx", Visibility: model.VisibilityPrivate},
		}
		for _, ds := range datasets {
			ds.OwnerID = owner.ID
			ds.FileURL = "https://example.com/uploads/" + ds.FileName
			if err := datasetRepo.Create(ctx, ds); err != nil {
				log.Fatalf("Failed to create dataset %s: %v", ds.Name, err)
			}
		}

		fmt.Println("Seed completed successfully!")
		fmt.Printf("Team ID for testing: %s\n", team.ID)
		if verbose {
			for _, u := range users {
				fmt.Printf("  %s <%s> %s\n", u.Name, u.Email, u.ID)
			}
		}
	},
}

// ensureUser returns the existing user with the demo email or creates it.
func ensureUser(ctx context.Context, repo *repository.UserRepository, du demoUser, hash string) (*model.User, error) {
	if err := checkmail.ValidateFormat(du.email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}

	existing, err := repo.FindByEmail(ctx, du.email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := &model.User{Name: du.name, Email: du.email, PasswordHash: &hash}
	if du.image != "" {
		image := du.image
		user.Image = &image
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
