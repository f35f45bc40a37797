package main

import (
	"context"
	"fmt"
	"log"

	"github.com/dangerclosesec/vizboard/internal/auth"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/spf13/cobra"
)

var tokenPassword string

func init() {
	tokenCmd.Flags().StringVar(&tokenPassword, "password", "", "Verify this password before issuing the token")
}

var tokenCmd = &cobra.Command{
	Use:   "token [email]",
	Short: "Issue a session token for a user",
	Long: `Issue a signed session token for the user with the given email, for use
as a Bearer token or session cookie when SESSION_PROVIDER=jwt.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		users := repository.NewUserRepository(openGorm())

		user, err := users.FindByEmail(ctx, args[0])
		if err != nil {
			log.Fatalf("Failed to find user: %v", err)
		}

		if tokenPassword != "" {
			if user.PasswordHash == nil {
				log.Fatal("User has no password set")
			}
			ok, err := auth.NewPasswordHasher().Verify(tokenPassword, *user.PasswordHash)
			if err != nil {
				log.Fatalf("Failed to verify password: %v", err)
			}
			if !ok {
				log.Fatal("Invalid password")
			}
		}

		tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod, cfg.Session.CookieName)
		token, err := tokens.Generate(user.ID.String(), user.Email, user.Name)
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}

		fmt.Println(token)
	},
}
