package main

import (
	"context"
	"fmt"
	"log"

	"github.com/dangerclosesec/vizboard"
	"github.com/dangerclosesec/vizboard/internal/migration"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long:  `Apply every embedded schema migration newer than the database's current version.`,
	Run: func(cmd *cobra.Command, args []string) {
		migrations, err := migration.Load(vizboard.MigrationFS, "migrations")
		if err != nil {
			log.Fatalf("Failed to load migrations: %v", err)
		}

		db := openSQL()
		defer db.Close()

		ctx := context.Background()
		migrator := migration.NewMigrator(db, migrations)

		applied, err := migrator.Apply(ctx)
		for _, m := range applied {
			fmt.Printf("Applied %03d_%s\n", m.Version, m.Name)
		}
		if err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}

		if len(applied) == 0 {
			fmt.Println("No pending migrations")
		}

		version, err := migrator.GetCurrentVersion(ctx)
		if err != nil {
			log.Fatalf("Failed to get current version: %v", err)
		}
		fmt.Printf("Current version: %d\n", version)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current schema version",
	Run: func(cmd *cobra.Command, args []string) {
		migrations, err := migration.Load(vizboard.MigrationFS, "migrations")
		if err != nil {
			log.Fatalf("Failed to load migrations: %v", err)
		}

		db := openSQL()
		defer db.Close()

		ctx := context.Background()
		migrator := migration.NewMigrator(db, migrations)
		if err := migrator.InitializeSchema(ctx); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		version, err := migrator.GetCurrentVersion(ctx)
		if err != nil {
			log.Fatalf("Failed to get current version: %v", err)
		}

		fmt.Printf("Current version: %d\n", version)
		fmt.Printf("Pending migrations: %d\n", len(migration.Pending(migrations, version)))
	},
}
