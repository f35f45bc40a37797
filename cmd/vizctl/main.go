package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/dangerclosesec/vizboard/internal/config"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var (
	dbConnString string
	verbose      bool
	cfg          *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to the DB_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(auditCmd)
}

var rootCmd = &cobra.Command{
	Use:   "vizctl",
	Short: "vizctl manages a vizboard database",
	Long:  `vizctl applies schema migrations, seeds demo data, issues development tokens and inspects access decisions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if dbConnString == "" {
			dbConnString = cfg.DSN()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openSQL() *sql.DB {
	db, err := sql.Open("postgres", dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func openGorm() *gorm.DB {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}
