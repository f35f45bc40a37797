package main

import (
	"context"
	"fmt"
	"log"

	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/spf13/cobra"
)

var dryRun bool

func init() {
	repairCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only count the datasets that would be repaired")
}

var repairCmd = &cobra.Command{
	Use:   "repair-datasets",
	Short: "Make TEAM datasets without a team PRIVATE",
	Long: `Find datasets marked TEAM that no longer reference a team and make them
PRIVATE to their owner, so they stay hidden rather than becoming visible.`,
	Run: func(cmd *cobra.Command, args []string) {
		datasets := repository.NewDatasetRepository(openGorm())

		count, err := datasets.RepairTeamless(context.Background(), dryRun)
		if err != nil {
			log.Fatalf("Failed to repair datasets: %v", err)
		}

		if dryRun {
			fmt.Printf("%d dataset(s) would be made private\n", count)
			return
		}
		fmt.Printf("%d dataset(s) made private\n", count)
	},
}
