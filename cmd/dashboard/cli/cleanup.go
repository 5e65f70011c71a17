package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"numberwise-dashboard/internal/repository/postgres"
	"numberwise-dashboard/internal/service/dashboard"
)

var cleanupConfirmed bool

var cleanupCmd = &cobra.Command{
	Use:   "cleanup-duplicates",
	Short: "Delete duplicate clients, keeping the earliest one per name",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context(), cfg)
		if err != nil {
			if db != nil {
				db.Close()
			}
			return err
		}
		defer db.Close()

		svc := dashboard.NewService(postgres.NewDashboardRepository(db))

		if !cleanupConfirmed {
			duplicates, err := svc.InspectDuplicates(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range duplicates {
				fmt.Printf("%-40s %d\n", d.Name, d.Count)
			}
			if len(duplicates) == 0 {
				fmt.Println("No duplicate clients")
				return nil
			}
			fmt.Println("Dry run: re-run with --yes to delete duplicates")
			return nil
		}

		result, err := svc.CleanupDuplicates(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Removed %d clients (%d -> %d)\n", result.RecordsRemoved, result.ClientCountBefore, result.ClientCountAfter)
		return nil
	},
}

func init() {
	cleanupCmd.Flags().BoolVar(&cleanupConfirmed, "yes", false, "actually delete duplicates instead of listing them")
}
