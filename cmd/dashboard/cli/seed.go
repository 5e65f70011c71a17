package cli

import (
	"github.com/spf13/cobra"

	"numberwise-dashboard/internal/repository/postgres"
	"numberwise-dashboard/migrations"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate and insert demo clients with random status counters",
	Long: `Inserts the demo clients and random Zenvoices/accounting counters.
Existing clients and status rows are left untouched. Intended for demo
and development databases only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context(), cfg)
		if err != nil {
			if db != nil {
				db.Close()
			}
			return err
		}
		defer db.Close()

		return postgres.Bootstrap(cmd.Context(), db, postgres.NewSeeder(db, nil), postgres.BootstrapOptions{
			Migrations: migrations.FS,
			SeedDemo:   true,
			Seed:       postgres.SeedOptions{AdminPassword: cfg.DemoAdminPassword},
		})
	},
}
