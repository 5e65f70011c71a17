package cli

import (
	"github.com/spf13/cobra"

	"numberwise-dashboard/internal/repository/postgres"
	"numberwise-dashboard/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations and ensure the Numberwise company exists",
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
		})
	},
}
