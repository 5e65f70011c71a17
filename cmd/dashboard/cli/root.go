package cli

import (
	"github.com/spf13/cobra"

	"numberwise-dashboard/config"
	"numberwise-dashboard/internal/logger"
)

// Version is set at build time via ldflags.
var Version = "1.0.0"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Numberwise dashboard API",
	Long: `Numberwise dashboard API: status counts of Zenvoices invoice processing
and accounting postings per client, backed by PostgreSQL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger.Setup(cfg.LogLevel, cfg.LogFormat)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(versionCmd)
}
