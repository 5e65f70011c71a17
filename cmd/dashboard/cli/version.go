package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dashboard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("numberwise-dashboard version %s\n", Version)
	},
}
