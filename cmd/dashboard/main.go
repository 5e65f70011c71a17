// Numberwise Dashboard API
//
// Usage:
//
//	dashboard serve
//	dashboard migrate
//	dashboard seed
//	dashboard cleanup-duplicates --yes
//	dashboard version
package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"numberwise-dashboard/cmd/dashboard/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
