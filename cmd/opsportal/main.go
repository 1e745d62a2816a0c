package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opsportal/opsportal/internal/interfaces/cli/migrate"
	"github.com/opsportal/opsportal/internal/interfaces/cli/seed"
	"github.com/opsportal/opsportal/internal/interfaces/cli/server"
	"github.com/opsportal/opsportal/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "opsportal",
		Short:        "Office operations portal",
		Long:         `Room booking, SOP documents and helpdesk tickets behind one HTTP API, with migration and seeding tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
