package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsportal/opsportal/internal/infrastructure/database"
	"github.com/opsportal/opsportal/internal/infrastructure/repository"
	roomseed "github.com/opsportal/opsportal/internal/infrastructure/seed"
	"github.com/opsportal/opsportal/internal/interfaces/cli/bootstrap"
	"github.com/opsportal/opsportal/internal/shared/constants"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	rooms := &cobra.Command{
		Use:   "rooms",
		Short: "Create or update rooms from a YAML file",
		Long:  `Rooms are matched by name. Existing rooms are updated in place and missing ones are created.`,
		RunE:  runRooms,
	}
	rooms.Flags().StringVarP(&file, "file", "f", "configs/rooms.example.yaml", "Room seed file")

	cmd.AddCommand(rooms)
	return cmd
}

func runRooms(cmd *cobra.Command, args []string) error {
	seeds, err := roomseed.LoadRoomsFile(file)
	if err != nil {
		return err
	}

	if _, err := bootstrap.InitEnv(bootstrap.ResolveEnv(env), configPath); err != nil {
		return err
	}
	defer database.Close()

	repo := repository.NewRoomRepository(database.Get())
	result, err := roomseed.ApplyRooms(cmd.Context(), repo, seeds, logger.NewLogger())
	if err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rooms: %d created, %d updated\n", result.Created, result.Updated)
	return nil
}
