// Package token mints access tokens for local testing and service accounts.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsportal/opsportal/internal/infrastructure/auth"
	"github.com/opsportal/opsportal/internal/interfaces/cli/bootstrap"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/constants"
)

var (
	env        string
	configPath string
	userID     uint
	role       string
	wingID     uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access token tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign an access token with the configured secret",
		RunE:  runIssue,
	}
	issue.Flags().UintVar(&userID, "user", 0, "User id carried as the token subject (required)")
	issue.Flags().StringVar(&role, "role", string(authorization.RoleStaff), "Role (admin, approver, helpdesk, staff)")
	issue.Flags().UintVar(&wingID, "wing", 0, "Wing id, omitted when 0")
	_ = issue.MarkFlagRequired("user")

	cmd.AddCommand(issue)
	return cmd
}

func runIssue(cmd *cobra.Command, args []string) error {
	r := authorization.UserRole(role)
	if !r.IsValid() {
		return fmt.Errorf("unknown role %q", role)
	}
	if userID == 0 {
		return fmt.Errorf("--user must be a positive id")
	}

	cfg, err := bootstrap.LoadConfig(bootstrap.ResolveEnv(env), configPath)
	if err != nil {
		return err
	}

	var wing *uint
	if wingID > 0 {
		w := wingID
		wing = &w
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
	signed, err := jwtSvc.Issue(userID, r, wing)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
