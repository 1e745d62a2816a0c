// Package bootstrap holds the start-up steps every CLI command shares.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/opsportal/opsportal/internal/infrastructure/config"
	"github.com/opsportal/opsportal/internal/infrastructure/database"
	"github.com/opsportal/opsportal/internal/shared/biztime"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flagValue string) string {
	if v := os.Getenv("ENV"); v != "" {
		return v
	}
	return flagValue
}

// GinMode maps a deployment environment onto a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

// LoadConfig reads configuration and brings up the logger and business clock.
func LoadConfig(env, configPath string) (*config.Config, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize timezone: %w", err)
	}
	return cfg, nil
}

// InitEnv is LoadConfig plus the database connection. Callers defer database.Close.
func InitEnv(env, configPath string) (*config.Config, error) {
	cfg, err := LoadConfig(env, configPath)
	if err != nil {
		return nil, err
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, nil
}
