package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envDatabasePath  = "KIOSK_DB_PATH"
	envSeedFile      = "KIOSK_SEED_FILE"
	envExportDir     = "KIOSK_EXPORT_DIR"
	envRetentionDays = "KIOSK_RETENTION_DAYS"
)

// parseEnv overlays cfg with values from the environment, reading a .env
// file from the working directory first if one exists. Variables already
// set in the process environment win over the .env file.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(envDatabasePath); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(envSeedFile); ok {
		cfg.SeedFile = v
	}
	if v, ok := os.LookupEnv(envExportDir); ok {
		cfg.ExportDir = v
	}
	if v, ok := os.LookupEnv(envRetentionDays); ok {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", envRetentionDays, v, err)
		}
		cfg.RetentionDays = days
	}
	return nil
}
