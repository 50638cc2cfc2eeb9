// Package config holds runtime settings for the kiosk and loads them in
// layers: defaults, then an optional JSON file, then environment variables.
// Command-line flags are applied last by the CLI layer and take precedence
// over everything here.
package config

// Config holds runtime settings for the kiosk.
//
// Fields:
//   - DatabasePath: SQLite file backing the local store.
//   - SeedFile: optional area seed document applied by the seed command.
//   - ExportDir: directory export files are written into.
//   - RetentionDays: purge entries older than this many days; 0 disables.
type Config struct {
	DatabasePath  string
	SeedFile      string
	ExportDir     string
	RetentionDays int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "hra_kiosk.db"
	c.SeedFile = ""
	c.ExportDir = "."
	c.RetentionDays = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if configPath is non-empty) and the environment. Later sources
// take precedence over earlier ones.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, configPath); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
