package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero", so a file can set just one
// value without clobbering the defaults for the rest.
type JsonConfig struct {
	DatabasePath  *string `json:"database_path"`
	SeedFile      *string `json:"seed_file"`
	ExportDir     *string `json:"export_dir"`
	RetentionDays *int    `json:"retention_days"`
}

// parseJson overlays cfg with values from the JSON file at path. An empty
// path means no file was requested and is not an error; a path that does
// not read or parse is.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SeedFile != nil {
		cfg.SeedFile = *jc.SeedFile
	}
	if jc.ExportDir != nil {
		cfg.ExportDir = *jc.ExportDir
	}
	if jc.RetentionDays != nil {
		cfg.RetentionDays = *jc.RetentionDays
	}
	return nil
}
