package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "hra_kiosk.db", cfg.DatabasePath)
	assert.Equal(t, "", cfg.SeedFile)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.Equal(t, 0, cfg.RetentionDays)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiosk.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_path": "/var/lib/kiosk/kiosk.db",
		"retention_days": 90
	}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/kiosk/kiosk.db", cfg.DatabasePath)
	assert.Equal(t, 90, cfg.RetentionDays)
	assert.Equal(t, ".", cfg.ExportDir, "fields absent from the file keep their defaults")
}

func TestLoadConfig_EnvOverridesJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiosk.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path": "from_json.db"}`), 0o600))

	t.Setenv("KIOSK_DB_PATH", "from_env.db")
	t.Setenv("KIOSK_RETENTION_DAYS", "30")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from_env.db", cfg.DatabasePath)
	assert.Equal(t, 30, cfg.RetentionDays)
}

func TestLoadConfig_BadRetentionEnv(t *testing.T) {
	t.Setenv("KIOSK_RETENTION_DAYS", "soon")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingJsonFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiosk.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
