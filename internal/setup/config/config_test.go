package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigDir lays out a .harborlight directory with the three config
// files and switches the working directory to its parent.
func writeConfigDir(t *testing.T, common, api, worker string) {
	t.Helper()

	dir := t.TempDir()
	configDir := filepath.Join(dir, ".harborlight")
	require.NoError(t, os.Mkdir(configDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(configDir, "common.toml"), []byte(common), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "api.toml"), []byte(api), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "worker.toml"), []byte(worker), 0o644))

	t.Chdir(dir)
}

func TestLoadConfig(t *testing.T) {
	writeConfigDir(t,
		`version = 1

[safety]
blackout_duration_hours = 48
extension_increment_hours = [24, 48, 72]
max_cumulative_extension_hours = 168
authorization_validity_hours = 24
`,
		"version = 1\nhost = \"127.0.0.1\"\nport = 8080\n",
		"version = 1\nsweep_interval = 300000\n")

	cfg, usedPath, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ".harborlight", usedPath)
	assert.Equal(t, "127.0.0.1", cfg.API.Host)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, 300000, cfg.Worker.SweepInterval)
	assert.Equal(t, 48*time.Hour, cfg.Common.Safety.BlackoutDuration())
	assert.Equal(t, 168*time.Hour, cfg.Common.Safety.MaxCumulativeExtension())
	assert.Equal(t, 24*time.Hour, cfg.Common.Safety.AuthorizationValidity())
}

func TestLoadConfigDefaultsSafety(t *testing.T) {
	writeConfigDir(t, "version = 1\n", "version = 1\n", "version = 1\n")

	cfg, _, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSafety(), cfg.Common.Safety)
}

func TestLoadConfigMissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := config.LoadConfig()
	require.ErrorIs(t, err, config.ErrConfigFileNotFound)
}

func TestLoadConfigVersionChecks(t *testing.T) {
	t.Run("Missing version", func(t *testing.T) {
		writeConfigDir(t, "version = 1\n", "host = \"127.0.0.1\"\n", "version = 1\n")

		_, _, err := config.LoadConfig()
		require.ErrorIs(t, err, config.ErrConfigVersionMissing)
	})

	t.Run("Version mismatch", func(t *testing.T) {
		writeConfigDir(t, "version = 99\n", "version = 1\n", "version = 1\n")

		_, _, err := config.LoadConfig()
		require.ErrorIs(t, err, config.ErrConfigVersionMismatch)
	})
}

func TestSafetyHelpers(t *testing.T) {
	t.Parallel()

	safety := config.DefaultSafety()

	assert.True(t, safety.AllowedExtension(24))
	assert.True(t, safety.AllowedExtension(72))
	assert.False(t, safety.AllowedExtension(12))
	assert.False(t, safety.AllowedExtension(0))

	assert.Equal(t, 60, safety.ThresholdForLevel(enum.SensitivityLevelSensitive))
	assert.Equal(t, 75, safety.ThresholdForLevel(enum.SensitivityLevelBalanced))
	assert.Equal(t, 90, safety.ThresholdForLevel(enum.SensitivityLevelRelaxed))

	assert.Equal(t, 1, safety.DailyLimit(enum.ThrottleTierMinimal))
	assert.Equal(t, 3, safety.DailyLimit(enum.ThrottleTierStandard))
	assert.Equal(t, 5, safety.DailyLimit(enum.ThrottleTierDetailed))
	assert.Negative(t, safety.DailyLimit(enum.ThrottleTierAll))
}
