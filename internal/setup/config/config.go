package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// Current version of the config file.
const (
	CurrentCommonVersion = 1
	CurrentAPIVersion    = 1
	CurrentWorkerVersion = 1
)

// Config represents the entire application configuration.
type Config struct {
	Common CommonConfig
	API    APIConfig
	Worker WorkerConfig
}

// CommonConfig contains configuration shared between the API and the worker.
type CommonConfig struct {
	// Version of the common config.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	Safety     Safety     `koanf:"safety"`
}

// APIConfig contains HTTP API specific configuration.
type APIConfig struct {
	// Version of the api config.
	Version int `koanf:"version"`
	// Server bind address.
	Host string `koanf:"host"`
	// Server port.
	Port int `koanf:"port"`
	// Request timeout in milliseconds.
	RequestTimeout int `koanf:"request_timeout"`
	// Admin principal IDs to API keys for admin-facing operations.
	AdminKeys map[string]string `koanf:"admin_keys"`
}

// WorkerConfig contains sweep worker specific configuration.
type WorkerConfig struct {
	// Version of the worker config.
	Version int `koanf:"version"`
	// Sweep interval in milliseconds.
	SweepInterval int `koanf:"sweep_interval"`
	// Startup delay in milliseconds.
	StartupDelay int `koanf:"startup_delay"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum log files to keep.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	// Database hostname.
	Host string `koanf:"host"`
	// Database port.
	Port int `koanf:"port"`
	// Database username.
	User string `koanf:"user"`
	// Database password.
	Password string `koanf:"password"`
	// Database name.
	DBName string `koanf:"db_name"`
	// Maximum open connections.
	MaxOpenConns int `koanf:"max_open_conns"`
	// Maximum idle connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// Connection lifetime in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	// Idle timeout in minutes.
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains Redis connection configuration.
type Redis struct {
	// Redis hostname.
	Host string `koanf:"host"`
	// Redis port.
	Port int `koanf:"port"`
	// Redis username.
	Username string `koanf:"username"`
	// Redis password.
	Password string `koanf:"password"`
}

// Safety contains every tunable constant of the crisis-signal pipeline.
// All values are overridable in common.toml; the zero config is replaced by
// DefaultSafety at load time so a missing section still yields a working
// pipeline.
type Safety struct {
	// Mandatory family-notification blackout duration in hours.
	BlackoutDurationHours int `koanf:"blackout_duration_hours"`
	// Allowed blackout extension increments in hours.
	ExtensionIncrementHours []int `koanf:"extension_increment_hours"`
	// Maximum cumulative blackout extension in hours.
	MaxCumulativeExtensionHours int `koanf:"max_cumulative_extension_hours"`
	// Access authorization validity in hours.
	AuthorizationValidityHours int `koanf:"authorization_validity_hours"`
	// Confidence at or above which a flag always surfaces.
	AlwaysFlagThreshold int `koanf:"always_flag_threshold"`
	// Lowest allowed per-category threshold override.
	ThresholdFloor int `koanf:"threshold_floor"`
	// Highest allowed per-category threshold override.
	ThresholdCeiling int `koanf:"threshold_ceiling"`
	// Threshold for the sensitive level.
	SensitiveThreshold int `koanf:"sensitive_threshold"`
	// Threshold for the balanced level.
	BalancedThreshold int `koanf:"balanced_threshold"`
	// Threshold for the relaxed level.
	RelaxedThreshold int `koanf:"relaxed_threshold"`
	// Daily alert limit for the minimal tier.
	MinimalDailyLimit int `koanf:"minimal_daily_limit"`
	// Daily alert limit for the standard tier.
	StandardDailyLimit int `koanf:"standard_daily_limit"`
	// Daily alert limit for the detailed tier.
	DetailedDailyLimit int `koanf:"detailed_daily_limit"`
	// Outbound webhook timeout in milliseconds.
	WebhookTimeout int `koanf:"webhook_timeout"`
	// Initial webhook retry delay in milliseconds; doubles per attempt.
	WebhookRetryDelay int `koanf:"webhook_retry_delay"`
	// Maximum webhook dispatch attempts per partner.
	WebhookMaxAttempts int `koanf:"webhook_max_attempts"`
}

// DefaultSafety returns the documented pipeline defaults.
func DefaultSafety() Safety {
	return Safety{
		BlackoutDurationHours:       48,
		ExtensionIncrementHours:     []int{24, 48, 72},
		MaxCumulativeExtensionHours: 168,
		AuthorizationValidityHours:  24,
		AlwaysFlagThreshold:         95,
		ThresholdFloor:              50,
		ThresholdCeiling:            94,
		SensitiveThreshold:          60,
		BalancedThreshold:           75,
		RelaxedThreshold:            90,
		MinimalDailyLimit:           1,
		StandardDailyLimit:          3,
		DetailedDailyLimit:          5,
		WebhookTimeout:              10000,
		WebhookRetryDelay:           500,
		WebhookMaxAttempts:          3,
	}
}

// BlackoutDuration returns the blackout window as a duration.
func (s *Safety) BlackoutDuration() time.Duration {
	return time.Duration(s.BlackoutDurationHours) * time.Hour
}

// MaxCumulativeExtension returns the extension cap as a duration.
func (s *Safety) MaxCumulativeExtension() time.Duration {
	return time.Duration(s.MaxCumulativeExtensionHours) * time.Hour
}

// AuthorizationValidity returns the authorization lifetime as a duration.
func (s *Safety) AuthorizationValidity() time.Duration {
	return time.Duration(s.AuthorizationValidityHours) * time.Hour
}

// AllowedExtension reports whether hours is a permitted extension increment.
func (s *Safety) AllowedExtension(hours int) bool {
	for _, h := range s.ExtensionIncrementHours {
		if h == hours {
			return true
		}
	}

	return false
}

// ThresholdForLevel returns the confidence threshold for a sensitivity level.
func (s *Safety) ThresholdForLevel(level enum.SensitivityLevel) int {
	switch level {
	case enum.SensitivityLevelSensitive:
		return s.SensitiveThreshold
	case enum.SensitivityLevelBalanced:
		return s.BalancedThreshold
	case enum.SensitivityLevelRelaxed:
		return s.RelaxedThreshold
	default:
		return s.BalancedThreshold
	}
}

// DailyLimit returns the daily alert limit for a throttle tier.
// A negative value means unlimited.
func (s *Safety) DailyLimit(tier enum.ThrottleTier) int {
	switch tier {
	case enum.ThrottleTierMinimal:
		return s.MinimalDailyLimit
	case enum.ThrottleTierStandard:
		return s.StandardDailyLimit
	case enum.ThrottleTierDetailed:
		return s.DetailedDailyLimit
	case enum.ThrottleTierAll:
		return -1
	default:
		return s.MinimalDailyLimit
	}
}

// LoadConfig loads the configuration from the specified file.
// Returns the config along with the used config directory.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// List search paths
	configPaths := []string{
		".harborlight",
		homeDir + "/.harborlight/config",
		"/etc/harborlight/config",
		"/app/config",
		"config",
		".",
	}

	// Load all config files
	var usedConfigPath string

	configFiles := []string{"common", "api", "worker"}
	for _, configName := range configFiles {
		configLoaded := false

		for _, path := range configPaths {
			configPath := fmt.Sprintf("%s/%s.toml", path, configName)
			if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
				configLoaded = true

				if usedConfigPath == "" {
					usedConfigPath = path
				}

				break
			}
		}

		if !configLoaded {
			return nil, "", fmt.Errorf("%w: %s.toml", ErrConfigFileNotFound, configName)
		}
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	// A missing safety section falls back to the documented defaults
	if config.Common.Safety.BlackoutDurationHours == 0 {
		config.Common.Safety = DefaultSafety()
	}

	// Check versions for each config file
	if err := checkConfigVersion("common", config.Common.Version, CurrentCommonVersion); err != nil {
		return nil, "", err
	}

	if err := checkConfigVersion("api", config.API.Version, CurrentAPIVersion); err != nil {
		return nil, "", err
	}

	if err := checkConfigVersion("worker", config.Worker.Version, CurrentWorkerVersion); err != nil {
		return nil, "", err
	}

	return &config, usedConfigPath, nil
}

// checkConfigVersion checks if the config file version is correct.
func checkConfigVersion(name string, current, expected int) error {
	if current == 0 {
		return fmt.Errorf("%w: %s.toml", ErrConfigVersionMissing, name)
	}

	if current != expected {
		return fmt.Errorf("%w: %s.toml (got: %d, expected: %d)",
			ErrConfigVersionMismatch, name, current, expected)
	}

	return nil
}
