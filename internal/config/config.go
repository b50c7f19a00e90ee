package config

import (
	"os"
	"strconv"
	"strings"

	"adlens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds input discovery settings
type DataConfig struct {
	// BaseDirs are tried in order when probing candidate filenames.
	BaseDirs []string
	// Demo falls back to synthetic feeds when no real sources are found.
	Demo bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			BaseDirs: splitDirs(getEnvOrDefault("ADLENS_DATA_DIRS", "./data,./")),
			Demo:     getEnvBoolOrDefault("ADLENS_DEMO", false),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if len(config.Data.BaseDirs) == 0 {
		return errors.ConfigInvalid("at least one data directory is required")
	}
	return nil
}

func splitDirs(s string) []string {
	var dirs []string
	for _, d := range strings.Split(s, ",") {
		d = strings.TrimSpace(d)
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
