package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Storage struct {
		Path string `yaml:"path" env:"EDUVAULT_STORAGE_PATH"`
	} `yaml:"storage"`

	Logging struct {
		Level  string `yaml:"level" env:"EDUVAULT_LOG_LEVEL"`
		Format string `yaml:"format" env:"EDUVAULT_LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Storage.Path = "eduvault.db"

	config.Logging.Level = "info"
	config.Logging.Format = "pretty"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	config.Storage.Path = GetEnv("EDUVAULT_STORAGE_PATH", config.Storage.Path)
	config.Logging.Level = GetEnv("EDUVAULT_LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("EDUVAULT_LOG_FORMAT", config.Logging.Format)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}

	switch strings.ToLower(config.Logging.Format) {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown logging format %q", config.Logging.Format)
	}

	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
