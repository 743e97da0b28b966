package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
	Seed    SeedConfig    `mapstructure:"seed"`
}

// StorageConfig holds durable-storage configuration
type StorageConfig struct {
	// Path is the data directory. Empty selects memory-only mode.
	Path string `mapstructure:"path"`
}

// SearchConfig holds search tuning
type SearchConfig struct {
	PageSize       int `mapstructure:"page_size"`
	SuggestLimit   int `mapstructure:"suggest_limit"`
	MinQueryLength int `mapstructure:"min_query_length"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// SeedConfig controls the demo dataset
type SeedConfig struct {
	// Demo loads the bundled demo data when a collection has no
	// persisted document yet.
	Demo bool `mapstructure:"demo"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: defaultDataPath(),
		},
		Search: SearchConfig{
			PageSize:       12,
			SuggestLimit:   5,
			MinQueryLength: 2,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
		Seed: SeedConfig{
			Demo: true,
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "vidflow", "data")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "vidflow", "data")
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vidflow", "vidflow.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "vidflow", "vidflow.log")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vidflow")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "vidflow")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("VIDFLOW")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("storage.path", cfg.Storage.Path)
	viper.Set("search.page_size", cfg.Search.PageSize)
	viper.Set("search.suggest_limit", cfg.Search.SuggestLimit)
	viper.Set("search.min_query_length", cfg.Search.MinQueryLength)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)
	viper.Set("seed.demo", cfg.Seed.Demo)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
