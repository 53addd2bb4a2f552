package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the complete configuration for the sample-data tools.
// The defaults reproduce the tools' fixed behavior, so a run with no
// environment set needs no configuration at all.
type AppConfig struct {
	Environment string        `mapstructure:"environment"`
	LogLevel    string        `mapstructure:"log_level"`
	Fetcher     FetcherConfig `mapstructure:"fetcher"`
	Synth       SynthConfig   `mapstructure:"synth"`
}

// FetcherConfig controls the remote user fetch.
type FetcherConfig struct {
	URL         string        `mapstructure:"url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

// SynthConfig controls the random source of the synthesizers.
// Seed 0 means seed from the wall clock.
type SynthConfig struct {
	Seed int64 `mapstructure:"seed"`
}

// DefaultUsersURL is the public users collection the fetcher reads.
const DefaultUsersURL = "https://jsonplaceholder.typicode.com/users"

// Load loads configuration from file and environment variables
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	// Default values
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("fetcher.url", DefaultUsersURL)
	v.SetDefault("fetcher.timeout", 10*time.Second)
	v.SetDefault("fetcher.max_attempts", 1)
	v.SetDefault("synth.seed", int64(0))

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Config file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	// Bind environment variables explicitly for nested structs to ensure Unmarshal picks them up
	v.BindEnv("environment", "ENVIRONMENT")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("fetcher.url", "FETCHER_URL")
	v.BindEnv("fetcher.timeout", "FETCHER_TIMEOUT")
	v.BindEnv("fetcher.max_attempts", "FETCHER_MAX_ATTEMPTS")
	v.BindEnv("synth.seed", "SYNTH_SEED")

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *AppConfig) Validate() error {
	if c.Fetcher.URL == "" {
		return errors.New("fetcher.url is required")
	}
	if c.Fetcher.Timeout <= 0 {
		return errors.New("fetcher.timeout must be positive")
	}
	if c.Fetcher.MaxAttempts < 1 {
		return errors.New("fetcher.max_attempts must be at least 1")
	}
	if c.Synth.Seed < 0 {
		return errors.New("synth.seed must not be negative")
	}
	return nil
}
