// Package config loads the DeepTrace service configuration from an
// optional config file, environment variables (DEEPTRACE_ prefix) and
// built-in defaults, in that order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the DeepTrace service.
type Config struct {
	API struct {
		Port           int      `mapstructure:"port"`
		AllowedOrigins []string `mapstructure:"allowed_origins"`
		TrustProxy     bool     `mapstructure:"trust_proxy"`
		// DefaultLimit and MaxLimit bound the page size accepted on list
		// endpoints; pages outside the bounds are clamped at parse time.
		DefaultLimit int `mapstructure:"default_limit"`
		MaxLimit     int `mapstructure:"max_limit"`
		RateLimit    struct {
			RequestsPerSecond int `mapstructure:"requests_per_second"`
			Burst             int `mapstructure:"burst"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	Data struct {
		// Dir is the directory holding the five collection files
		// (campaigns.json, posts.json, accounts.json, threat_scores.json,
		// reports.json; .yaml also accepted).
		Dir string `mapstructure:"dir"`
	} `mapstructure:"data"`

	Analysis struct {
		// MinDuration/MaxDuration bound the simulated processing window.
		MinDuration time.Duration `mapstructure:"min_duration"`
		MaxDuration time.Duration `mapstructure:"max_duration"`
		// JobTTL is how long completed jobs stay pollable; MaxJobs caps
		// how many are retained at once.
		JobTTL  time.Duration `mapstructure:"job_ttl"`
		MaxJobs int           `mapstructure:"max_jobs"`
	} `mapstructure:"analysis"`
}

func setDefaults() {
	viper.SetDefault("api.port", 8000)
	viper.SetDefault("api.allowed_origins", []string{"*"})
	viper.SetDefault("api.trust_proxy", false)
	viper.SetDefault("api.default_limit", 20)
	viper.SetDefault("api.max_limit", 100)
	viper.SetDefault("api.rate_limit.requests_per_second", 50)
	viper.SetDefault("api.rate_limit.burst", 100)

	viper.SetDefault("data.dir", "./data")

	viper.SetDefault("analysis.min_duration", 3*time.Second)
	viper.SetDefault("analysis.max_duration", 5*time.Second)
	viper.SetDefault("analysis.job_ttl", time.Hour)
	viper.SetDefault("analysis.max_jobs", 128)
}

// LoadConfig reads deeptrace.yaml (working directory or ./config) if
// present, applies DEEPTRACE_* environment overrides and validates the
// result.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("deeptrace")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.SetEnvPrefix("DEEPTRACE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, will use defaults and env vars
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func validate(c *Config) error {
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("invalid api.port %d: must be in 1-65535", c.API.Port)
	}
	if c.API.DefaultLimit < 1 {
		return fmt.Errorf("invalid api.default_limit %d: must be >= 1", c.API.DefaultLimit)
	}
	if c.API.MaxLimit < c.API.DefaultLimit {
		return fmt.Errorf("invalid api.max_limit %d: must be >= default_limit", c.API.MaxLimit)
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if c.Analysis.MinDuration < 0 || c.Analysis.MaxDuration < c.Analysis.MinDuration {
		return fmt.Errorf("invalid analysis duration window")
	}
	if c.Analysis.MaxJobs < 1 {
		return fmt.Errorf("invalid analysis.max_jobs %d: must be >= 1", c.Analysis.MaxJobs)
	}
	return nil
}
