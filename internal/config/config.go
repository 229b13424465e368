// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or
// environment variables. UseMockAPI selects the in-memory repositories over
// the network-backed ones; it is read once at startup and never toggled at
// runtime.
type Config struct {
	Port          string `mapstructure:"PORT"`
	Env           string `mapstructure:"APP_ENV"`
	UseMockAPI    bool   `mapstructure:"USE_MOCK_API"`
	APIBaseURL    string `mapstructure:"API_BASE_URL"`
	RedisURL      string `mapstructure:"REDIS_URL"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	MockLatencyMS int    `mapstructure:"MOCK_LATENCY_MS"`
	SeedValue     int64  `mapstructure:"SEED_VALUE"`
}

// LoadConfig loads application configuration from file and environment
// variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables can carry
	// everything.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8460")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("USE_MOCK_API", true)
	viper.SetDefault("API_BASE_URL", "http://localhost:8460")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-in-production")
	viper.SetDefault("MOCK_LATENCY_MS", 25)
	viper.SetDefault("SEED_VALUE", 11)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if !c.UseMockAPI && c.APIBaseURL == "" {
		return errors.New("API_BASE_URL is required when USE_MOCK_API is false")
	}

	isProduction := c.Env == "production" || c.Env == "prod"
	if isProduction {
		if c.JWTSecret == "dev-secret-change-in-production" {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if c.UseMockAPI {
			log.Println("WARNING: USE_MOCK_API is enabled in production; all data is in-memory and volatile.")
		}
	}

	return nil
}
