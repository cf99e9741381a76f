/**
 * @description
 * This package handles configuration management for the bankctl tool. It uses
 * the Viper library to read settings from environment variables, with
 * defaults matching the banking server's local development setup.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/transfa/banking-client/pkg/bankclient"
)

// Config holds the connection settings for the banking API.
type Config struct {
	BaseURL        string `mapstructure:"BANKING_API_BASE_URL"`
	TimeoutSeconds int    `mapstructure:"BANKING_API_TIMEOUT_SECONDS"`
}

// Timeout returns the configured request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	viper.SetDefault("BANKING_API_BASE_URL", bankclient.DefaultBaseURL)
	viper.SetDefault("BANKING_API_TIMEOUT_SECONDS", 30)
	viper.AutomaticEnv()

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("BANKING_API_BASE_URL")
	_ = viper.BindEnv("BANKING_API_TIMEOUT_SECONDS")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.BaseURL = strings.TrimSpace(config.BaseURL)
	if config.BaseURL == "" {
		config.BaseURL = bankclient.DefaultBaseURL
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = 30
	}

	return &config, nil
}
