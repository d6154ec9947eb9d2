package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig
	OpenFoodFacts OpenFoodFactsConfig `mapstructure:"openfoodfacts"`
	Scanner       ScannerConfig
	RateLimit     RateLimitConfig `mapstructure:"ratelimit"`
	Share         ShareConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OpenFoodFactsConfig holds product database configuration
type OpenFoodFactsConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// ScannerConfig holds capture configuration for the decoding engine
type ScannerConfig struct {
	FacingMode string   `mapstructure:"facing_mode"`
	MinWidth   int      `mapstructure:"min_width"`
	MinHeight  int      `mapstructure:"min_height"`
	Readers    []string `mapstructure:"readers"`
	Workers    int      `mapstructure:"workers"` // 0 = size to hardware concurrency
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
	Burst int `mapstructure:"burst"`
}

// ShareConfig holds share delivery configuration
type ShareConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/greenscan/")

	v.SetEnvPrefix("GREENSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("openfoodfacts.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("openfoodfacts.user_agent", "GreenScan/1.0")
	v.SetDefault("openfoodfacts.timeout", "30s")

	v.SetDefault("scanner.facing_mode", "environment")
	v.SetDefault("scanner.min_width", 640)
	v.SetDefault("scanner.min_height", 480)
	v.SetDefault("scanner.readers", []string{
		"ean_reader", "ean_8_reader", "upc_reader", "upc_e_reader", "code_128_reader",
	})
	v.SetDefault("scanner.workers", 0)

	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.OpenFoodFacts.BaseURL == "" {
		return fmt.Errorf("Open Food Facts base URL is required (set GREENSCAN_OPENFOODFACTS_BASE_URL)")
	}

	if config.Scanner.MinWidth <= 0 || config.Scanner.MinHeight <= 0 {
		return fmt.Errorf("scanner resolution must be positive, got %dx%d",
			config.Scanner.MinWidth, config.Scanner.MinHeight)
	}

	if len(config.Scanner.Readers) == 0 {
		return fmt.Errorf("at least one scanner reader is required")
	}

	return nil
}
