package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults match the original deployment except for the JWT secret,
	// which deliberately has none.
	v.SetDefault("server.port", 3100)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.image_dir", "images")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.url", "mongodb://localhost:27017")
	v.SetDefault("database.name", "shop")
	v.SetDefault("database.timeout_seconds", 5)
	v.SetDefault("auth.token_lifetime_seconds", 3600)
	v.SetDefault("auth.bcrypt_cost", 12)
	// Registered empty so AutomaticEnv can see it; validation rejects a
	// missing secret below.
	v.SetDefault("auth.jwt_secret", "")

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a present but broken one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with SHOP_ prefix override everything,
	// e.g. SHOP_AUTH_JWT_SECRET maps to auth.jwt_secret.
	v.SetEnvPrefix("SHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
