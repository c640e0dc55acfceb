package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	StoragePgsql  = "pgsql"
	StorageMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	StorageDriver string
	// SessionSecret is shared with the portal account service, which issues
	// the session tokens this module verifies.
	SessionSecret string
	RateLimit     string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("BANK_DATABASE_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", StoragePgsql)
	viper.SetDefault("SESSION_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   viper.GetString("BANK_DATABASE_URL"),
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		StorageDriver: viper.GetString("STORAGE_DRIVER"),
		SessionSecret: viper.GetString("SESSION_SECRET"),
		RateLimit:     viper.GetString("RATE_LIMIT"),
	}

	switch cfg.StorageDriver {
	case StoragePgsql, StorageMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.StorageDriver == StoragePgsql && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("BANK_DATABASE_URL is required with the pgsql storage driver")
	}

	return cfg, nil
}
