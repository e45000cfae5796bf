package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DataDir            string // Directory for the embedded store's files
	Port               string
	IsProduction       bool
	SeedOnStart        bool   // Seed default accounts and categories on first run
	CORSAllowedOrigins string // Comma-separated list of allowed origins
	AdminRateLimit     string // ulule/limiter format, e.g. "5-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SEED_ON_START", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("ADMIN_RATE_LIMIT", "5-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DataDir = viper.GetString("DATA_DIR")
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
		log.Printf("Warning: DATA_DIR environment variable not set. Defaulting to %s\n", cfg.DataDir)
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SeedOnStart = viper.GetBool("SEED_ON_START")
	cfg.CORSAllowedOrigins = viper.GetString("CORS_ALLOWED_ORIGINS")

	cfg.AdminRateLimit = viper.GetString("ADMIN_RATE_LIMIT")
	if cfg.AdminRateLimit == "" {
		cfg.AdminRateLimit = "5-M"
		log.Printf("Warning: ADMIN_RATE_LIMIT not set. Defaulting to %s.\n", cfg.AdminRateLimit)
	}

	return cfg, nil
}
