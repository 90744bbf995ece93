package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Dataset
	DataPath string `mapstructure:"DATA_PATH"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Cache (optional; empty REDIS_URL disables caching)
	RedisURL string        `mapstructure:"REDIS_URL"`
	CacheTTL time.Duration `mapstructure:"CACHE_TTL"`

	// Query defaults
	DefaultMin90s float64 `mapstructure:"DEFAULT_MIN_90S"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATA_PATH", "data/raw/players_data-2024_2025.csv")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:4200,http://127.0.0.1:4200")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("DEFAULT_MIN_90S", 5.0)
	viper.SetDefault("LOG_LEVEL", "")

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
