package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Auth    AuthConfig
	Weather WeatherConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// AuthConfig holds token-signing settings.
type AuthConfig struct {
	JWTSecret string
}

// WeatherConfig contains credentials and options for the OpenWeather API and
// the morning advisory digest job.
type WeatherConfig struct {
	APIKey     string
	BaseURL    string
	DigestCron string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "akilima"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Weather: WeatherConfig{
			APIKey:     os.Getenv("OPENWEATHER_API_KEY"),
			BaseURL:    getenvWithDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
			DigestCron: getenvWithDefault("WEATHER_DIGEST_CRON", "0 6 * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. The
// weather API key is deliberately not required: a missing key surfaces as an
// upstream-unavailable error at request time instead of blocking startup.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch {
	case c.Server.Port == "":
		return errors.New("APP_PORT must be provided")
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.Auth.JWTSecret == "":
		return errors.New("JWT_SECRET must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
