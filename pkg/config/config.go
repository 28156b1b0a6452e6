package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds all configuration loaded from the environment.
type Config struct {
	ServiceName string
	Port        string
	DatabaseURL string
	BcryptCost  int
	APIToken    string
	FrontToken  string
	FrontURL    string
	JWTSecret   string
	Env         string
	LogLevel    string
}

// Load reads configuration from a .env file (optional) and environment
// variables. Every variable of the required surface must be present; a missing
// one is a startup error and the caller is expected to terminate the process.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	var missing []string
	lookup := func(key string) string {
		value, exists := os.LookupEnv(key)
		if !exists || value == "" {
			missing = append(missing, key)
		}
		return value
	}

	config := &Config{
		ServiceName: "sicove-api",
		Port:        lookup("PORT"),
		DatabaseURL: lookup("DATABASE_URL"),
		APIToken:    lookup("API_TOKEN"),
		FrontToken:  lookup("FRONT_TOKEN"),
		FrontURL:    lookup("FRONT_URL"),
		JWTSecret:   lookup("JWT_PASSWORD"),
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	costStr := lookup("BCRYPT_PASSWORD")
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("BCRYPT_PASSWORD must be an integer cost factor: %w", err)
	}
	config.BcryptCost = cost

	return config, nil
}

// LogConfig returns the configuration as zap fields with secrets masked, for
// the startup summary.
func (c *Config) LogConfig() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Env),
		zap.String("port", c.Port),
		zap.String("database_url", MaskConnectionURL(c.DatabaseURL)),
		zap.Int("bcrypt_cost", c.BcryptCost),
		zap.String("api_token", MaskSecret(c.APIToken)),
		zap.String("front_token", MaskSecret(c.FrontToken)),
		zap.String("front_url", c.FrontURL),
		zap.String("jwt_password", MaskSecret(c.JWTSecret)),
	}
}

// MaskSecret hides all but the last four characters of a secret value.
func MaskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

// MaskConnectionURL hides the credential part of a connection string.
func MaskConnectionURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	masked := url.User(u.User.Username())
	if _, hasPassword := u.User.Password(); hasPassword {
		masked = url.UserPassword(u.User.Username(), "****")
	}
	u.User = masked
	return u.String()
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
