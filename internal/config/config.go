package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port     string
	Database Database
	Auth     Auth
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Auth struct {
	JWTSecret []byte
	TokenTTL  time.Duration
}

// DSN builds the Postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// Load resolves configuration from the environment (a local .env is
// picked up by godotenv). The result is passed down explicitly; nothing
// reads the environment after startup.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getenv("PORT", "8080"),
		Database: Database{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		Auth: Auth{
			JWTSecret: []byte(os.Getenv("JWT_SECRET")),
			TokenTTL:  72 * time.Hour,
		},
	}

	if ttl := os.Getenv("TOKEN_TTL_HOURS"); ttl != "" {
		hours, err := strconv.Atoi(ttl)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS %q", ttl)
		}
		cfg.Auth.TokenTTL = time.Duration(hours) * time.Hour
	}

	if len(cfg.Auth.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Database.Name == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
