package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// SESConfig holds AWS SES settings for the mailer.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// Config holds all configuration for the application
type Config struct {
	DBUrl         string
	Environment   string
	Port          string
	JWTSecret     string
	CORSOrigins   []string
	EmailProvider string
	EmailFrom     string
	EmailFromName string
	SES           SESConfig
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
// DATABASE_URL is required; Load returns an error if it is absent so that
// startup fails loudly instead of silently pointing at a default database.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables and a missing
	// .env file is expected.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		DBUrl:         os.Getenv("DATABASE_URL"),
		Port:          os.Getenv("PORT"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigins:   splitCSV(os.Getenv("CORS_ORIGINS")),
		EmailProvider: os.Getenv("EMAIL_PROVIDER"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),
		EmailFromName: os.Getenv("EMAIL_FROM_NAME"),
		SES: SESConfig{
			Region:          os.Getenv("AWS_SES_REGION"),
			AccessKeyID:     os.Getenv("AWS_SES_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SES_SECRET_ACCESS_KEY"),
		},
	}

	if cfg.DBUrl == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		if env == "production" {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-change-me"
	}

	return cfg, nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
