package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the application reads from the environment.
// Secrets (admin credentials, SMTP password) are never kept in code.
type Config struct {
	Port          string
	UploadDir     string
	TemplatesGlob string

	AdminUsername string
	// Either a bcrypt hash or a plain value; login handles both.
	AdminPassword string

	SessionTTL time.Duration

	SMTP SMTPConfig
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func Load() Config {
	ttl := 12 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL_MINUTES")); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			ttl = time.Duration(minutes) * time.Minute
		}
	}

	return Config{
		Port:          envOrDefault("PORT", "8080"),
		UploadDir:     envOrDefault("UPLOAD_DIR", "uploads/img_tour"),
		TemplatesGlob: envOrDefault("TEMPLATES_GLOB", "templates/*.html"),
		AdminUsername: envOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionTTL:    ttl,
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     os.Getenv("SMTP_PORT"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			FromName: envOrDefault("SMTP_FROM_NAME", "Tours for the soul"),
		},
	}
}
