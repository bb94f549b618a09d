package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName        string
	AppEnv         string
	AppPort        string
	DatabaseURL    string
	RedisURL       string
	AllowedOrigins []string
	ListCacheTTL   time.Duration
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string
	SMTPFromEmail  string
	SMTPFromName   string
	MailTimeout    time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PORTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Portfolio API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("cors.origins", "*")
	v.SetDefault("list.cache_ttl", "1m")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from_name", "Portfolio Contact")
	v.SetDefault("mail.timeout", "10s")

	ttl, err := time.ParseDuration(v.GetString("list.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid list cache ttl: %w", err)
	}

	mailTimeout, err := time.ParseDuration(v.GetString("mail.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid mail timeout: %w", err)
	}

	cfg := Config{
		AppName:        v.GetString("app.name"),
		AppEnv:         v.GetString("app.env"),
		AppPort:        v.GetString("app.port"),
		DatabaseURL:    v.GetString("database.url"),
		RedisURL:       v.GetString("redis.url"),
		AllowedOrigins: splitOrigins(v.GetString("cors.origins")),
		ListCacheTTL:   ttl,
		SMTPHost:       v.GetString("smtp.host"),
		SMTPPort:       v.GetInt("smtp.port"),
		SMTPUser:       v.GetString("smtp.user"),
		SMTPPassword:   v.GetString("smtp.password"),
		SMTPFromEmail:  v.GetString("smtp.from_email"),
		SMTPFromName:   v.GetString("smtp.from_name"),
		MailTimeout:    mailTimeout,
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.SMTPPort <= 0 {
		cfg.SMTPPort = 587
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
