package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mk-watch-mods/service"
)

// Config holds everything the storefront reads from the environment
type Config struct {
	Port string

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SMTPFrom    string
	SMTPTimeout time.Duration
	ToEmail     string

	DatabaseURL  string // empty disables reservation persistence
	CatalogPath  string // empty uses the embedded catalog
	AssetsDir    string
	LogoPath     string
	CacheDir     string
	SecureCookie bool
	LogLevel     string
}

// LoadConfig reads the configuration, reporting every missing required variable at once
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:        "8080",
		SMTPTimeout: service.DefaultSendTimeout,
		AssetsDir:   ".",
		LogoPath:    "images/logo.png",
		CacheDir:    "cache/images",
		LogLevel:    "info",
	}

	var errs []error
	required := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			errs = append(errs, fmt.Errorf("%s environment variable is not set", key))
		}
		return v
	}

	cfg.SMTPHost = required("SMTP_HOST")
	if portStr := required("SMTP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			errs = append(errs, fmt.Errorf("invalid SMTP_PORT %q", portStr))
		}
		cfg.SMTPPort = port
	}
	cfg.SMTPUser = required("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_PASS")
	if cfg.SMTPPass == "" {
		errs = append(errs, fmt.Errorf("SMTP_PASS environment variable is not set"))
	}
	cfg.ToEmail = required("TO_EMAIL")

	cfg.SMTPFrom = cfg.SMTPUser
	if from := strings.TrimSpace(os.Getenv("SMTP_FROM")); from != "" {
		cfg.SMTPFrom = from
	}
	if raw := strings.TrimSpace(os.Getenv("SMTP_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("invalid SMTP_TIMEOUT %q", raw))
		}
		cfg.SMTPTimeout = d
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		// Remove leading colon if present
		cfg.Port = strings.TrimPrefix(port, ":")
	}
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.CatalogPath = strings.TrimSpace(os.Getenv("CATALOG_PATH"))
	if v := strings.TrimSpace(os.Getenv("ASSETS_DIR")); v != "" {
		cfg.AssetsDir = v
	}
	if v := strings.TrimSpace(os.Getenv("LOGO_PATH")); v != "" {
		cfg.LogoPath = v
	}
	if v := strings.TrimSpace(os.Getenv("CACHE_DIR")); v != "" {
		cfg.CacheDir = v
	}
	if v := strings.TrimSpace(os.Getenv("SESSION_COOKIE_SECURE")); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid SESSION_COOKIE_SECURE %q", v))
		}
		cfg.SecureCookie = secure
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}
