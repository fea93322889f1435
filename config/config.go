package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the server configuration read from the environment.
type Config struct {
	Port                   string
	RedisURL               string
	Secret                 string
	SessionKey             string
	TokenTTL               time.Duration
	RoomTTL                time.Duration
	AllowMidGameTypeChange bool
	CorsOrigin             string
	Prod                   bool
	LogLevel               slog.Level

	// HTTPS is served when both are set
	CertFile string
	KeyFile  string

	Postgres PostgresConfig
}

// PostgresConfig is optional: the archive is disabled when Host is empty.
type PostgresConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
	Migrate  bool
	Verbose  bool
}

func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		p.User, p.Password, p.Host, p.Port, p.Database)
}

// Load reads an optional .env file and then the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return nil, fmt.Errorf("error loading env files: %w", err)
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		RedisURL:   getEnv("REDIS_URL", "localhost:6379"),
		Secret:     os.Getenv("SECRET"),
		SessionKey: getEnv("KEY", os.Getenv("SECRET")),
		CorsOrigin: getEnv("CORS_ORIGIN", "*"),
		Prod:       os.Getenv("PROD") == "true",
		CertFile:   os.Getenv("TLS_CERT_FILE"),
		KeyFile:    os.Getenv("TLS_KEY_FILE"),
		Postgres: PostgresConfig{
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			Database: os.Getenv("POSTGRES_DATABASE"),
			Migrate:  os.Getenv("MIGRATE_POSTGRES") == "true",
			Verbose:  os.Getenv("VERBOSE_POSTGRES") == "true",
		},
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("SECRET must be set")
	}

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RoomTTL, err = getDuration("ROOM_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.AllowMidGameTypeChange, err = getBool("ALLOW_MID_GAME_TYPE_CHANGE", true); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

// UseTLS reports whether a certificate and key were configured.
func (c *Config) UseTLS() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func getDuration(name string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

func getBool(name string, fallback bool) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
