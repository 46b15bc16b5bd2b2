package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Sentry   SentryConfig
	SeedDemo bool
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver   string // "postgres" or "sqlite"
	URL      string // DATABASE_URL, takes precedence over the pieces below
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SQLite   string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type RedisConfig struct {
	URL      string
	Addr     string
	Username string
	Password string
}

type SentryConfig struct {
	DSN string
}

// DevSecretKey signs tokens when SECRET_KEY is unset outside production.
const DevSecretKey = "change-me"

var ErrMissingSecretKey = errors.New("SECRET_KEY must be set to a non-default value in production")

// Load reads configuration from the environment. Outside production a local
// .env file is loaded first. Production refuses to start without a real
// SECRET_KEY.
func Load() (*Config, error) {
	env := getEnvOrDefault("APP_ENV", "development")
	if !strings.EqualFold(env, "production") {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("[config] could not load .env: %v", err)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = getEnvOrDefault("API_PORT", "8888")
	}

	cfg := &Config{
		Env: env,
		Server: ServerConfig{
			Port:           strings.TrimSpace(port),
			AllowedOrigins: splitCSV(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnvOrDefault("DB_DRIVER", "postgres")),
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SQLite:   getEnvOrDefault("SQLITE_PATH", "./data/socialnet.db"),
		},
		JWT: JWTConfig{
			Secret: strings.TrimSpace(os.Getenv("SECRET_KEY")),
			TTL:    time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     os.Getenv("REDIS_ADDR"),
			Username: os.Getenv("REDIS_USERNAME"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Sentry: SentryConfig{
			DSN: os.Getenv("SENTRY_DSN"),
		},
		SeedDemo: getEnvOrDefault("SEED_DEMO_DATA", "false") == "true",
	}

	if cfg.JWT.Secret == "" || cfg.JWT.Secret == DevSecretKey {
		if cfg.IsProduction() {
			return nil, ErrMissingSecretKey
		}
		cfg.JWT.Secret = DevSecretKey
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// PostgresDSN builds the connection string. In production DATABASE_URL is
// used and sslmode=require is appended when absent.
func (d DatabaseConfig) PostgresDSN(production bool) string {
	if d.URL != "" {
		dsn := d.URL
		if production && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		return dsn
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitCSV(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
