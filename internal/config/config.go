package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port string

	DBHost           string
	DBPort           string
	DBName           string
	DBUser           string
	DBPassword       string
	DBSSLMode        string
	DBMaxConns       int32
	StatementTimeout time.Duration

	AllowOrigins []string

	OTELEndpoint    string
	OTELServiceName string
}

// Load reads the process environment once. Bad numeric or duration values are errors
// so the process can refuse to start.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		DBHost:          getEnv("PGHOST", "localhost"),
		DBPort:          getEnv("PGPORT", "5432"),
		DBName:          getEnv("PGDATABASE", "likeme"),
		DBUser:          getEnv("PGUSER", "postgres"),
		DBPassword:      os.Getenv("PGPASSWORD"),
		DBSSLMode:       getEnv("PGSSLMODE", "disable"),
		OTELEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTELServiceName: getEnv("OTEL_SERVICE_NAME", "likeme-api"),
	}

	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil || maxConns < 1 {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS %q", os.Getenv("DB_MAX_CONNS"))
	}
	cfg.DBMaxConns = int32(maxConns)

	if v := os.Getenv("DB_STATEMENT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid DB_STATEMENT_TIMEOUT %q", v)
		}
		cfg.StatementTimeout = d
	}

	for _, origin := range strings.Split(getEnv("CORS_ALLOW_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}

	return cfg, nil
}

// DSN renders a keyword/value connection string. Values are quoted so an empty
// password does not swallow the next keyword.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		quote(c.DBHost), quote(c.DBPort), quote(c.DBUser), quote(c.DBPassword), quote(c.DBName), quote(c.DBSSLMode),
	)
}

func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quote(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
