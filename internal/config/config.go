package config

import (
	"os"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	ListenAddr     string
	MigrationsPath string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type AuthConfig struct {
	TokenSecret string
	Algorithm   string
	TTLMinutes  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:     getenv("LISTEN_ADDR", ":8080"),
			MigrationsPath: getenv("MIGRATIONS_PATH", "./migrations"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Auth: AuthConfig{
			TokenSecret: os.Getenv("TOKEN_SECRET"),
			Algorithm:   getenv("TOKEN_ALGORITHM", "HS256"),
			TTLMinutes:  getenv("TOKEN_TTL_MINUTES", "30"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(os.Getenv("ALLOWED_ORIGINS")),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
