// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings. Auth settings are required; the
// database and Redis blocks are optional and the service degrades to
// pure in-memory operation when they are absent.
type Config struct {
	Env  string // application environment ("dev", "prod")
	Port string // HTTP port to listen on

	JWTSecret      string // secret used to sign access JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for seeded account hashes

	DBUser string // database username; empty disables the archive
	DBPass string // database password (optional)
	DBHost string // database host
	DBPort string // database port
	DBName string // database name

	SearchCacheTTL time.Duration // lifetime of cached search results
}

// Load reads the environment into a Config. Required variables abort
// startup via must(); optional ones fall back to defaults.
func Load() Config {
	return Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("APP_PORT", "8080"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   getenvInt("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays: getenvInt("REFRESH_TOKEN_TTL_DAYS", 7),
		BcryptCost:     getenvInt("BCRYPT_COST", 10),
		DBUser:         os.Getenv("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         getenv("DB_PORT", "3306"),
		DBName:         getenv("DB_NAME", "pgfinder"),
		SearchCacheTTL: getenvDur("SEARCH_CACHE_TTL", 30*time.Second),
	}
}

// ArchiveEnabled reports whether a database is configured.
func (c Config) ArchiveEnabled() bool { return c.DBUser != "" }

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

func getenvDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, v)
	}
	return d
}
