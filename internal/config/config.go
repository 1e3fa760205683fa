package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field
// corresponds to an environment variable. Every variable is optional;
// the defaults run a local development instance against a store file
// in the working directory.
type Config struct {
	Env      string // application environment (e.g. "dev", "production")
	Port     string // HTTP port to listen on
	LogLevel string // zap log level (debug/info/warn/error)
	DBPath   string // path of the SQLite store file
	DBReset  bool   // wipe and reseed the store at startup
}

// Load reads configuration values from environment variables and
// returns a Config, falling back to defaults for unset variables.
func Load() Config {
	return Config{
		Env:      getenv("APP_ENV", "dev"),
		Port:     getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		DBPath:   getenv("DB_PATH", "footprints.db"),
		DBReset:  getenvBool("DB_RESET", true),
	}
}

// getenv retrieves an environment variable or the fallback when the
// variable is unset or empty.
func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getenvBool is like getenv but parses the value as a boolean. An
// unparseable value is fatal rather than silently defaulted.
func getenvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("invalid bool for %s: %q", key, v)
	}
	return b
}
