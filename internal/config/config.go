// Package config resolves CLI settings from the environment, with a
// local .env file as fallback for values the environment does not set.
// The tabgen library itself takes no environment input; only the CLI
// reads this.
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	LogLevel string
	Rows     int
	Seed     *int64 // nil when unseeded
}

func Load() *Config {
	dotenv := loadDotEnv(".env")

	cfg := &Config{
		LogLevel: getEnv(dotenv, "TABGEN_LOG_LEVEL", "info"),
		Rows:     100,
	}
	if v := getEnv(dotenv, "TABGEN_ROWS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Rows = n
		}
	}
	if v := getEnv(dotenv, "TABGEN_SEED", ""); v != "" {
		if s, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = &s
		}
	}
	return cfg
}

func getEnv(dotenv map[string]string, key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value, ok := dotenv[key]; ok && value != "" {
		return value
	}
	return defaultValue
}

// loadDotEnv reads KEY=VALUE lines; missing files and malformed lines
// are ignored.
func loadDotEnv(path string) map[string]string {
	out := make(map[string]string)
	data, err := os.ReadFile(path)
	if err != nil {
		return out
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"`)
	}
	return out
}
