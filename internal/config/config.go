package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, one field per environment variable.
type Config struct {
	Port     string // HTTP port to listen on
	LogLevel string // logrus level name
	GinMode  string // gin mode: debug, release or test
	SeedDemo bool   // seed the in-memory store with demo auctions
}

// Load reads configuration from the environment, after loading a .env file
// if one is present. Every value has a sensible default so the server runs
// with no configuration at all.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:     envStr("PORT", "8080"),
		LogLevel: envStr("LOG_LEVEL", "info"),
		GinMode:  envStr("GIN_MODE", "debug"),
		SeedDemo: envBool("SEED_DEMO", true),
	}
}

// Addr formats the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

func envStr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}
