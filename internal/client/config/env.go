package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A
// .env file in the working directory is loaded first; its absence is
// not an error.
//
// Recognized variables:
//
//	THOUGHTS_SERVER_URL       base URL of the backend REST API
//	THOUGHTS_REQUEST_TIMEOUT  request timeout in seconds
//	THOUGHTS_SESSION_DB       path of the local session database
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("THOUGHTS_SERVER_URL"); ok && v != "" {
		cfg.ServerBaseURL = v
	}
	if v, ok := os.LookupEnv("THOUGHTS_REQUEST_TIMEOUT"); ok && v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v, ok := os.LookupEnv("THOUGHTS_SESSION_DB"); ok && v != "" {
		cfg.SessionDBPath = v
	}
}
