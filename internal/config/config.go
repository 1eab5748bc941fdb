package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// server config
	APP_PORT         string
	MAX_UPLOAD_BYTES int64
	// session config
	SESSION_HEADER         string
	SESSION_TTL            time.Duration
	SESSION_SWEEP_INTERVAL time.Duration
	// export config
	EXPORT_TEMPLATE_PATH string
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
}

// LoadEnvConfig reads .env (when present) and the process environment into
// DefaultEnvConfig.
func LoadEnvConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		APP_PORT:               getEnvString("APP_PORT", "8080"),
		MAX_UPLOAD_BYTES:       int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		SESSION_HEADER:         getEnvString("SESSION_HEADER", "X-Session-ID"),
		SESSION_TTL:            getEnvDuration("SESSION_TTL", 30*time.Minute),
		SESSION_SWEEP_INTERVAL: getEnvDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		EXPORT_TEMPLATE_PATH:   getEnvString("EXPORT_TEMPLATE_PATH", ""),
		LOG_FILE_PATH:          getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:              getEnvString("LOG_LEVEL", "info"),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
