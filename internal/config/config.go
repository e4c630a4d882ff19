// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Store drivers.
const (
	DriverMongo  = "mongo"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config holds process settings resolved from the environment.
type Config struct {
	Port            string
	StoreDriver     string
	StoreKey        string
	MongoURI        string
	MongoDB         string
	MongoCollection string
	RedisAddress    string
	GeminiAPIKey    string
	GeminiModel     string
	SyncDelay       time.Duration
	EngineerName    string
	LogLevel        string
	LogFormat       string
	CORSOrigins     []string

	// Warnings lists values that were rejected in favour of a default.
	// NewLogger reports them once the configured logger exists.
	Warnings []string
}

// LoadDotEnv loads .env files into the environment. Missing files are
// ignored and variables already set are left alone.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load loads configuration from environment with defaults.
func Load() Config {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load over an arbitrary lookup.
func LoadFrom(getenv func(string) string) Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:            get("PORT", "8080"),
		StoreDriver:     strings.ToLower(get("STORE_DRIVER", DriverMongo)),
		StoreKey:        get("STORE_KEY", "heavy_machinery_db_v2"),
		MongoURI:        get("MONGO_URI", ""),
		MongoDB:         get("MONGO_DB", "apex"),
		MongoCollection: get("MONGO_COLLECTION", "documents"),
		RedisAddress:    get("REDIS_ADDRESS", "localhost:6379"),
		GeminiAPIKey:    get("GEMINI_API_KEY", getenv("API_KEY")),
		GeminiModel:     get("GEMINI_MODEL", "gemini-3-flash-preview"),
		SyncDelay:       time.Second,
		EngineerName:    get("ENGINEER_NAME", "Ali Saif"),
		LogLevel:        get("LOG_LEVEL", "info"),
		LogFormat:       strings.ToLower(get("LOG_FORMAT", "text")),
	}

	if v := get("SYNC_DELAY", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid SYNC_DELAY %q, using 1s", v))
		} else {
			cfg.SyncDelay = d
		}
	}

	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	return cfg
}

// NewLogger builds the process logger from LogLevel and LogFormat and logs
// any configuration warnings through it.
func (c Config) NewLogger(out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	if c.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		logger.WithField("value", c.LogLevel).Warn("invalid LOG_LEVEL, using info")
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	for _, w := range c.Warnings {
		logger.Warn(w)
	}
	return logger
}
