package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration, loaded once at startup from
// environment variables (see Load for the full list and their defaults).
type Config struct {
	// Server
	SocketAddress    string
	APIToken         string
	ServerURLs       []string
	ProjectsDir      string
	DefaultTimeoutSec int
	RetentionSec      int

	// Optional: Redis terminal-status mirror. Blank disables it.
	RedisURL string

	// Optional: S3 / MinIO archival mirror for extracted download files.
	// Blank S3Bucket disables it.
	S3Endpoint               string
	S3AccessKey              string
	S3SecretKey              string
	S3Bucket                 string
	S3UseSSL                 bool
	S3SkipBucketVerification bool

	// Optional: Bleve project-file search index. Blank disables it.
	BleveIndexDir string

	// Optional: NATS fire-and-forget audit sink. Blank disables it.
	NATSURL string

	// App
	Environment string // development, staging, production
	LogLevel    string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		SocketAddress:            getEnv("SOCKET_ADDRESS", "127.0.0.1:3000"),
		APIToken:                 getEnv("API_TOKEN", ""),
		ServerURLs:               getEnvList("SERVER_URLS", nil),
		ProjectsDir:              getEnv("PROJECTS_DIR", "projects"),
		DefaultTimeoutSec:        getEnvInt("DEFAULT_TIMEOUT_SEC", 600),
		RetentionSec:             getEnvInt("RETENTION_SEC", 900),
		RedisURL:                 getEnv("REDIS_URL", ""),
		S3Endpoint:               getEnv("S3_ENDPOINT", ""),
		S3AccessKey:              getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:              getEnv("S3_SECRET_KEY", ""),
		S3Bucket:                 getEnv("S3_BUCKET", ""),
		S3UseSSL:                 getEnvBool("S3_USE_SSL", false),
		S3SkipBucketVerification: getEnvBool("S3_SKIP_BUCKET_VERIFICATION", true),
		BleveIndexDir:            getEnv("BLEVE_INDEX_DIR", ""),
		NATSURL:                  getEnv("NATS_URL", ""),
		Environment:              getEnv("ENVIRONMENT", "development"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("API_TOKEN is required")
	}
	if c.SocketAddress == "" {
		return fmt.Errorf("SOCKET_ADDRESS is required")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
