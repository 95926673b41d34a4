package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AccessSecret  string // Required: HS256 secret for access tokens
	RefreshSecret string // Required: HS256 secret for refresh tokens
	Issuer        string // Optional: issuer claim for tokens (default: dormdesk)

	DatabaseFile string // Optional: path to SQLite database file (default: ./dormdesk.db)
	PepperFile   string // Optional: path to pepper file for password hashing (default: ./pepper)

	AllowOwnerSignup bool // Optional: permit self-registration with the owner role (default: true)

	// S3-compatible object store for presigned uploads. Endpoint empty means
	// AWS proper.
	S3Region    string
	S3Endpoint  string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		AccessSecret:  os.Getenv("DORM_ACCESS_SECRET"),
		RefreshSecret: os.Getenv("DORM_REFRESH_SECRET"),
		Issuer:        getEnvOrDefault("DORM_ISSUER", "dormdesk"),

		DatabaseFile: getEnvOrDefault("DORM_DATABASE_FILE", "dormdesk.db"),
		PepperFile:   getEnvOrDefault("DORM_PEPPER_FILE", "pepper"),

		AllowOwnerSignup: getEnvBoolOrDefault("DORM_ALLOW_OWNER_SIGNUP", true),

		S3Region:    getEnvOrDefault("DORM_S3_REGION", "us-east-1"),
		S3Endpoint:  os.Getenv("DORM_S3_ENDPOINT"),
		S3Bucket:    getEnvOrDefault("DORM_S3_BUCKET", "dormdesk-uploads"),
		S3AccessKey: os.Getenv("DORM_S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("DORM_S3_SECRET_KEY"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
