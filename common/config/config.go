package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration
type Config struct {
	Service  ServiceConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Cache    CacheConfig
	Spypoint SpypointConfig
	Notify   NotifyConfig
	Sync     SyncConfig
}

// ServiceConfig holds service-specific settings
type ServiceConfig struct {
	Name        string
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
}

// DatabaseConfig holds Postgres connection settings
type DatabaseConfig struct {
	Host        string
	Port        int
	Database    string
	User        string
	Password    string
	MaxConns    int
	MinConns    int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

// StorageConfig holds object storage settings
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// CacheConfig holds the optional Redis dedup cache settings.
// The cache is disabled when Addr is empty.
type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// SpypointConfig holds vendor API credentials
type SpypointConfig struct {
	User     string
	Password string
	Host     string
}

// NotifyConfig holds webhook notification settings
type NotifyConfig struct {
	WebhookURL string
}

// SyncConfig holds ingestion pipeline tuning
type SyncConfig struct {
	Days        int
	Pace        time.Duration
	PhotoLimit  int
	ThumbWidth  int
	ThumbHeight int
}

// Load loads configuration from environment variables.
// A .env file in the working directory is read first if present.
func Load(serviceName string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Service: ServiceConfig{
			Name:        serviceName,
			Port:        getEnvInt("PORT", 8080),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "text"),
		},
		Database: DatabaseConfig{
			Host:        getEnv("POSTGRES_HOST", "localhost"),
			Port:        getEnvInt("POSTGRES_PORT", 5432),
			Database:    getEnv("POSTGRES_DB", "spartan"),
			User:        getEnv("POSTGRES_USER", "spartan"),
			Password:    getEnv("POSTGRES_PASSWORD", "spartan"),
			MaxConns:    getEnvInt("POSTGRES_MAX_CONNS", 10),
			MinConns:    getEnvInt("POSTGRES_MIN_CONNS", 2),
			MaxIdleTime: getEnvDuration("POSTGRES_MAX_IDLE_TIME", 30*time.Minute),
			MaxLifetime: getEnvDuration("POSTGRES_MAX_LIFETIME", 1*time.Hour),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "pictures"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Cache: CacheConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("REDIS_DEDUP_TTL", 30*24*time.Hour),
		},
		Spypoint: SpypointConfig{
			User:     os.Getenv("SPYPOINT_USER"),
			Password: os.Getenv("SPYPOINT_PWD"),
			Host:     os.Getenv("SPYPOINT_HOST"),
		},
		Notify: NotifyConfig{
			WebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
		},
		Sync: SyncConfig{
			Days:        getEnvInt("SYNC_DAYS", 2),
			Pace:        getEnvDuration("SYNC_PACE", 2*time.Second),
			PhotoLimit:  getEnvInt("SYNC_PHOTO_LIMIT", 125),
			ThumbWidth:  getEnvInt("THUMB_WIDTH", 400),
			ThumbHeight: getEnvInt("THUMB_HEIGHT", 400),
		},
	}

	return cfg, cfg.Validate()
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Service.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("max_conns must be >= min_conns")
	}

	if c.Sync.Days < 1 {
		return fmt.Errorf("sync days must be positive, got %d", c.Sync.Days)
	}

	return nil
}

// ValidateSpypoint checks vendor credentials. Only the sync binary needs
// them, so this is separate from Validate.
func (c *Config) ValidateSpypoint() error {
	if c.Spypoint.User == "" {
		return fmt.Errorf("SPYPOINT_USER is required")
	}
	if c.Spypoint.Password == "" {
		return fmt.Errorf("SPYPOINT_PWD is required")
	}
	if c.Spypoint.Host == "" {
		return fmt.Errorf("SPYPOINT_HOST is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
