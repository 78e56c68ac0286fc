package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Storage     StorageConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
	Notifier    NotifierConfig
	SeedData    bool
}

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	StaticDir      string
	AllowedOrigins []string
}

// StorageConfig selects the repository backend: memory, mysql or postgres.
type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrateRetries  int
}

// RedisConfig with an empty Host disables Redis; sessions and the response
// cache then live in process memory.
type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// RabbitMQConfig with an empty Host disables event publishing.
type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret       string
	JWTExpiration   time.Duration
	SessionExpTime  time.Duration
	InternalAPIKey  string
	PasswordHashing string
}

type CacheConfig struct {
	Enabled      bool
	VendorTTL    time.Duration
	ReferenceTTL time.Duration
}

// RateLimitConfig throttles login attempts per client address.
type RateLimitConfig struct {
	Enabled   bool
	Rate      float64
	Burst     int
	ExpiresIn time.Duration
}

type NotifierConfig struct {
	APIBaseURL string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getString("APP_ENV", "development"),
		Server: ServerConfig{
			Port:           getString("SERVER_PORT", "5000"),
			ReadTimeout:    getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:   getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:    getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			StaticDir:      getString("STATIC_DIR", ""),
			AllowedOrigins: getList("CORS_ALLOWED_ORIGINS"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString("STORAGE_DRIVER", "memory")),
		},
		Database: DatabaseConfig{
			Host:            getString("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getString("DB_USER", "root"),
			Password:        getString("DB_PASSWORD", ""),
			Name:            getString("DB_NAME", "browbeat"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			AutoMigrate:     getBool("DB_AUTO_MIGRATE", true),
			MigrateRetries:  getInt("DB_MIGRATE_RETRIES", 5),
		},
		Redis: RedisConfig{
			Host:        getString("REDIS_HOST", ""),
			Port:        getInt("REDIS_PORT", 6379),
			Password:    getString("REDIS_PASSWORD", ""),
			DB:          getInt("REDIS_DB", 0),
			PoolSize:    getInt("REDIS_POOL_SIZE", 10),
			DialTimeout: getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout: getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getString("RABBITMQ_HOST", ""),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getString("RABBITMQ_USER", "guest"),
			Password: getString("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:       getString("JWT_SECRET", "change-me"),
			JWTExpiration:   getDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime:  getDuration("SESSION_EXP_TIME", 24*time.Hour),
			InternalAPIKey:  getString("INTERNAL_API_KEY", ""),
			PasswordHashing: strings.ToLower(getString("PASSWORD_HASHING", "plain")),
		},
		Cache: CacheConfig{
			Enabled:      getBool("CACHE_ENABLED", true),
			VendorTTL:    getDuration("CACHE_VENDOR_TTL", 5*time.Minute),
			ReferenceTTL: getDuration("CACHE_REFERENCE_TTL", time.Hour),
		},
		RateLimit: RateLimitConfig{
			Enabled:   getBool("LOGIN_RATE_LIMIT_ENABLED", true),
			Rate:      getFloat("LOGIN_RATE_LIMIT", 1),
			Burst:     getInt("LOGIN_RATE_BURST", 5),
			ExpiresIn: getDuration("LOGIN_RATE_EXPIRES_IN", 3*time.Minute),
		},
		Notifier: NotifierConfig{
			APIBaseURL: getString("API_BASE_URL", "http://localhost:5000"),
		},
		SeedData: getBool("SEED_SAMPLE_DATA", false),
	}
}

// GetDSN builds the driver-specific data source name for the configured storage driver.
func (c *Config) GetDSN() string {
	d := c.Database
	if c.Storage.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			d.Host, d.Port, d.User, d.Password, d.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC", d.User, d.Password, d.Host, d.Port, d.Name)
}

func getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
