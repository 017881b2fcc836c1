// AngelaMos | 2026
// config.go

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	Identity  IdentityConfig  `koanf:"identity"`
	Views     ViewsConfig     `koanf:"views"`
	Storage   StorageConfig   `koanf:"storage"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Log       LogConfig       `koanf:"log"`
	Otel      OtelConfig      `koanf:"otel"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

type RedisConfig struct {
	URL          string `koanf:"url"`
	PoolSize     int    `koanf:"pool_size"`
	MinIdleConns int    `koanf:"min_idle_conns"`
}

// IdentityConfig points at the hosted auth backend that issues sessions.
// Either JWKSURL or PublicKeyPath must be set.
type IdentityConfig struct {
	JWKSURL        string        `koanf:"jwks_url"`
	JWKSRefresh    time.Duration `koanf:"jwks_refresh"`
	PublicKeyPath  string        `koanf:"public_key_path"`
	Issuer         string        `koanf:"issuer"`
	Audience       string        `koanf:"audience"`
	CookieName     string        `koanf:"cookie_name"`
	AdminURL       string        `koanf:"admin_url"`
	ServiceRoleKey string        `koanf:"service_role_key"`
	AdminTimeout   time.Duration `koanf:"admin_timeout"`
}

type ViewsConfig struct {
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

type StorageConfig struct {
	Enabled         bool   `koanf:"enabled"`
	Region          string `koanf:"region"`
	Bucket          string `koanf:"bucket"`
	Endpoint        string `koanf:"endpoint"`
	PublicBaseURL   string `koanf:"public_base_url"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
	MaxUploadBytes  int64  `koanf:"max_upload_bytes"`
}

// RateLimitConfig budgets page reads and form actions separately per user.
type RateLimitConfig struct {
	Requests       int           `koanf:"requests"`
	Window         time.Duration `koanf:"window"`
	Burst          int           `koanf:"burst"`
	ActionRequests int           `koanf:"action_requests"`
	ActionBurst    int           `koanf:"action_burst"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Path      string `koanf:"path"`
	Namespace string `koanf:"namespace"`
}

var (
	cfg  *Config
	once sync.Once
)

func Load(configPath string) (*Config, error) {
	var loadErr error

	once.Do(func() {
		cfg, loadErr = load(configPath)
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return cfg, nil
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		err := k.Load(file.Provider(configPath), yaml.Parser())
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	c := &Config{}
	if err := k.Unmarshal("", c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":        "Sponsorship Platform",
		"app.version":     "1.0.0",
		"app.environment": "development",

		"server.host":             "0.0.0.0",
		"server.port":             8080,
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",

		"redis.pool_size":      10,
		"redis.min_idle_conns": 5,

		"identity.jwks_refresh":  "15m",
		"identity.audience":      "authenticated",
		"identity.cookie_name":   "sb-access-token",
		"identity.admin_timeout": "10s",

		"views.cache_ttl": "10m",

		"storage.enabled":          false,
		"storage.region":           "us-east-1",
		"storage.max_upload_bytes": 10 << 20,

		"rate_limit.requests":        100,
		"rate_limit.window":          "1m",
		"rate_limit.burst":           20,
		"rate_limit.action_requests": 30,
		"rate_limit.action_burst":    10,

		"log.level":  "info",
		"log.format": "json",

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "sponsor-backend",

		"metrics.enabled":   true,
		"metrics.path":      "/metrics",
		"metrics.namespace": "sponsorship",
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

var envKeyMap = map[string]string{
	"DATABASE_URL":                "database.url",
	"REDIS_URL":                   "redis.url",
	"ENVIRONMENT":                 "app.environment",
	"HOST":                        "server.host",
	"PORT":                        "server.port",
	"LOG_LEVEL":                   "log.level",
	"LOG_FORMAT":                  "log.format",
	"IDENTITY_JWKS_URL":           "identity.jwks_url",
	"IDENTITY_JWKS_REFRESH":       "identity.jwks_refresh",
	"IDENTITY_PUBLIC_KEY_PATH":    "identity.public_key_path",
	"IDENTITY_ISSUER":             "identity.issuer",
	"IDENTITY_AUDIENCE":           "identity.audience",
	"IDENTITY_COOKIE_NAME":        "identity.cookie_name",
	"IDENTITY_ADMIN_URL":          "identity.admin_url",
	"IDENTITY_SERVICE_ROLE_KEY":   "identity.service_role_key",
	"VIEWS_CACHE_TTL":             "views.cache_ttl",
	"STORAGE_ENABLED":             "storage.enabled",
	"STORAGE_REGION":              "storage.region",
	"STORAGE_BUCKET":              "storage.bucket",
	"STORAGE_ENDPOINT":            "storage.endpoint",
	"STORAGE_PUBLIC_BASE_URL":     "storage.public_base_url",
	"AWS_ACCESS_KEY_ID":           "storage.access_key_id",
	"AWS_SECRET_ACCESS_KEY":       "storage.secret_access_key",
	"RATE_LIMIT_REQUESTS":         "rate_limit.requests",
	"RATE_LIMIT_WINDOW":           "rate_limit.window",
	"RATE_LIMIT_BURST":            "rate_limit.burst",
	"RATE_LIMIT_ACTION_REQUESTS":  "rate_limit.action_requests",
	"RATE_LIMIT_ACTION_BURST":     "rate_limit.action_burst",
	"OTEL_ENDPOINT":               "otel.endpoint",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_SERVICE_NAME":           "otel.service_name",
	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_INSECURE":               "otel.insecure",
	"OTEL_SAMPLE_RATE":            "otel.sample_rate",
	"METRICS_ENABLED":             "metrics.enabled",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}

	if c.Identity.JWKSURL == "" && c.Identity.PublicKeyPath == "" {
		return fmt.Errorf(
			"IDENTITY_JWKS_URL or IDENTITY_PUBLIC_KEY_PATH is required",
		)
	}

	if c.Identity.CookieName == "" {
		return fmt.Errorf("identity.cookie_name must not be empty")
	}

	if c.Storage.Enabled {
		if c.Storage.Bucket == "" {
			return fmt.Errorf("STORAGE_BUCKET is required when storage is enabled")
		}
		if c.Storage.MaxUploadBytes <= 0 {
			return fmt.Errorf("storage.max_upload_bytes must be positive")
		}
	}

	if c.App.Environment == "production" {
		if c.Otel.Enabled && c.Otel.Insecure {
			return fmt.Errorf("OTEL_INSECURE must be false in production")
		}
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive")
	}

	if c.RateLimit.Requests <= 0 || c.RateLimit.ActionRequests <= 0 {
		return fmt.Errorf("rate_limit.requests and rate_limit.action_requests must be positive")
	}

	if c.Views.CacheTTL <= 0 {
		return fmt.Errorf("views.cache_ttl must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
