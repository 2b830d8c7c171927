package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Config is the full runtime configuration, loaded from the environment.
type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Storage StorageConfig
	Auth    AuthConfig
	Cache   CacheConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DB.URL) == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" && c.Auth.JWKSURL == "" {
		return fmt.Errorf("auth enabled: one of WORKSHOP_JWT_SECRET or WORKSHOP_JWKS_URL is required")
	}
	if _, err := c.App.Location(); err != nil {
		return err
	}
	return nil
}

type AppConfig struct {
	Env           string `envconfig:"WORKSHOP_APP_ENV" default:"dev"`
	Port          string `envconfig:"WORKSHOP_APP_PORT" default:"8080"`
	LogLevel      string `envconfig:"WORKSHOP_LOG_LEVEL" default:"info"`
	LogFormat     string `envconfig:"WORKSHOP_LOG_FORMAT" default:"json"`
	LogBufferSize int    `envconfig:"WORKSHOP_LOG_BUFFER_SIZE" default:"100"`
	Timezone      string `envconfig:"WORKSHOP_TIMEZONE" default:"America/Sao_Paulo"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

// Location resolves the timezone used for calendar-day and month boundaries.
func (a AppConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid WORKSHOP_TIMEZONE %q: %w", a.Timezone, err)
	}
	return loc, nil
}

type DBConfig struct {
	URL         string `envconfig:"DATABASE_URL" required:"true"`
	MaxConns    int32  `envconfig:"WORKSHOP_DB_MAX_CONNS" default:"10"`
	AutoMigrate bool   `envconfig:"WORKSHOP_DB_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type StorageConfig struct {
	Endpoint      string        `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKey     string        `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	SecretKey     string        `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	UseSSL        bool          `envconfig:"MINIO_USE_SSL" default:"false"`
	Bucket        string        `envconfig:"MINIO_BUCKET" default:"workshop-assets"`
	PresignExpiry time.Duration `envconfig:"MINIO_PRESIGN_EXPIRY" default:"15m"`
	MaxLogoBytes  int64         `envconfig:"WORKSHOP_MAX_LOGO_BYTES" default:"2097152"`
}

type AuthConfig struct {
	Enabled   bool   `envconfig:"WORKSHOP_AUTH_ENABLED" default:"true"`
	JWTSecret string `envconfig:"WORKSHOP_JWT_SECRET"`
	// JWKSURL takes precedence over JWTSecret when set.
	JWKSURL string `envconfig:"WORKSHOP_JWKS_URL"`
}

// CacheConfig holds how long each derived dashboard view stays cached. The
// defaults match the refresh cadence of the dashboard widgets.
type CacheConfig struct {
	DashboardStatsTTL time.Duration `envconfig:"WORKSHOP_CACHE_DASHBOARD_STATS_TTL" default:"30s"`
	RecentOrdersTTL   time.Duration `envconfig:"WORKSHOP_CACHE_RECENT_ORDERS_TTL" default:"60s"`
	StockAlertsTTL    time.Duration `envconfig:"WORKSHOP_CACHE_STOCK_ALERTS_TTL" default:"120s"`
	SettingsTTL       time.Duration `envconfig:"WORKSHOP_CACHE_SETTINGS_TTL" default:"5m"`
}
