package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"outfitter"`
	Version     string `env:"VERSION" envDefault:"dev"`
	LogDir      string `env:"LOG_DIR"`

	DBUser         string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost         string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string        `env:"DB_PORT" envDefault:"5432"`
	DBName         string        `env:"DB_NAME" envDefault:"outfitter"`
	DBMaxConns     int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdle  time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBMaxConnLife  time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	MigrateOnStart bool          `env:"DB_MIGRATE_ON_START" envDefault:"true"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"12h"`

	CatalogPath         string        `env:"CATALOG_PATH" envDefault:"configs/items.json"`
	CatalogSchema       string        `env:"CATALOG_SCHEMA_PATH" envDefault:"configs/schemas/items.schema.json"`
	CatalogCacheSize    int           `env:"CATALOG_CACHE_SIZE" envDefault:"512"`
	CatalogCacheTTL     time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
	CatalogSyncInterval time.Duration `env:"CATALOG_SYNC_INTERVAL" envDefault:"0s"`

	TrustedProxies  []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	MaxRequestBytes int64         `env:"MAX_REQUEST_BYTES" envDefault:"1048576"`
	RateLimit       int           `env:"RATE_LIMIT_REQUESTS" envDefault:"1000"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnvFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that env parsing cannot
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf(ErrMsgJWTSecretMissing)
	}
	if len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf(ErrMsgJWTSecretTooShortFmt, MinJWTSecretLength)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf(ErrMsgInvalidPortFmt, c.Port)
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf(ErrMsgInvalidMaxConnsFmt, c.DBMaxConns)
	}
	if c.MaxRequestBytes < 1 {
		return fmt.Errorf(ErrMsgInvalidRequestLimitFmt, c.MaxRequestBytes)
	}
	if c.RateLimit < 1 || c.RateLimitWindow <= 0 {
		return fmt.Errorf(ErrMsgInvalidRateLimitFmt, c.RateLimit, c.RateLimitWindow)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf(ErrMsgInvalidTokenTTLFmt, c.TokenTTL)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the process runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDev || c.Environment == EnvDevelopment
}
