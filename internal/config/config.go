package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Cache     CacheConfig     `yaml:"cache"`
	Redis     RedisConfig     `yaml:"redis"`
	Dialog    DialogConfig    `yaml:"dialog"`
	Board     BoardConfig     `yaml:"board"`
	Storage   StorageConfig   `yaml:"storage"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Terminal-Id,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"45s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// StatementTimeout bounds every statement server-side, independent of
	// the dialog submit timeout.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"45s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"frontdesk"`
}

// AuthConfig holds the settings for validating backend-issued access tokens.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:""`
	Audience  string `yaml:"audience"   env:"AUTH_AUDIENCE"   env-default:"authenticated"`
	// Leeway tolerates clock skew between the auth store and this service.
	Leeway time.Duration `yaml:"leeway" env:"AUTH_LEEWAY" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	// File, when set, also writes logs to a rotated file.
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"100"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
	Compress   bool   `yaml:"compress"     env:"LOG_COMPRESS"     env-default:"true"`
}

// CacheConfig selects the board cache backend.
type CacheConfig struct {
	Driver string        `yaml:"driver" env:"CACHE_DRIVER" env-default:"lru"`
	Size   int           `yaml:"size"   env:"CACHE_SIZE"   env-default:"4096"`
	TTL    time.Duration `yaml:"ttl"    env:"CACHE_TTL"    env-default:"30s"`
}

// RedisConfig holds Redis connection settings, used when cache.driver is redis.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	Prefix   string `yaml:"prefix"   env:"REDIS_PREFIX"   env-default:"frontdesk:"`
}

// DialogConfig holds action dialog settings.
type DialogConfig struct {
	SubmitTimeout time.Duration `yaml:"submit_timeout" env:"DIALOG_SUBMIT_TIMEOUT" env-default:"30s"`
	IdleTTL       time.Duration `yaml:"idle_ttl"       env:"DIALOG_IDLE_TTL"       env-default:"15m"`
	MaxOpen       int           `yaml:"max_open"       env:"DIALOG_MAX_OPEN"       env-default:"1024"`
}

// BoardConfig holds room board settings.
type BoardConfig struct {
	PendingTTL        time.Duration `yaml:"pending_ttl"        env:"BOARD_PENDING_TTL"        env-default:"2m"`
	ReservationWindow time.Duration `yaml:"reservation_window" env:"BOARD_RESERVATION_WINDOW" env-default:"336h"`
}

// StorageConfig holds the object storage endpoint used for hotel logos.
type StorageConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"STORAGE_BASE_URL"`
	ServiceKey string        `yaml:"service_key" env:"STORAGE_SERVICE_KEY"`
	Bucket     string        `yaml:"bucket"      env:"STORAGE_BUCKET"      env-default:"hotel-logos"`
	Timeout    time.Duration `yaml:"timeout"     env:"STORAGE_TIMEOUT"     env-default:"20s"`
	MaxLogoMB  int           `yaml:"max_logo_mb" env:"STORAGE_MAX_LOGO_MB" env-default:"2"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATELIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATELIMIT_PER_MINUTE"       env-default:"300"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// UsesRedis reports whether the board cache is shared through Redis.
func (c CacheConfig) UsesRedis() bool {
	return strings.EqualFold(c.Driver, "redis")
}

// Enabled reports whether logo uploads are configured.
func (c StorageConfig) Enabled() bool {
	return c.BaseURL != "" && c.ServiceKey != ""
}

// MaxLogoBytes is the largest accepted logo upload.
func (c StorageConfig) MaxLogoBytes() int64 {
	return int64(c.MaxLogoMB) << 20
}
