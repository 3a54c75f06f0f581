package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Platform PlatformConfig `yaml:"platform"`
	Events   EventsConfig   `yaml:"events"`
	Chaos    ChaosConfig    `yaml:"chaos"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	CORS     CORSConfig     `yaml:"cors"`
	Limits   LimitsConfig   `yaml:"limits"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
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
}

// AuthConfig holds token settings for team and staff callers.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"marketstage"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"72h"`
}

// PlatformConfig holds the global platform mode gate.
// In "judging" mode write operations are rejected at the transport layer;
// the core services stay mode-agnostic.
type PlatformConfig struct {
	Mode string `yaml:"mode" env:"PLATFORM_MODE" env-default:"development"`
}

// EventsConfig bounds event log queries.
type EventsConfig struct {
	DefaultQueryLimit int `yaml:"default_query_limit" env:"EVENTS_DEFAULT_QUERY_LIMIT" env-default:"50"`
	MaxQueryLimit     int `yaml:"max_query_limit"     env:"EVENTS_MAX_QUERY_LIMIT"     env-default:"200"`
}

// ChaosConfig bounds chaos injection operations.
type ChaosConfig struct {
	// Stagger is the pause between creations in a delayed batch.
	Stagger      time.Duration `yaml:"stagger"        env:"CHAOS_STAGGER"        env-default:"150ms"`
	MaxBatchSize int           `yaml:"max_batch_size" env:"CHAOS_MAX_BATCH_SIZE" env-default:"20"`
	MaxDelay     time.Duration `yaml:"max_delay"      env:"CHAOS_MAX_DELAY"      env-default:"10m"`
}

// WebhookConfig holds the fire-and-forget notification sink settings.
// An empty URL disables delivery.
type WebhookConfig struct {
	URL     string        `yaml:"url"     env:"WEBHOOK_URL"`
	Timeout time.Duration `yaml:"timeout" env:"WEBHOOK_TIMEOUT" env-default:"5s"`
}

// CORSConfig holds Cross-Origin Resource Sharing settings for the judging
// dashboard and team frontends.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LimitsConfig holds per-caller request rate limits.
type LimitsConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"LIMITS_REQUESTS_PER_MINUTE" env-default:"600"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"LIMITS_CLEANUP_INTERVAL"    env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Platform modes.
const (
	ModeDevelopment = "development"
	ModeJudging     = "judging"
)

// IsJudging reports whether the platform runs in judging mode.
func (c PlatformConfig) IsJudging() bool {
	return c.Mode == ModeJudging
}
