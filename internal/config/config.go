package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Listing  ListingConfig  `yaml:"listing"`
	Bulk     BulkConfig     `yaml:"bulk"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MutationsPerMinute limits bulk-update and bulk-update-sort calls per client IP.
	MutationsPerMinute int `yaml:"mutations_per_minute" env:"SERVER_MUTATIONS_PER_MINUTE" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ListingConfig holds list endpoint pagination settings.
type ListingConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"LISTING_DEFAULT_LIMIT" env-default:"20"`
	MaxLimit     int `yaml:"max_limit"     env:"LISTING_MAX_LIMIT"     env-default:"200"`
	// UnboundedMax caps a limit=-1 request.
	UnboundedMax int `yaml:"unbounded_max" env:"LISTING_UNBOUNDED_MAX" env-default:"1000"`
}

// BulkConfig holds bulk action settings.
type BulkConfig struct {
	MaxSelected int `yaml:"max_selected" env:"BULK_MAX_SELECTED" env-default:"100"`
}

// ConsoleConfig holds settings of the console client. It is loaded separately
// from Config so the console does not require database settings.
type ConsoleConfig struct {
	BaseURL     string        `yaml:"base_url"     env:"CONSOLE_BASE_URL"     env-default:"http://localhost:8080/api"`
	Timeout     time.Duration `yaml:"timeout"      env:"CONSOLE_TIMEOUT"      env-default:"15s"`
	MaxSelected int           `yaml:"max_selected" env:"CONSOLE_MAX_SELECTED" env-default:"100"`
}

// consoleFile is the YAML layout the console reads: the same file as the
// server, but only the console section.
type consoleFile struct {
	Console ConsoleConfig `yaml:"console"`
}
