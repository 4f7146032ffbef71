package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Glossary GlossaryConfig `yaml:"glossary"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimitPerMinute caps requests per client IP; 0 disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds the admin credential pair that guards mutating
// endpoints. Password may be either plaintext (compared constant-time)
// or a bcrypt hash ($2a$/$2b$ prefix).
type AuthConfig struct {
	AdminUsername string `yaml:"admin_username" env:"ADMIN_USERNAME" env-required:"true"`
	AdminPassword string `yaml:"admin_password" env:"ADMIN_PASSWORD" env-required:"true"`
}

// GlossaryConfig holds glossary service settings.
type GlossaryConfig struct {
	DefaultPerPage   int           `yaml:"default_per_page"   env:"GLOSSARY_DEFAULT_PER_PAGE"   env-default:"20"`
	MaxPerPage       int           `yaml:"max_per_page"       env:"GLOSSARY_MAX_PER_PAGE"       env-default:"100"`
	CategoryCacheTTL time.Duration `yaml:"category_cache_ttl" env:"GLOSSARY_CATEGORY_CACHE_TTL" env-default:"5m"`
	MaxIngestRecords int           `yaml:"max_ingest_records" env:"GLOSSARY_MAX_INGEST_RECORDS" env-default:"5000"`
	SuggestLimit     int           `yaml:"suggest_limit"      env:"GLOSSARY_SUGGEST_LIMIT"      env-default:"20"`
	CapacityBytes    int64         `yaml:"capacity_bytes"     env:"GLOSSARY_CAPACITY_BYTES"     env-default:"536870912"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
