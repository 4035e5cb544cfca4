package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Reading    ReadingConfig    `yaml:"reading"`
	Generation GenerationConfig `yaml:"generation"`
	CardArt    CardArtConfig    `yaml:"card_art"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Timezone,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
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
	HealthCheck     time.Duration `yaml:"health_check"       env:"DATABASE_HEALTH_CHECK"       env-default:"1m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
}

// AuthConfig holds settings for validating access tokens issued by the
// hosted auth provider.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"tarot-auth"`
}

// ReadingConfig holds reading service limits.
type ReadingConfig struct {
	DefaultStyle   string `yaml:"default_style"    env:"READING_DEFAULT_STYLE"    env-default:"classic"`
	MaxQuestionLen int    `yaml:"max_question_len" env:"READING_MAX_QUESTION_LEN" env-default:"500"`
	MaxNoteLen     int    `yaml:"max_note_len"     env:"READING_MAX_NOTE_LEN"     env-default:"2000"`
	DefaultPage    int    `yaml:"default_page"     env:"READING_DEFAULT_PAGE"     env-default:"20"`
	MaxPage        int    `yaml:"max_page"         env:"READING_MAX_PAGE"         env-default:"100"`
}

// GenerationConfig holds settings for the interpretation text generator.
// An empty APIKey selects the offline stub generator.
type GenerationConfig struct {
	APIKey    string        `yaml:"api_key"    env:"GENERATION_API_KEY"`
	BaseURL   string        `yaml:"base_url"   env:"GENERATION_BASE_URL"`
	Model     string        `yaml:"model"      env:"GENERATION_MODEL"      env-default:"claude-haiku-4-5"`
	MaxTokens int64         `yaml:"max_tokens" env:"GENERATION_MAX_TOKENS" env-default:"1024"`
	Timeout   time.Duration `yaml:"timeout"    env:"GENERATION_TIMEOUT"    env-default:"30s"`
}

// Enabled reports whether a real generation backend is configured.
func (c GenerationConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// CardArtConfig controls how card image URLs are produced. When Bucket is
// set, images are served through presigned S3 URLs; otherwise CDNBaseURL
// is prefixed to the card's image reference.
type CardArtConfig struct {
	Bucket          string        `yaml:"bucket"            env:"CARD_ART_BUCKET"`
	Region          string        `yaml:"region"            env:"CARD_ART_REGION"            env-default:"auto"`
	Endpoint        string        `yaml:"endpoint"          env:"CARD_ART_ENDPOINT"`
	AccessKeyID     string        `yaml:"access_key_id"     env:"CARD_ART_ACCESS_KEY_ID"`
	SecretAccessKey string        `yaml:"secret_access_key" env:"CARD_ART_SECRET_ACCESS_KEY"`
	CDNBaseURL      string        `yaml:"cdn_base_url"      env:"CARD_ART_CDN_BASE_URL"      env-default:"/static/cards"`
	PresignTTL      time.Duration `yaml:"presign_ttl"       env:"CARD_ART_PRESIGN_TTL"       env-default:"1h"`
}

// UsesBucket reports whether card art is served from object storage.
func (c CardArtConfig) UsesBucket() bool {
	return c.Bucket != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig throttles reading creation per client.
type RateLimitConfig struct {
	ReadingsPerMinute int           `yaml:"readings_per_minute" env:"RATE_LIMIT_READINGS_PER_MINUTE" env-default:"10"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}
