// Package config provides configuration management for ModGoviya.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Google   GoogleConfig   `mapstructure:"google"`
	Facebook FacebookConfig `mapstructure:"facebook"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// The pool is shared by Ent and any direct pgx usage.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// AuthConfig contains session token and credential policy settings.
type AuthConfig struct {
	// TokenSecret signs session tokens (HS256). Required; the server
	// refuses to start without it rather than running insecure.
	TokenSecret string `mapstructure:"token_secret"`

	// TokenIssuer is the "iss" claim on issued session tokens.
	TokenIssuer string `mapstructure:"token_issuer"`

	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration `mapstructure:"token_ttl"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `mapstructure:"bcrypt_cost"`

	// MaxLoginAttempts is the consecutive-failure threshold before lockout.
	MaxLoginAttempts int `mapstructure:"max_login_attempts"`

	// LockDuration is the lockout window applied at the threshold.
	LockDuration time.Duration `mapstructure:"lock_duration"`

	// ResetTokenTTL bounds password reset tokens.
	ResetTokenTTL time.Duration `mapstructure:"reset_token_ttl"`

	// VerificationTokenTTL bounds email verification tokens.
	VerificationTokenTTL time.Duration `mapstructure:"verification_token_ttl"`
}

// GoogleConfig contains Google OIDC settings.
type GoogleConfig struct {
	// Enabled toggles the Google login endpoint.
	Enabled bool `mapstructure:"enabled"`

	// ClientID is the registered OAuth client; the token "aud" must match.
	// Required when Enabled.
	ClientID string `mapstructure:"client_id"`

	// JWKSURL overrides the Google certs endpoint (tests point this at a
	// local server).
	JWKSURL string `mapstructure:"jwks_url"`

	// ClockTolerance absorbs clock skew on exp/iat checks.
	ClockTolerance time.Duration `mapstructure:"clock_tolerance"`

	// MaxTokenAge rejects tokens presented long after issuance.
	MaxTokenAge time.Duration `mapstructure:"max_token_age"`

	// RequireVerifiedEmail enforces the email_verified claim.
	RequireVerifiedEmail bool `mapstructure:"require_verified_email"`

	// AllowedDomains restricts hosted-domain/email domains. Empty means
	// unrestricted.
	AllowedDomains []string `mapstructure:"allowed_domains"`
}

// FacebookConfig contains Facebook access-token exchange settings.
type FacebookConfig struct {
	Enabled bool `mapstructure:"enabled"`

	AppID     string `mapstructure:"app_id"`
	AppSecret string `mapstructure:"app_secret"`

	// GraphURL overrides the Graph API base for tests.
	GraphURL string `mapstructure:"graph_url"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize int `mapstructure:"general_pool_size"`
	CryptoPoolSize  int `mapstructure:"crypto_pool_size"`
}

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix (DATABASE_URL, SERVER_PORT,
// AUTH_TOKEN_SECRET, GOOGLE_CLIENT_ID, ...).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/modgoviya")

	// Maps nested config: auth.token_secret → AUTH_TOKEN_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors. Missing secrets are a
// startup failure, never a silent insecure default.
func (c *Config) Validate() error {
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("auth.token_secret must not be empty")
	}
	if len(c.Auth.TokenSecret) < 32 {
		return fmt.Errorf("auth.token_secret must be at least 32 characters")
	}
	if c.Google.Enabled && c.Google.ClientID == "" {
		return fmt.Errorf("google.client_id is required when google login is enabled")
	}
	if c.Facebook.Enabled && (c.Facebook.AppID == "" || c.Facebook.AppSecret == "") {
		return fmt.Errorf("facebook.app_id and facebook.app_secret are required when facebook login is enabled")
	}
	if c.Auth.BcryptCost < 10 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 10 and 31 (got %d)", c.Auth.BcryptCost)
	}
	if c.Auth.MaxLoginAttempts < 1 {
		return fmt.Errorf("auth.max_login_attempts must be >= 1")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.cors_origins", []string{"*"})

	// Database
	// Viper only resolves env vars for keys it already knows about, so
	// every env-backed key needs a default even when that default is
	// empty; Validate() still rejects missing secrets at startup.
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "modgoviya")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "modgoviya")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Auth
	v.SetDefault("auth.token_secret", "")
	v.SetDefault("auth.token_issuer", "modgoviya")
	v.SetDefault("auth.token_ttl", "168h") // 7 days
	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("auth.max_login_attempts", 5)
	v.SetDefault("auth.lock_duration", "2h")
	v.SetDefault("auth.reset_token_ttl", "10m")
	v.SetDefault("auth.verification_token_ttl", "24h")

	// Google OIDC
	v.SetDefault("google.enabled", false)
	v.SetDefault("google.client_id", "")
	v.SetDefault("google.jwks_url", "https://www.googleapis.com/oauth2/v3/certs")
	v.SetDefault("google.clock_tolerance", "60s")
	v.SetDefault("google.max_token_age", "300s")
	v.SetDefault("google.require_verified_email", true)

	// Facebook
	v.SetDefault("facebook.enabled", false)
	v.SetDefault("facebook.app_id", "")
	v.SetDefault("facebook.app_secret", "")
	v.SetDefault("facebook.graph_url", "https://graph.facebook.com")

	// Worker pools
	v.SetDefault("worker.general_pool_size", 100)
	v.SetDefault("worker.crypto_pool_size", 8)
}
