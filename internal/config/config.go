package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST          string        `env:"DB_HOST" envDefault:"localhost"`
	DbPORT          string        `env:"DB_PORT" envDefault:"5432"`
	DbUSER          string        `env:"DB_USER" envDefault:"postgres"`
	DbPASSWORD      string        `env:"DB_PASSWORD" envDefault:"password"`
	DbNAME          string        `env:"DB_NAME" envDefault:"institute"`
	DbSSLMODE       string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// DSN returns the lib/pq connection string.
func (d DB) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST, d.DbPORT, d.DbUSER, d.DbPASSWORD, d.DbNAME, d.DbSSLMODE,
	)
}

type MinIO struct {
	Endpoint   string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey  string `env:"MINIO_ACCESS_KEY" envDefault:"minioadmin"`
	SecretKey  string `env:"MINIO_SECRET_KEY" envDefault:"minioadmin"`
	BucketName string `env:"MINIO_BUCKET_NAME" envDefault:"media"`
	UseSSL     bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region     string `env:"MINIO_REGION" envDefault:"us-east-1"`
	// PublicURL is the base the returned image URLs are built on.
	// Empty means http(s)://Endpoint.
	PublicURL     string        `env:"MINIO_PUBLIC_URL"`
	MaxImageWidth int           `env:"MINIO_MAX_IMAGE_WIDTH" envDefault:"1920"`
	FetchTimeout  time.Duration `env:"MINIO_FETCH_TIMEOUT" envDefault:"15s"`
}

// BaseURL returns the URL prefix for objects in the bucket, without a trailing slash.
func (m MinIO) BaseURL() string {
	base := m.PublicURL
	if base == "" {
		scheme := "http"
		if m.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + m.Endpoint
	}
	return strings.TrimRight(base, "/") + "/" + m.BucketName
}

type Config struct {
	Env          string        `env:"APP_ENV" envDefault:"development"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	ServerPort   int           `env:"SERVER_PORT" envDefault:"8080"`
	APIPrefix    string        `env:"API_PREFIX" envDefault:"/api"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`

	DB    DB
	MinIO MinIO

	JWTSecretKey        string        `env:"JWT_SECRET_KEY"`
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"168h"`
	CookieName          string        `env:"AUTH_COOKIE_NAME" envDefault:"jwt"`
	CookieSecure        bool          `env:"AUTH_COOKIE_SECURE" envDefault:"false"`
	CORSAllowedOrigin   string        `env:"CORS_ALLOWED_ORIGIN" envDefault:"http://localhost:5173"`

	// MaxUploadSize bounds JSON request bodies, which carry base64 images.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"20971520"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// MinJWTSecretLength is the shortest HS256 key accepted.
const MinJWTSecretLength = 32

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

// SeedAdmin reports whether an admin account should be provisioned on startup.
func (c *Config) SeedAdmin() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env file not found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is not set")
	}
	if len(c.JWTSecretKey) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET_KEY must be at least %d bytes long, got %d", MinJWTSecretLength, len(c.JWTSecretKey))
	}
	if c.AccessTokenDuration <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_DURATION must be positive")
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}
	return nil
}
