// Package config 載入服務啟動時的環境設定
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	AssetBackendLocal = "local"
	AssetBackendS3    = "s3"

	AuditModeSync  = "sync"
	AuditModeAsync = "async"
)

// Config holds every process-wide setting. It is read once in main and
// passed down explicitly; nothing else in the tree reads the environment.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET"`
	Port        string `env:"PORT" env-default:"8080"`
	CORSOrigin  string `env:"CORS_ORIGIN" env-default:"http://localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
	MaxUpload   string `env:"MAX_UPLOAD" env-default:"10M"`

	TokenTTL time.Duration `env:"TOKEN_TTL" env-default:"1h"`

	Assets struct {
		Backend   string `env:"ASSET_BACKEND" env-default:"local"`
		Dir       string `env:"UPLOAD_DIR" env-default:"uploads"`
		Bucket    string `env:"S3_BUCKET"`
		Region    string `env:"S3_REGION" env-default:"us-east-1"`
		Endpoint  string `env:"S3_ENDPOINT"`
		AccessKey string `env:"S3_ACCESS_KEY"`
		SecretKey string `env:"S3_SECRET_KEY"`
	}

	Redis struct {
		Addr     string        `env:"REDIS_ADDR"`
		Password string        `env:"REDIS_PASSWORD"`
		DB       int           `env:"REDIS_DB" env-default:"0"`
		TTL      time.Duration `env:"CACHE_TTL" env-default:"5m"`
	}

	AuditMode   string `env:"AUDIT_MODE" env-default:"sync"`
	WorkerCount int    `env:"WORKER_COUNT" env-default:"1"`
}

var (
	loadDotenv = godotenv.Load
	readEnv    = cleanenv.ReadEnv
)

// Load 讀取 .env (若存在) 後再解析環境變數並驗證必要欄位
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := readEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required keys and enum values.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("環境變數 DATABASE_URL 未設定")
	}
	if c.JWTSecret == "" {
		return errors.New("環境變數 JWT_SECRET 未設定")
	}
	switch c.Assets.Backend {
	case AssetBackendLocal:
	case AssetBackendS3:
		if c.Assets.Bucket == "" {
			return errors.New("環境變數 S3_BUCKET 未設定")
		}
	default:
		return fmt.Errorf("無效的 ASSET_BACKEND: %q", c.Assets.Backend)
	}
	switch c.AuditMode {
	case AuditModeSync, AuditModeAsync:
	default:
		return fmt.Errorf("無效的 AUDIT_MODE: %q", c.AuditMode)
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("無效的 WORKER_COUNT: %d", c.WorkerCount)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("無效的 TOKEN_TTL: %s", c.TokenTTL)
	}
	return nil
}

// Addr returns the listen address for Echo.
func (c *Config) Addr() string {
	return ":" + c.Port
}
