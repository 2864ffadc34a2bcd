package config

import (
	"errors"
	"testing"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func restore() {
	loadDotenv = godotenv.Load
	readEnv = cleanenv.ReadEnv
}

func TestLoadDefaults(t *testing.T) {
	t.Cleanup(restore)
	loadDotenv = func(...string) error { return nil }
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("JWT_SECRET", "s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "http://localhost:8080", cfg.CORSOrigin)
	require.Equal(t, "uploads", cfg.Assets.Dir)
	require.Equal(t, AssetBackendLocal, cfg.Assets.Backend)
	require.Equal(t, AuditModeSync, cfg.AuditMode)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	require.Equal(t, 1, cfg.WorkerCount)
}

func TestLoadOverrides(t *testing.T) {
	t.Cleanup(restore)
	loadDotenv = func(...string) error { return nil }
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "5000")
	t.Setenv("AUDIT_MODE", "async")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":5000", cfg.Addr())
	require.Equal(t, AuditModeAsync, cfg.AuditMode)
	require.Equal(t, 4, cfg.WorkerCount)
	require.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
}

func TestLoadErrors(t *testing.T) {
	t.Cleanup(restore)

	loadDotenv = func(...string) error { return errors.New("parse") }
	_, err := Load()
	require.Error(t, err)

	loadDotenv = func(...string) error { return nil }
	readEnv = func(any) error { return errors.New("env") }
	_, err = Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{DatabaseURL: "d", JWTSecret: "s", AuditMode: AuditModeSync, WorkerCount: 1, TokenTTL: time.Hour}
		c.Assets.Backend = AssetBackendLocal
		return c
	}
	require.NoError(t, valid().Validate())

	c := valid()
	c.DatabaseURL = ""
	require.Error(t, c.Validate())

	c = valid()
	c.JWTSecret = ""
	require.Error(t, c.Validate())

	c = valid()
	c.Assets.Backend = AssetBackendS3
	require.Error(t, c.Validate())
	c.Assets.Bucket = "b"
	require.NoError(t, c.Validate())

	c = valid()
	c.Assets.Backend = "ftp"
	require.Error(t, c.Validate())

	c = valid()
	c.AuditMode = "later"
	require.Error(t, c.Validate())

	c = valid()
	c.WorkerCount = 0
	require.Error(t, c.Validate())

	c = valid()
	c.TokenTTL = 0
	require.Error(t, c.Validate())
}
