package main

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"marketplace-api/internal/assets"
	"marketplace-api/internal/cache"
	"marketplace-api/internal/config"
	"marketplace-api/internal/database"
	"marketplace-api/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn = database.RollbackAll
	newS3Backend = assets.NewS3Backend
	newWorkerPool = worker.NewPool
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = os.Exit
	osArgs = os.Args
}

func testConfig() *config.Config {
	cfg := &config.Config{
		DatabaseURL: "postgres://db",
		JWTSecret:   "secret",
		Port:        "9090",
		CORSOrigin:  "http://localhost:8080",
		LogLevel:    "error",
		MaxUpload:   "10M",
		TokenTTL:    time.Hour,
		AuditMode:   config.AuditModeSync,
		WorkerCount: 1,
	}
	cfg.Assets.Backend = config.AssetBackendLocal
	cfg.Assets.Dir = "uploads"
	cfg.Redis.Addr = "127.0.0.1:6379"
	cfg.Redis.DB = 2
	cfg.Redis.TTL = time.Minute
	return cfg
}

// stubDeps 把所有外部依賴換成假的實作
func stubDeps(t *testing.T, cfg *config.Config, called map[string]bool) {
	t.Helper()
	t.Cleanup(restoreGlobals)
	loadConfig = func() (*config.Config, error) { return cfg, nil }
	newPgxPool = func(context.Context, string) (database.DB, error) {
		called["pgx"] = true
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, cfg.Redis.Addr, addr)
		require.Equal(t, cfg.Redis.DB, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error {
		called["migrate"] = true
		require.Equal(t, cfg.DatabaseURL, url)
		return nil
	}
	rollbackAllFn = func(string) error { called["rollback"] = true; return nil }
	newS3Backend = func(_ context.Context, c assets.S3Config) (*assets.S3Backend, error) {
		called["s3"] = true
		require.Equal(t, cfg.Assets.Bucket, c.Bucket)
		return &assets.S3Backend{}, nil
	}
	newWorkerPool = func(n, _ int) worker.Pool {
		called["pool"] = true
		require.Equal(t, cfg.WorkerCount, n)
		return worker.Inline{}
	}
}

func TestRunSuccess(t *testing.T) {
	cfg := testConfig()
	called := map[string]bool{}
	stubDeps(t, cfg, called)

	var routes map[string]bool
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":9090", addr)
		require.NotNil(t, e.Validator)
		routes = map[string]bool{}
		for _, r := range e.Routes() {
			routes[r.Method+" "+r.Path] = true
		}
		return nil
	}

	require.NoError(t, run(nil))
	for _, k := range []string{"pgx", "redis", "migrate", "start", "dbClose", "redisClose"} {
		require.True(t, called[k], k)
	}
	require.False(t, called["s3"])
	require.False(t, called["pool"])
	require.False(t, called["rollback"])
	require.True(t, routes["GET /swagger/*"])
	require.True(t, routes["POST /api/v1/foods"])
}

func TestRunS3AndAsyncAudit(t *testing.T) {
	cfg := testConfig()
	cfg.Assets.Backend = config.AssetBackendS3
	cfg.Assets.Bucket = "marketplace"
	cfg.AuditMode = config.AuditModeAsync
	cfg.WorkerCount = 3
	called := map[string]bool{}
	stubDeps(t, cfg, called)
	startServer = func(*echo.Echo, string) error { return nil }

	require.NoError(t, run(nil))
	require.True(t, called["s3"])
	require.True(t, called["pool"])
}

func TestRunMigrateDown(t *testing.T) {
	cfg := testConfig()
	called := map[string]bool{}
	stubDeps(t, cfg, called)
	startServer = func(*echo.Echo, string) error { called["start"] = true; return nil }

	require.NoError(t, run([]string{"-migrate-down"}))
	require.True(t, called["rollback"])
	require.False(t, called["pgx"])
	require.False(t, called["start"])

	rollbackAllFn = func(string) error { return errors.New("rollback") }
	require.Error(t, run([]string{"-migrate-down"}))
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig()
	stubDeps(t, cfg, map[string]bool{})
	startServer = func(*echo.Echo, string) error { return nil }

	require.Error(t, run([]string{"-unknown"}))

	loadConfig = func() (*config.Config, error) { return nil, errors.New("config") }
	require.Error(t, run(nil))
	loadConfig = func() (*config.Config, error) { return cfg, nil }

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run(nil))
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }

	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run(nil))
	newRedisClient = func(string, string, int) (cache.Cache, error) { return cache.NopCache{}, nil }

	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run(nil))
	runMigrationsFn = func(string) error { return nil }

	cfg.Assets.Backend = config.AssetBackendS3
	newS3Backend = func(context.Context, assets.S3Config) (*assets.S3Backend, error) { return nil, errors.New("s3") }
	require.Error(t, run(nil))
	cfg.Assets.Backend = config.AssetBackendLocal

	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run(nil))
}

func TestMainFunction(t *testing.T) {
	cfg := testConfig()
	stubDeps(t, cfg, map[string]bool{})
	osArgs = []string{"service"}
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	startServer = func(*echo.Echo, string) error { return nil }
	main()
	require.Equal(t, 0, exitCode)
}

func TestMainExit(t *testing.T) {
	cfg := testConfig()
	stubDeps(t, cfg, map[string]bool{})
	osArgs = []string{"service"}
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}
