// File: cmd/service/main.go
// @title        Marketplace API
// @version      1.0
// @description  餐點與租借品市集的後端 API 文件
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"marketplace-api/internal/api"
	"marketplace-api/internal/assets"
	"marketplace-api/internal/cache"
	"marketplace-api/internal/config"
	"marketplace-api/internal/database"
	"marketplace-api/internal/logger"
	"marketplace-api/internal/router"
	"marketplace-api/internal/service"
	"marketplace-api/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "marketplace-api/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// auditQueueSize 為非同步稽核的佇列長度
const auditQueueSize = 64

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	newS3Backend    = assets.NewS3Backend
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
	osArgs          = os.Args
)

func run(args []string) error {
	fs := flag.NewFlagSet("service", flag.ContinueOnError)
	migrateDown := fs.Bool("migrate-down", false, "回滾所有 migration 後結束")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	logger.InitLogger(os.Stderr, logger.ParseLevel(cfg.LogLevel))

	if *migrateDown {
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("RollbackAll 失敗: %w", err)
		}
		logger.Info("所有 migration 已回滾")
		return nil
	}

	ctx := context.Background()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR 未設定，列表快取停用")
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	backend, err := assetBackend(ctx, cfg)
	if err != nil {
		return err
	}
	files := assets.NewStore(backend)

	var pool worker.Pool
	if cfg.AuditMode == config.AuditModeAsync {
		pool = newWorkerPool(cfg.WorkerCount, auditQueueSize)
		defer pool.Stop()
	}

	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	auditor := service.NewAuditor(db, pool)
	catalog := service.Catalog{
		DB:       db,
		Assets:   files,
		Audit:    auditor,
		Cache:    rdb,
		CacheTTL: cfg.Redis.TTL,
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.LogLevel == "debug"
	e.Validator = api.NewValidator()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{cfg.CORSOrigin},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit(cfg.MaxUpload))

	router.Setup(e, router.Deps{
		DB:      db,
		Cache:   rdb,
		Tokens:  tokens,
		Auth:    service.NewAuthService(db, tokens),
		Foods:   service.NewFoodService(catalog),
		Rentals: service.NewRentalService(catalog),
		Audit:   auditor,
		Files:   files,
	})

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Infof("listening on %s (assets=%s, audit=%s)", cfg.Addr(), cfg.Assets.Backend, cfg.AuditMode)
	return startServer(e, cfg.Addr())
}

func assetBackend(ctx context.Context, cfg *config.Config) (assets.Backend, error) {
	if cfg.Assets.Backend != config.AssetBackendS3 {
		return assets.NewLocalBackend(cfg.Assets.Dir), nil
	}
	b, err := newS3Backend(ctx, assets.S3Config{
		Bucket:    cfg.Assets.Bucket,
		Region:    cfg.Assets.Region,
		Endpoint:  cfg.Assets.Endpoint,
		AccessKey: cfg.Assets.AccessKey,
		SecretKey: cfg.Assets.SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("S3 初始化失敗: %w", err)
	}
	return b, nil
}

func main() {
	if err := run(osArgs[1:]); err != nil {
		logger.Error(err)
		exitFunc(1)
	}
}
