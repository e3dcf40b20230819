package main

import (
	"context"
	"log"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/cache"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/auth"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	zlog := logger.NewZapLogger(cfg.App.Env)

	// infra setup
	pool, err := infra.NewPool(ctx, cfg.DB.DSN)
	if err != nil {
		zlog.Fatal("database not available", err)
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool, zlog); err != nil {
		zlog.Fatal("migrations failed", err)
	}

	// preview cache: Redis when configured, in-process map otherwise
	var previewCache cache.PreviewCache = cache.NewMemory()
	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			zlog.Warn("redis not available, falling back to in-memory preview cache")
		} else {
			previewCache = cache.NewRedis(rdb)
		}
	}

	renderer := infra.NewChromedpRenderer()
	resumesRepo := repo.NewResumesRepo(pool)
	exporter := usecase.NewExporter(renderer, resumesRepo, previewCache, zlog, cfg.App.BaseOrigin)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	app := fiber.New(fiber.Config{
		// composed HTML bodies for big resumes stay well under this
		BodyLimit: 4 * 1024 * 1024,
	})

	h := httpadapter.NewHandler(exporter, resumesRepo, zlog)
	h.Register(app, httpadapter.AuthMiddleware(jwtSvc))

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		zlog.Fatal("server failed", err)
	}
}
