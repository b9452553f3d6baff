package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/auth"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/mailer"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("config: auth.jwt_secret (AUTH_JWT_SECRET) is required")
	}

	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer zlog.Sync()

	ctx := context.Background()

	pool, err := infra.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		zlog.Fatal("database not available", zap.Error(err))
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool, zlog); err != nil {
		zlog.Fatal("migrations failed", zap.Error(err))
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.AI.APIKey),
		googleai.WithDefaultModel(cfg.AI.Model),
	)
	if err != nil {
		zlog.Fatal("generative model client failed", zap.Error(err))
	}
	aiClient := ai.New(llm,
		ai.WithDefaultModel(cfg.AI.Model),
		ai.WithRetries(cfg.AI.Retries),
		ai.WithBackoff(cfg.AI.InitialDelay, cfg.AI.MaxDelay),
		ai.WithBreaker(ai.NewBreaker(cfg.AI.BreakerWindow, nil, nil)),
		ai.WithLogger(zlog.Named("ai")),
	)

	var mail httpadapter.Mailer
	if cfg.Mail.From != "" {
		m, merr := mailer.New(ctx, cfg.Mail.Region, cfg.Mail.From)
		if merr != nil {
			zlog.Warn("email delivery disabled", zap.Error(merr))
		} else {
			mail = m
		}
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	h := httpadapter.NewHandler(
		repo.NewUsersRepo(pool),
		repo.NewResumesRepo(pool),
		tokens,
		aiClient,
		mail,
		zlog.Named("http"),
	)

	app := fiber.New(fiber.Config{AppName: "resume-builder"})
	httpadapter.RegisterRoutes(app, h, httpadapter.NewAuthMiddleware(tokens))

	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("port", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	_ = app.Shutdown()
}
