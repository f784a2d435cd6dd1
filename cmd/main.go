package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yoapunto/yoapunto-api/auth"
	"github.com/yoapunto/yoapunto-api/config"
	"github.com/yoapunto/yoapunto-api/db"
	"github.com/yoapunto/yoapunto-api/events"
	"github.com/yoapunto/yoapunto-api/handlers"
	"github.com/yoapunto/yoapunto-api/repositories"
	"github.com/yoapunto/yoapunto-api/routes"
	"github.com/yoapunto/yoapunto-api/services"
	"github.com/yoapunto/yoapunto-api/storage"
)

// @title YoApunto API
// @version 1.0
// @description Club, game and account membership API.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			slog.Error("failed to init R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	} else {
		slog.Info("R2 not configured, thumbnail uploads disabled")
	}

	hub := events.NewHub()
	go hub.Run()

	clubRepo := repositories.NewPostgresClubRepository(pool)
	gameRepo := repositories.NewPostgresGameRepository(pool)
	accountRepo := repositories.NewPostgresAccountRepository(pool)
	clubGameRepo := repositories.NewPostgresClubGameRepository(pool)

	tokens := auth.NewTokenManager(cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	clubService := services.NewClubService(clubRepo, hub)
	gameService := services.NewGameService(gameRepo, hub)
	accountService := services.NewAccountService(accountRepo, clubRepo, hub)
	clubGameService := services.NewClubGameService(clubGameRepo, clubRepo, gameRepo, hub)
	authService := services.NewAuthService(accountRepo, tokens)
	statsService := services.NewStatsService(clubRepo, gameRepo, accountRepo)

	var thumbnailService services.ThumbnailService
	if uploader != nil {
		thumbnailService = services.NewThumbnailService(uploader, clubService, gameService)
	}

	router := routes.Setup(routes.Deps{
		ClubHandler:     handlers.NewClubHandler(clubService, thumbnailService),
		GameHandler:     handlers.NewGameHandler(gameService, thumbnailService),
		AccountHandler:  handlers.NewAccountHandler(accountService),
		ClubGameHandler: handlers.NewClubGameHandler(clubGameService),
		AuthHandler:     handlers.NewAuthHandler(authService, tokens),
		StatsHandler:    handlers.NewStatsHandler(statsService),
		EventsHandler:   handlers.NewEventsHandler(hub),
		AuthService:     authService,
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", slog.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-shutdown
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", slog.Any("error", err))
		server.Close()
	}
	slog.Info("server stopped")
}
