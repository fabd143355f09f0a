package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"lunblog/internal/auth"
	"lunblog/internal/config"
	"lunblog/internal/database"
	"lunblog/internal/logger"
	"lunblog/internal/media"
	"lunblog/internal/posts"
	"lunblog/internal/resume"
	"lunblog/internal/server"
	"lunblog/internal/session"
	"lunblog/internal/storage"
)

func main() {
	logger.SetDefault(logger.New())

	cfg := server.LoadConfigFromEnv()
	dsn := database.DSNFromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.RunMigrations(ctx, dsn); err != nil {
		slog.Error("Failed to run migrations", "error", err.Error())
		os.Exit(1)
	}
	slog.Info("Migrations applied")

	db, err := database.New(ctx, dsn)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Connected to database")

	// Object storage is optional: without credentials the media endpoints
	// simply are not mounted.
	var storageService storage.Service
	var mediaHandler *media.Handler
	if os.Getenv("S3_BUCKET_NAME") != "" {
		if err := config.ValidateEnv([]string{"S3_ACCESS_KEY", "S3_SECRET_KEY"}); err != nil {
			slog.Error("Invalid storage configuration", "error", err.Error())
			os.Exit(1)
		}
		storageService, err = storage.New(ctx)
		if err != nil {
			slog.Error("Failed to initialize storage", "error", err.Error())
			os.Exit(1)
		}
		mediaHandler = media.NewHandler(media.NewService(storageService))
		slog.Info("Object storage initialized")
	} else {
		slog.Info("Object storage not configured, media endpoints disabled")
	}

	sessionStore := session.NewPostgresStore(db)
	authService := auth.NewService(auth.NewUserRepository(db), sessionStore)

	postsHandler := posts.NewHandler(posts.NewService(posts.NewRepository(db)))
	resumeHandler := resume.NewHandler(resume.NewRepository(db))

	srv := server.New(cfg, server.Dependencies{
		DB:          db,
		Storage:     storageService,
		AuthService: authService,
		Auth:        auth.NewHandler(authService),
		Posts:       postsHandler,
		Resume:      resumeHandler,
		Media:       mediaHandler,
	})

	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Failed to start server", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
