// Package server owns the HTTP server: route registration, shared
// middleware, and timeouts.
package server

import (
	"fmt"
	"net/http"
	"time"

	"lunblog/internal/auth"
	"lunblog/internal/config"
	"lunblog/internal/database"
	"lunblog/internal/media"
	"lunblog/internal/posts"
	"lunblog/internal/resume"
	"lunblog/internal/storage"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	db      database.Service
	storage storage.Service

	authService   auth.Service
	authHandler   *auth.Handler
	postsHandler  *posts.Handler
	resumeHandler *resume.Handler
	mediaHandler  *media.Handler
}

// Config holds server configuration
type Config struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoadConfigFromEnv loads server configuration from environment variables
func LoadConfigFromEnv() *Config {
	return &Config{
		Port:         config.GetEnvInt("PORT", 8080),
		ReadTimeout:  config.GetEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: config.GetEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  config.GetEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
	}
}

// Dependencies carries the constructed services the server routes to.
// Storage may be nil when object storage is not configured; the media
// endpoints are then not mounted.
type Dependencies struct {
	DB          database.Service
	Storage     storage.Service
	AuthService auth.Service
	Auth        *auth.Handler
	Posts       *posts.Handler
	Resume      *resume.Handler
	Media       *media.Handler
}

// New creates and configures the HTTP server
func New(cfg *Config, deps Dependencies) *http.Server {
	appServer := &Server{
		db:            deps.DB,
		storage:       deps.Storage,
		authService:   deps.AuthService,
		authHandler:   deps.Auth,
		postsHandler:  deps.Posts,
		resumeHandler: deps.Resume,
		mediaHandler:  deps.Media,
	}

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           appServer.RegisterRoutes(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
