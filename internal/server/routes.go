package server

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lunblog/internal/auth"
	"lunblog/internal/config"
	"lunblog/internal/posts"
	"lunblog/internal/resume"
)

// RegisterRoutes builds the gin engine with shared middleware, the public
// surface, and the admin surface behind the auth gate.
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())

	origins := strings.Split(config.GetEnvOrDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000"), ",")
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type"},
		AllowCredentials: true, // session cookie
	}))

	r.GET("/health", s.healthHandler)

	api := r.Group("/api")

	s.authHandler.RegisterRoutes(api.Group("/auth"))

	posts.RegisterPublicRoutes(api, s.postsHandler)
	resume.RegisterPublicRoutes(api, s.resumeHandler)

	admin := api.Group("/admin")
	admin.Use(auth.RequireAuth(s.authService))

	posts.RegisterAdminRoutes(admin, s.postsHandler)
	resume.RegisterAdminRoutes(admin, s.resumeHandler)

	if s.mediaHandler != nil {
		s.mediaHandler.RegisterAdminRoutes(admin)
	}

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	response := make(map[string]any)

	response["database"] = s.db.Health()

	if s.storage != nil {
		storageHealth := make(map[string]string)
		if err := s.storage.Health(c.Request.Context()); err != nil {
			storageHealth["status"] = "down"
			storageHealth["error"] = err.Error()
		} else {
			storageHealth["status"] = "up"
		}
		response["storage"] = storageHealth
	}

	c.JSON(http.StatusOK, response)
}
