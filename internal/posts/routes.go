package posts

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes wires the unauthenticated read-only endpoints.
func RegisterPublicRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/posts", h.ListPublished)
	rg.GET("/posts/:slug", h.GetBySlug)
}

// RegisterAdminRoutes wires the CRUD endpoints. The caller is expected to
// mount these behind the auth gate.
func RegisterAdminRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/posts", h.ListAll)
	rg.POST("/posts", h.Create)
	rg.GET("/posts/:id", h.Get)
	rg.PUT("/posts/:id", h.Update)
	rg.DELETE("/posts/:id", h.Delete)
}
