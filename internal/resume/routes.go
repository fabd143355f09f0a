package resume

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes wires the unauthenticated resume listing.
func RegisterPublicRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/resume", h.ListPublic)
}

// RegisterAdminRoutes wires the CRUD endpoints. The caller is expected to
// mount these behind the auth gate.
func RegisterAdminRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/resume", h.List)
	rg.POST("/resume", h.Create)
	rg.GET("/resume/:id", h.Get)
	rg.PUT("/resume/:id", h.Update)
	rg.DELETE("/resume/:id", h.Delete)
}
