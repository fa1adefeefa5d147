package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the admin API routes on the given group.
func (h *Handler) MapRoutes(g *gin.RouterGroup) {
	g.GET("/health", h.Health)
	g.POST("/register", h.Register)
	g.GET("/bots", h.List)
	g.PUT("/bots/:id", h.UpdatePrompt)
	g.DELETE("/bots/:id", h.Remove)
}
