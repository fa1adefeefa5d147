package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// Per-tenant webhook: POST receives deliveries, GET serves the
	// platform's verification probe.
	srv.gin.POST("/webhook/:tenantID", srv.webhookHandler.HandleWebhook)
	srv.gin.GET("/webhook/:tenantID", srv.webhookHandler.HandleProbe)
	srv.l.Infof(ctx, "Webhook routes registered at /webhook/:tenantID")

	// Admin registry API.
	srv.adminHandler.MapRoutes(srv.gin.Group("/api"))
	srv.l.Infof(ctx, "Admin routes registered under /api")

	// Synthesized audio blobs.
	srv.gin.GET("/audio/:blobID", srv.audioHandler.Serve)
	srv.l.Infof(ctx, "Audio route registered at GET /audio/:blobID")

	return nil
}
