package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	audioDelivery "multi-tenant-bot-relay/internal/audio"
	adminDelivery "multi-tenant-bot-relay/internal/bot/delivery/http"
	webhookDelivery "multi-tenant-bot-relay/internal/chat/delivery/webhook"
	"multi-tenant-bot-relay/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Webhook delivery
	webhookHandler *webhookDelivery.Handler

	// Admin registry API
	adminHandler *adminDelivery.Handler

	// Synthesized audio
	audioHandler *audioDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	WebhookHandler *webhookDelivery.Handler
	AdminHandler   *adminDelivery.Handler
	AudioHandler   *audioDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		webhookHandler: cfg.WebhookHandler,
		adminHandler:   cfg.AdminHandler,
		audioHandler:   cfg.AudioHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.webhookHandler == nil {
		return errors.New("webhook handler is required")
	}
	if srv.adminHandler == nil {
		return errors.New("admin handler is required")
	}
	if srv.audioHandler == nil {
		return errors.New("audio handler is required")
	}
	return nil
}
