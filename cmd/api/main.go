package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"multi-tenant-bot-relay/config"
	"multi-tenant-bot-relay/internal/audio"
	adminDelivery "multi-tenant-bot-relay/internal/bot/delivery/http"
	botRedis "multi-tenant-bot-relay/internal/bot/repository/redis"
	botUC "multi-tenant-bot-relay/internal/bot/usecase"
	"multi-tenant-bot-relay/internal/chat"
	webhookDelivery "multi-tenant-bot-relay/internal/chat/delivery/webhook"
	chatUC "multi-tenant-bot-relay/internal/chat/usecase"
	"multi-tenant-bot-relay/internal/httpserver"
	"multi-tenant-bot-relay/internal/session"
	"multi-tenant-bot-relay/pkg/llm"
	"multi-tenant-bot-relay/pkg/log"
	"multi-tenant-bot-relay/pkg/messaging"
	"multi-tenant-bot-relay/pkg/tts"
)

// @title       Multi-Tenant Bot Relay API
// @description Webhook relay serving many messaging bots from one process, each with its own persona.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting multi-tenant bot relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Public base URL: %s", cfg.Chat.PublicBaseURL)

	// 3. Bot registry (Redis-backed)
	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatalf(ctx, "Redis not reachable at %s: %v", cfg.Redis.Addr, err)
	}
	defer redisClient.Close()

	botRepo := botRedis.New(redisClient, logger)
	registry := botUC.New(logger, botRepo, cfg.Chat.PublicBaseURL)

	// 4. Upstream clients
	llmClient, err := llm.New(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		BaseURL: cfg.LLM.BaseURL,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM client: %v", err)
	}

	synthesizer, err := tts.New(tts.Config{
		APIKey:  cfg.TTS.APIKey,
		Voice:   cfg.TTS.Voice,
		BaseURL: cfg.TTS.BaseURL,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize TTS client: %v", err)
	}

	messenger := messaging.NewClient()

	// 5. Conversation pipeline
	sessions := session.NewManager()
	blobs := audio.NewStore(0) // default TTL

	conversation := chatUC.New(logger, llmClient, synthesizer, messenger, sessions, blobs, chat.Config{
		PublicBaseURL:      cfg.Chat.PublicBaseURL,
		TranscribeLanguage: cfg.Chat.TranscribeLanguage,
		SpeechLanguage:     cfg.Chat.SpeechLanguage,
	})

	// 6. Delivery handlers
	webhookHandler := webhookDelivery.NewHandler(registry, conversation, cfg.Webhook.RateLimitPerMin, logger)
	adminHandler := adminDelivery.New(logger, registry, cfg.Admin.Key)
	audioHandler := audio.NewHandler(blobs, logger)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookHandler: webhookHandler,
		AdminHandler:   adminHandler,
		AudioHandler:   audioHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
