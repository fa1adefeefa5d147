package webhook

import (
	"multi-tenant-bot-relay/internal/bot"
	"multi-tenant-bot-relay/internal/chat"
	pkgLog "multi-tenant-bot-relay/pkg/log"
)

// Handler serves the per-tenant webhook endpoints.
type Handler struct {
	botUC   bot.UseCase
	chatUC  chat.UseCase
	limiter *rateLimiter
	l       pkgLog.Logger
}

// NewHandler creates the webhook delivery handler. rateLimitPerMin caps
// deliveries per tenant; zero disables rate limiting.
func NewHandler(botUC bot.UseCase, chatUC chat.UseCase, rateLimitPerMin int, l pkgLog.Logger) *Handler {
	var limiter *rateLimiter
	if rateLimitPerMin > 0 {
		limiter = newRateLimiter(rateLimitPerMin)
	}
	return &Handler{
		botUC:   botUC,
		chatUC:  chatUC,
		limiter: limiter,
		l:       l,
	}
}
