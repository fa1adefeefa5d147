package http

import (
	"multi-tenant-bot-relay/internal/bot"
	pkgLog "multi-tenant-bot-relay/pkg/log"
)

// Handler serves the admin API for the bot registry.
type Handler struct {
	uc       bot.UseCase
	l        pkgLog.Logger
	adminKey string
}

// New creates the admin delivery handler. adminKey guards all mutating and
// listing routes; an empty key disables the gate (local development only).
func New(l pkgLog.Logger, uc bot.UseCase, adminKey string) *Handler {
	return &Handler{
		uc:       uc,
		l:        l,
		adminKey: adminKey,
	}
}
