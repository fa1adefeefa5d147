package chat

import (
	"context"

	"multi-tenant-bot-relay/internal/model"
)

// UseCase is the per-event conversation pipeline. One method per event kind;
// the webhook delivery dispatches into it with per-event isolation.
type UseCase interface {
	// HandleTextMessage runs command dispatch and, for free-form text, a full
	// conversation turn: session update, completion call, reply delivery
	// (split if oversized), and the best-effort auto-speech push.
	HandleTextMessage(ctx context.Context, cfg model.BotConfig, userID, replyToken, text string) error

	// HandleAudioMessage downloads the voice attachment, transcribes it, runs
	// the transcript through the conversation turn, and replies with the
	// echoed transcript plus feedback. Failures notify the caller through the
	// push path with a generic retry-later message.
	HandleAudioMessage(ctx context.Context, cfg model.BotConfig, userID, replyToken, messageID string) error

	// HandleFollow greets a user who just added the bot.
	HandleFollow(ctx context.Context, cfg model.BotConfig, userID, replyToken string) error
}
