package usecase

import (
	"strings"

	"multi-tenant-bot-relay/internal/audio"
	"multi-tenant-bot-relay/internal/chat"
	"multi-tenant-bot-relay/internal/session"
	"multi-tenant-bot-relay/pkg/llm"
	pkgLog "multi-tenant-bot-relay/pkg/log"
	"multi-tenant-bot-relay/pkg/messaging"
	"multi-tenant-bot-relay/pkg/tts"
)

type implUseCase struct {
	l           pkgLog.Logger
	llm         llm.ILLM
	synthesizer tts.ISynthesizer
	messenger   *messaging.Client
	sessions    *session.Manager
	blobs       *audio.Store
	cfg         chat.Config
}

// New creates a new conversation UseCase instance.
func New(
	l pkgLog.Logger,
	llmClient llm.ILLM,
	synthesizer tts.ISynthesizer,
	messenger *messaging.Client,
	sessions *session.Manager,
	blobs *audio.Store,
	cfg chat.Config,
) *implUseCase {
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	return &implUseCase{
		l:           l,
		llm:         llmClient,
		synthesizer: synthesizer,
		messenger:   messenger,
		sessions:    sessions,
		blobs:       blobs,
		cfg:         cfg,
	}
}
