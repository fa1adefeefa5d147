package usecase

import (
	"multi-tenant-bot-relay/internal/bot/repository"
	pkgLog "multi-tenant-bot-relay/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.BotRepository
	publicBaseURL string
}

// New creates a new bot registry UseCase instance.
func New(l pkgLog.Logger, repo repository.BotRepository, publicBaseURL string) *implUseCase {
	return &implUseCase{
		l:             l,
		repo:          repo,
		publicBaseURL: publicBaseURL,
	}
}
