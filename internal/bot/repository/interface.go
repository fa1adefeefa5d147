package repository

import (
	"context"

	"multi-tenant-bot-relay/internal/model"
)

// BotRepository is the persistence interface for bot configs.
// The registry only needs atomic create-if-absent and consistent reads;
// the backing store is an implementation detail.
type BotRepository interface {
	// Create stores a new bot. Returns ErrAlreadyExists if the id is taken.
	Create(ctx context.Context, cfg model.BotConfig) error

	// Get returns the bot by id. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (model.BotConfig, error)

	// List returns all stored bots.
	List(ctx context.Context) ([]model.BotConfig, error)

	// Update replaces an existing bot. Returns ErrNotFound if absent.
	Update(ctx context.Context, cfg model.BotConfig) error

	// Delete removes the bot by id. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}
