package bot

import (
	"context"

	"multi-tenant-bot-relay/internal/model"
)

// UseCase defines the business logic interface for the bot registry.
type UseCase interface {
	// Register validates the input, derives the tenant id from the display
	// name, and creates the bot. Returns ErrDuplicate on id collision and
	// ErrValidation on missing fields.
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)

	// Get returns the full config including credentials. Internal use only:
	// this is the lookup the webhook path relies on.
	Get(ctx context.Context, tenantID string) (model.BotConfig, error)

	// List returns all bots with credentials and prompt redacted.
	List(ctx context.Context) ([]model.BotConfig, error)

	// UpdatePrompt replaces the tenant's system prompt.
	UpdatePrompt(ctx context.Context, tenantID, prompt string) error

	// Remove deletes the tenant.
	Remove(ctx context.Context, tenantID string) error
}
