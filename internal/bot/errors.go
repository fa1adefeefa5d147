package bot

import "errors"

// Domain-specific errors for the bot registry.
var (
	ErrNotFound   = errors.New("bot not found")
	ErrDuplicate  = errors.New("a bot with this name already exists")
	ErrValidation = errors.New("missing or invalid registration fields")
)
