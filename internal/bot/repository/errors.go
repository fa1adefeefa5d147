package repository

import "errors"

// Storage-level errors.
var (
	ErrNotFound      = errors.New("bot config not found")
	ErrAlreadyExists = errors.New("bot config already exists")
)
