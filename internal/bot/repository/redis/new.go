package redis

import (
	goredis "github.com/redis/go-redis/v9"

	pkgLog "multi-tenant-bot-relay/pkg/log"
)

const botKeyPrefix = "bot:"

// Repository implements repository.BotRepository on redis.
// Bot configs are stored as JSON values under bot:<id>; SetNX gives the
// atomic create-if-absent the registry contract requires.
type Repository struct {
	client *goredis.Client
	l      pkgLog.Logger
}

// New creates a redis-backed bot repository.
func New(client *goredis.Client, l pkgLog.Logger) *Repository {
	return &Repository{
		client: client,
		l:      l,
	}
}

func (r *Repository) key(id string) string {
	return botKeyPrefix + id
}
