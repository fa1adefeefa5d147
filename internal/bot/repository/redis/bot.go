package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"multi-tenant-bot-relay/internal/bot/repository"
	"multi-tenant-bot-relay/internal/model"
)

// Create implements repository.BotRepository.
func (r *Repository) Create(ctx context.Context, cfg model.BotConfig) error {
	val, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal bot config: %w", err)
	}

	// Bot configs are tiny and permanent, no TTL.
	ok, err := r.client.SetNX(ctx, r.key(cfg.ID), val, 0).Result()
	if err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return repository.ErrAlreadyExists
	}
	return nil
}

// Get implements repository.BotRepository.
func (r *Repository) Get(ctx context.Context, id string) (model.BotConfig, error) {
	val, err := r.client.Get(ctx, r.key(id)).Result()
	if err == goredis.Nil {
		return model.BotConfig{}, repository.ErrNotFound
	}
	if err != nil {
		return model.BotConfig{}, fmt.Errorf("redis get: %w", err)
	}

	var cfg model.BotConfig
	if err := json.Unmarshal([]byte(val), &cfg); err != nil {
		return model.BotConfig{}, fmt.Errorf("unmarshal bot config: %w", err)
	}
	return cfg, nil
}

// List implements repository.BotRepository.
func (r *Repository) List(ctx context.Context) ([]model.BotConfig, error) {
	var (
		cursor uint64
		out    []model.BotConfig
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, botKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan: %w", err)
		}
		for _, key := range keys {
			val, err := r.client.Get(ctx, key).Result()
			if err == goredis.Nil {
				continue // deleted between scan and get
			}
			if err != nil {
				return nil, fmt.Errorf("redis get %s: %w", key, err)
			}
			var cfg model.BotConfig
			if err := json.Unmarshal([]byte(val), &cfg); err != nil {
				r.l.Warnf(ctx, "skipping undecodable bot config at %s: %v", key, err)
				continue
			}
			out = append(out, cfg)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return out, nil
}

// Update implements repository.BotRepository.
func (r *Repository) Update(ctx context.Context, cfg model.BotConfig) error {
	val, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal bot config: %w", err)
	}

	// XX: only set if the key already exists.
	ok, err := r.client.SetXX(ctx, r.key(cfg.ID), val, 0).Result()
	if err != nil {
		return fmt.Errorf("redis setxx: %w", err)
	}
	if !ok {
		return repository.ErrNotFound
	}
	return nil
}

// Delete implements repository.BotRepository.
func (r *Repository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
