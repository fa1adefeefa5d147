package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"multi-tenant-bot-relay/internal/bot"
	"multi-tenant-bot-relay/internal/bot/repository"
	"multi-tenant-bot-relay/internal/model"
)

const defaultSkillType = "assistant"

// Register implements bot.UseCase.
func (uc *implUseCase) Register(ctx context.Context, input bot.RegisterInput) (bot.RegisterOutput, error) {
	if err := validateRegisterInput(input); err != nil {
		return bot.RegisterOutput{}, err
	}

	id := DeriveTenantID(input.Name)
	if !validTenantID(id) {
		return bot.RegisterOutput{}, fmt.Errorf("%w: name must contain at least one alphanumeric character", bot.ErrValidation)
	}

	skillType := strings.TrimSpace(input.SkillType)
	if skillType == "" {
		skillType = defaultSkillType
	}

	now := time.Now()
	cfg := model.BotConfig{
		ID:            id,
		Name:          input.Name,
		SkillType:     skillType,
		AccessToken:   input.AccessToken,
		ChannelSecret: input.ChannelSecret,
		SystemPrompt:  input.SystemPrompt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.repo.Create(ctx, cfg); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return bot.RegisterOutput{}, bot.ErrDuplicate
		}
		uc.l.Errorf(ctx, "bot registry: create %s: %v", id, err)
		return bot.RegisterOutput{}, err
	}

	uc.l.Infof(ctx, "bot registry: registered tenant %s (%s)", id, cfg.Name)

	return bot.RegisterOutput{
		TenantID:   id,
		WebhookURL: fmt.Sprintf("%s/webhook/%s", strings.TrimRight(uc.publicBaseURL, "/"), id),
	}, nil
}

// Get implements bot.UseCase. Returns the full config, credentials included.
func (uc *implUseCase) Get(ctx context.Context, tenantID string) (model.BotConfig, error) {
	cfg, err := uc.repo.Get(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.BotConfig{}, bot.ErrNotFound
		}
		uc.l.Errorf(ctx, "bot registry: get %s: %v", tenantID, err)
		return model.BotConfig{}, err
	}
	return cfg, nil
}

// List implements bot.UseCase. Credentials and prompt are redacted.
func (uc *implUseCase) List(ctx context.Context) ([]model.BotConfig, error) {
	cfgs, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "bot registry: list: %v", err)
		return nil, err
	}

	out := make([]model.BotConfig, 0, len(cfgs))
	for _, cfg := range cfgs {
		out = append(out, cfg.Redacted())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdatePrompt implements bot.UseCase.
func (uc *implUseCase) UpdatePrompt(ctx context.Context, tenantID, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("%w: system prompt is required", bot.ErrValidation)
	}

	cfg, err := uc.Get(ctx, tenantID)
	if err != nil {
		return err
	}

	cfg.SystemPrompt = prompt
	cfg.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cfg); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return bot.ErrNotFound
		}
		uc.l.Errorf(ctx, "bot registry: update %s: %v", tenantID, err)
		return err
	}
	return nil
}

// Remove implements bot.UseCase.
func (uc *implUseCase) Remove(ctx context.Context, tenantID string) error {
	if err := uc.repo.Delete(ctx, tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return bot.ErrNotFound
		}
		uc.l.Errorf(ctx, "bot registry: delete %s: %v", tenantID, err)
		return err
	}
	uc.l.Infof(ctx, "bot registry: removed tenant %s", tenantID)
	return nil
}

func validateRegisterInput(input bot.RegisterInput) error {
	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if input.AccessToken == "" {
		missing = append(missing, "access_token")
	}
	if input.ChannelSecret == "" {
		missing = append(missing, "channel_secret")
	}
	if strings.TrimSpace(input.SystemPrompt) == "" {
		missing = append(missing, "system_prompt")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", bot.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
