package model

import "time"

// BotConfig is one registered tenant: its credentials, prompt, and display
// metadata. The ID is derived from Name at registration and never changes.
//
// ChannelSecret and AccessToken must never leave the process except through
// the internal lookup used to serve webhooks.
type BotConfig struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SkillType     string    `json:"skill_type"`
	AccessToken   string    `json:"access_token"`
	ChannelSecret string    `json:"channel_secret"`
	SystemPrompt  string    `json:"system_prompt"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Redacted returns a copy safe for list/read APIs: credentials stripped.
func (b BotConfig) Redacted() BotConfig {
	b.AccessToken = ""
	b.ChannelSecret = ""
	b.SystemPrompt = ""
	return b
}
