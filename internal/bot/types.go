package bot

// RegisterInput is the input for tenant registration.
type RegisterInput struct {
	Name          string
	SkillType     string
	AccessToken   string // outbound-authorization credential for the platform
	ChannelSecret string // inbound webhook signing secret
	SystemPrompt  string
}

// RegisterOutput is the result of a successful registration.
type RegisterOutput struct {
	TenantID   string
	WebhookURL string
}
