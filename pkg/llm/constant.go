package llm

import "time"

const (
	// DefaultModel is the completion model used for every tenant.
	DefaultModel = "gpt-3.5-turbo"

	// DefaultTranscribeModel is the speech-to-text model.
	DefaultTranscribeModel = "whisper-1"

	// DefaultBaseURL is the default API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the HTTP client timeout for upstream calls.
	DefaultTimeout = 30 * time.Second

	// DefaultTemperature is the fixed sampling temperature.
	DefaultTemperature = 0.7

	// DefaultMaxTokens caps the completion length.
	DefaultMaxTokens = 500
)

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
