package tts

// Config configures the Client.
type Config struct {
	APIKey  string
	BaseURL string
	Voice   string
}

// synthesizeRequest is the synthesis request body.
type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name,omitempty"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding"`
	} `json:"audioConfig"`
}

// synthesizeResponse is the synthesis response body.
type synthesizeResponse struct {
	AudioContent string `json:"audioContent"` // base64-encoded audio
}
