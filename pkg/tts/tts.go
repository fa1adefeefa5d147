// Package tts is a REST client for the speech-synthesis upstream.
// The API takes text plus voice parameters and returns base64 MP3 audio.
package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the default synthesis endpoint.
	DefaultBaseURL = "https://texttospeech.googleapis.com/v1"

	// DefaultTimeout is the HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// MaxTextLength is the cap applied to input text before synthesis.
	MaxTextLength = 1000
)

// ISynthesizer is the interface for the synthesis upstream.
type ISynthesizer interface {
	// Synthesize converts text to MP3 audio bytes.
	Synthesize(ctx context.Context, text, languageCode string) ([]byte, error)
}

// Client implements ISynthesizer.
type Client struct {
	apiKey  string
	voice   string
	baseURL string
	client  *http.Client
}

// New creates a new synthesis client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:  cfg.APIKey,
		voice:   cfg.Voice,
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}, nil
}

// SetAPIURL overrides the base URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.baseURL = url
}

// Synthesize converts text to MP3 audio bytes.
// Input longer than MaxTextLength is truncated first.
func (c *Client) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	if len(text) > MaxTextLength {
		text = text[:MaxTextLength]
	}

	var req synthesizeRequest
	req.Input.Text = text
	req.Voice.LanguageCode = languageCode
	req.Voice.Name = c.voice
	req.AudioConfig.AudioEncoding = "MP3"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text:synthesize?key=%s", c.baseURL, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synthesis API error %d: %s", resp.StatusCode, string(respBody))
	}

	var result synthesizeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio content: %w", err)
	}

	return audio, nil
}
