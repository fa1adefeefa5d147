// Package messaging is the REST client for the messaging platform's
// reply/push endpoints and attachment content download.
//
// Credentials are per tenant, so every call takes the tenant's channel
// access token instead of the client owning one.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultAPIURL is the platform's messaging API base.
	DefaultAPIURL = "https://api.line.me/v2/bot"

	// DefaultContentURL is the platform's attachment content base.
	DefaultContentURL = "https://api-data.line.me/v2/bot"

	// DefaultTimeout is the HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// MaxMessageLength is the split threshold for outbound text,
	// kept under the platform's hard 5000-character ceiling.
	MaxMessageLength = 4500
)

// Client is the messaging platform client.
type Client struct {
	apiURL     string
	contentURL string
	httpClient *http.Client
}

// NewClient creates a new platform client.
func NewClient() *Client {
	return &Client{
		apiURL:     DefaultAPIURL,
		contentURL: DefaultContentURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides both API bases for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
	c.contentURL = url
}

// Reply answers an inbound event using its one-shot reply token.
func (c *Client) Reply(ctx context.Context, accessToken, replyToken string, messages []Message) error {
	body := replyRequest{ReplyToken: replyToken, Messages: messages}
	return c.post(ctx, accessToken, "/message/reply", body)
}

// Push sends messages to a user without a reply token.
func (c *Client) Push(ctx context.Context, accessToken, to string, messages []Message) error {
	body := pushRequest{To: to, Messages: messages}
	return c.post(ctx, accessToken, "/message/push", body)
}

// GetContent downloads the raw bytes of a message attachment.
func (c *Client) GetContent(ctx context.Context, accessToken, messageID string) ([]byte, error) {
	url := fmt.Sprintf("%s/message/%s/content", c.contentURL, messageID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("content API error %d: %s", resp.StatusCode, string(raw))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	return data, nil
}

func (c *Client) post(ctx context.Context, accessToken, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		var apiResp APIResponse
		if err := json.Unmarshal(raw, &apiResp); err == nil && apiResp.Message != "" {
			return fmt.Errorf("messaging API error %d: %s", resp.StatusCode, apiResp.Message)
		}
		return fmt.Errorf("messaging API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
