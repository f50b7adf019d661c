package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxBodyBytes caps how much of an error response body is read back for
// the diagnostic message.
const maxBodyBytes = 4096

// payload is the JSON body posted to the webhook. The webhook contract
// is the pair of title and message; the remaining fields are optional
// Slack presentation overrides.
type payload struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Username  string `json:"username,omitempty"`
	IconEmoji string `json:"icon_emoji,omitempty"`
	Channel   string `json:"channel,omitempty"`
}

// Client posts quotations to a configured webhook.
type Client struct {
	config     Config
	httpClient HTTPClient
}

// NewClient creates a Client using a standard *http.Client with the
// configured timeout.
func NewClient(config Config) *Client {
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// NewClientWithHTTPClient creates a Client with an injected HTTPClient.
func NewClientWithHTTPClient(config Config, httpClient HTTPClient) *Client {
	return &Client{config: config, httpClient: httpClient}
}

// Send delivers one quotation with a single synchronous POST. Any
// non-2xx response is a *DeliveryError carrying the status code and
// response body; there is no retry.
func (c *Client) Send(ctx context.Context, title, message string) error {
	body, err := json.Marshal(payload{
		Title:     title,
		Message:   message,
		Username:  c.config.Options.Username,
		IconEmoji: c.config.Options.IconEmoji,
		Channel:   c.config.Options.Channel,
	})
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		return &DeliveryError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
