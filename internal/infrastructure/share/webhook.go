// Package share provides delivery channels for exported eco-check results.
package share

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookSender posts exported eco-checks to a configured HTTP endpoint.
type WebhookSender struct {
	httpClient *http.Client
	url        string
}

// NewWebhookSender creates a sender for the given webhook URL
func NewWebhookSender(url string, timeout time.Duration) *WebhookSender {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &WebhookSender{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

type webhookPayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Send posts the share payload. Any non-2xx response counts as a failed
// delivery so the exporter can fall through to the next channel.
func (s *WebhookSender) Send(ctx context.Context, title, text string) error {
	body, err := json.Marshal(webhookPayload{Title: title, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode share payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("share webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("share webhook returned status %d", resp.StatusCode)
	}
	return nil
}
