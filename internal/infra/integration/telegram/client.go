package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.telegram.org"

	// Bounded so a hung Bot API cannot stall a request indefinitely.
	defaultTimeout = 8 * time.Second
)

// APIError means the Bot API answered and rejected the call, as opposed to a
// transport failure where it never answered.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error: %d %s", e.StatusCode, e.Description)
}

type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient builds a Bot API client. baseURL is overridable for tests; pass
// "" for the real API.
func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) SendMessage(ctx context.Context, input SendMessageInput) error {
	payload := sendMessageRequest{
		ChatID:                input.ChatID,
		Text:                  input.Text,
		ParseMode:             input.ParseMode,
		DisableWebPagePreview: input.DisableWebPagePreview,
		MessageThreadID:       input.MessageThreadID,
		ReplyMarkup:           input.ReplyMarkup,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram: marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ Telegram: send failed: %v", err)
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var result apiResponse
	_ = json.Unmarshal(respBody, &result)

	if resp.StatusCode != http.StatusOK || !result.OK {
		log.Printf("❌ Telegram: API returned %d: %s", resp.StatusCode, string(respBody))
		return &APIError{StatusCode: resp.StatusCode, Description: result.Description}
	}

	log.Printf("✅ Telegram: message sent to chat %s", input.ChatID)
	return nil
}
