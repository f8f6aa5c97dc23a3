package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultAnthropicEndpoint = "https://api.anthropic.com/v1/messages"
	defaultAnthropicModel    = "claude-3-5-sonnet-20241022"
	anthropicVersion         = "2023-06-01"
)

type anthropicProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// anthropicRequest represents an Anthropic messages API request
type anthropicRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	System      string        `json:"system,omitempty"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p,omitempty"`
	MaxTokens   int           `json:"max_tokens"`
}

// anthropicResponse represents an Anthropic messages API response
type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// anthropicError represents an error from the Anthropic API
type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func newAnthropicProvider(creds Credentials) (*anthropicProvider, error) {
	if creds.APIKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY", ErrMissingCredential)
	}

	model := creds.Model
	if model == "" {
		model = defaultAnthropicModel
	}

	endpoint := creds.Endpoint
	if endpoint == "" {
		endpoint = defaultAnthropicEndpoint
	}

	return &anthropicProvider{
		apiKey:   creds.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{},
	}, nil
}

// Name returns the backend's identifier
func (p *anthropicProvider) Name() string {
	return string(Anthropic)
}

// Send submits a message list to the Anthropic messages API and returns the
// completion text
func (p *anthropicProvider) Send(ctx context.Context, messages []ChatMessage, opts CompletionOptions) (string, error) {
	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	// The messages API carries the system prompt as a top-level field
	reqBody := anthropicRequest{
		Model:       model,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
		MaxTokens:   maxTokens,
	}
	for _, m := range messages {
		if m.Role == "system" {
			reqBody.System = m.Content
			continue
		}
		reqBody.Messages = append(reqBody.Messages, m)
	}

	reqData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.endpoint, bytes.NewBuffer(reqData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr anthropicError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("API error: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var msgResp anthropicResponse
	if err := json.Unmarshal(respBody, &msgResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	var text strings.Builder
	for _, block := range msgResp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", errors.New("anthropic returned no text content")
	}

	return text.String(), nil
}
