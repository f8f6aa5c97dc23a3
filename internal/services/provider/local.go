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
	defaultLocalEndpoint = "http://localhost:11434"
	defaultLocalModel    = "llama3.1"
)

// localProvider talks to an Ollama-compatible server on the local machine.
type localProvider struct {
	endpoint string
	model    string
	client   *http.Client
}

// localChatRequest represents an Ollama chat API request
type localChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  localOptions  `json:"options"`
}

// localOptions carries the sampling parameters for a local completion
type localOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// localChatResponse represents an Ollama chat API response
type localChatResponse struct {
	Message ChatMessage `json:"message"`
}

func newLocalProvider(creds Credentials) (*localProvider, error) {
	endpoint := creds.Endpoint
	if endpoint == "" {
		endpoint = defaultLocalEndpoint
	}

	model := creds.Model
	if model == "" {
		model = defaultLocalModel
	}

	return &localProvider{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		client:   &http.Client{},
	}, nil
}

// Name returns the backend's identifier
func (p *localProvider) Name() string {
	return string(Local)
}

// Send submits a message list to the local chat endpoint and returns the
// completion text
func (p *localProvider) Send(ctx context.Context, messages []ChatMessage, opts CompletionOptions) (string, error) {
	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}

	reqBody := localChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   false,
		Options: localOptions{
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
			NumPredict:  opts.MaxTokens,
		},
	}

	reqData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.endpoint+"/api/chat", bytes.NewBuffer(reqData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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
		return "", fmt.Errorf("local model returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp localChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if chatResp.Message.Content == "" {
		return "", errors.New("local model returned no content")
	}

	return chatResp.Message.Content, nil
}
