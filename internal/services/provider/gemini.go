package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

type geminiProvider struct {
	client *genai.Client
	model  string
}

func newGeminiProvider(creds Credentials) (*geminiProvider, error) {
	if creds.APIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY", ErrMissingCredential)
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(creds.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := creds.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &geminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Name returns the backend's identifier
func (p *geminiProvider) Name() string {
	return string(GoogleGemini)
}

// Send submits a message list to the Gemini API and returns the completion
// text
func (p *geminiProvider) Send(ctx context.Context, messages []ChatMessage, opts CompletionOptions) (string, error) {
	name := p.model
	if opts.Model != "" {
		name = opts.Model
	}

	model := p.client.GenerativeModel(name)
	model.SetTemperature(float32(opts.Temperature))
	if opts.TopP > 0 {
		model.SetTopP(float32(opts.TopP))
	}
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}

	var prompt strings.Builder
	for _, m := range messages {
		if m.Role == "system" {
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
			continue
		}
		if prompt.Len() > 0 {
			prompt.WriteString("\n\n")
		}
		prompt.WriteString(m.Content)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := extractGeminiText(resp)
	if text == "" {
		return "", errors.New("gemini returned no text candidates")
	}

	return text, nil
}

func extractGeminiText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}
