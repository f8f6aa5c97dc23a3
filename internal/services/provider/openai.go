package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "gpt-4o"

type openAIProvider struct {
	client openai.Client
	model  string
}

func newOpenAIProvider(creds Credentials) (*openAIProvider, error) {
	if creds.APIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY", ErrMissingCredential)
	}

	model := creds.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &openAIProvider{
		client: openai.NewClient(option.WithAPIKey(creds.APIKey)),
		model:  model,
	}, nil
}

// Name returns the backend's identifier
func (p *openAIProvider) Name() string {
	return string(OpenAI)
}

// Send submits a message list to the chat completions API and returns the
// completion text
func (p *openAIProvider) Send(ctx context.Context, messages []ChatMessage, opts CompletionOptions) (string, error) {
	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}

	params := openai.ChatCompletionNewParams{
		Messages:    toOpenAIMessages(messages),
		Model:       model,
		Temperature: openai.Float(opts.Temperature),
	}
	if opts.TopP > 0 {
		params.TopP = openai.Float(opts.TopP)
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []ChatMessage) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, openai.SystemMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
