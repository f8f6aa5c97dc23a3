package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
)

const defaultAzureAPIVersion = "2024-06-01"

// azureProvider reuses the OpenAI SDK pointed at an Azure OpenAI resource.
// The model name is the Azure deployment name, not an OpenAI model id.
type azureProvider struct {
	client     openai.Client
	deployment string
}

func newAzureProvider(creds Credentials) (*azureProvider, error) {
	if creds.APIKey == "" {
		return nil, fmt.Errorf("%w: AZURE_OPENAI_API_KEY", ErrMissingCredential)
	}
	if creds.Endpoint == "" {
		return nil, fmt.Errorf("%w: AZURE_OPENAI_ENDPOINT", ErrMissingCredential)
	}
	if creds.Model == "" {
		return nil, fmt.Errorf("%w: AZURE_OPENAI_DEPLOYMENT", ErrMissingCredential)
	}

	version := creds.APIVersion
	if version == "" {
		version = defaultAzureAPIVersion
	}

	return &azureProvider{
		client: openai.NewClient(
			azure.WithEndpoint(creds.Endpoint, version),
			azure.WithAPIKey(creds.APIKey),
		),
		deployment: creds.Model,
	}, nil
}

// Name returns the backend's identifier
func (p *azureProvider) Name() string {
	return string(AzureOpenAI)
}

// Send submits a message list to the Azure OpenAI deployment and returns the
// completion text
func (p *azureProvider) Send(ctx context.Context, messages []ChatMessage, opts CompletionOptions) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages:    toOpenAIMessages(messages),
		Model:       p.deployment,
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
		return "", fmt.Errorf("azure openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("azure openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
