// Package provider wraps the AI completion backends used for segment generation
// behind a single capability interface and a caching registry.
package provider

import (
	"context"
	"os"
)

// ID identifies a supported completion backend.
type ID string

const (
	Local        ID = "local"
	OpenAI       ID = "openai"
	Anthropic    ID = "anthropic"
	AzureOpenAI  ID = "azure-openai"
	GoogleGemini ID = "google-gemini"
)

// IsLocal reports whether the backend is a locally-hosted model. Local models
// follow exact-schema instructions less reliably, so prompts get an extra
// structural reminder for them.
func (id ID) IsLocal() bool {
	return id == Local
}

// ChatMessage represents a message in a completion conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionOptions contains the parameters for a completion request
type CompletionOptions struct {
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Provider defines the capability required from any completion backend
type Provider interface {
	// Name returns the backend's identifier
	Name() string

	// Send submits a message list and returns the completion text
	Send(ctx context.Context, messages []ChatMessage, opts CompletionOptions) (string, error)
}

// Credentials carries the per-backend connection data
type Credentials struct {
	APIKey     string
	Endpoint   string // Azure resource endpoint or local host URL
	APIVersion string // Azure API version
	Model      string
}

// CredentialsFromEnv assembles credentials for the given backend from
// environment variables.
func CredentialsFromEnv(id ID) Credentials {
	switch id {
	case OpenAI:
		return Credentials{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  os.Getenv("OPENAI_MODEL"),
		}
	case Anthropic:
		return Credentials{
			APIKey: os.Getenv("ANTHROPIC_API_KEY"),
			Model:  os.Getenv("ANTHROPIC_MODEL"),
		}
	case AzureOpenAI:
		return Credentials{
			APIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
			Endpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
			APIVersion: os.Getenv("AZURE_OPENAI_API_VERSION"),
			Model:      os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
		}
	case GoogleGemini:
		return Credentials{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  os.Getenv("GEMINI_MODEL"),
		}
	case Local:
		return Credentials{
			Endpoint: os.Getenv("OLLAMA_HOST"),
			Model:    os.Getenv("OLLAMA_MODEL"),
		}
	}
	return Credentials{}
}
