package provider

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownProvider indicates a provider id outside the supported set
	ErrUnknownProvider = errors.New("unknown provider")
	// ErrMissingCredential indicates a backend is missing a required credential
	ErrMissingCredential = errors.New("missing required credential")
)

// Registry caches one constructed client per provider id. Its lifetime is
// owned by the caller, which passes it into whatever composes a generation.
type Registry struct {
	mu      sync.RWMutex
	clients map[ID]Provider
}

// NewRegistry creates an empty provider registry
func NewRegistry() *Registry {
	return &Registry{clients: make(map[ID]Provider)}
}

// Register seeds the cache with a ready-made backend. Used to inject
// preconfigured or mock providers.
func (r *Registry) Register(id ID, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[id] = p
}

// Resolve returns the cached client for id, constructing it on first use.
// Concurrent first resolutions of the same id may build duplicate clients;
// only one survives in the cache.
func (r *Registry) Resolve(id ID, creds Credentials) (Provider, error) {
	r.mu.RLock()
	p, ok := r.clients[id]
	r.mu.RUnlock()
	if ok {
		return p, nil
	}

	built, err := build(id, creds)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.clients[id]; ok {
		return existing, nil
	}
	r.clients[id] = built
	return built, nil
}

func build(id ID, creds Credentials) (Provider, error) {
	switch id {
	case OpenAI:
		return newOpenAIProvider(creds)
	case AzureOpenAI:
		return newAzureProvider(creds)
	case Anthropic:
		return newAnthropicProvider(creds)
	case GoogleGemini:
		return newGeminiProvider(creds)
	case Local:
		return newLocalProvider(creds)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}
}
