package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicProviderSend(t *testing.T) {
	t.Run("system message hoisted and text blocks joined", func(t *testing.T) {
		var gotReq anthropicRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.Header.Get("x-api-key"))
			assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			w.Write([]byte(`{"content":[
				{"type":"text","text":"["},
				{"type":"tool_use","text":"ignored"},
				{"type":"text","text":"]"}
			]}`))
		}))
		defer server.Close()

		p, err := newAnthropicProvider(Credentials{APIKey: "secret", Endpoint: server.URL})
		require.NoError(t, err)

		messages := []ChatMessage{
			{Role: "system", Content: "you are a clip picker"},
			{Role: "user", Content: "pick clips"},
		}
		got, err := p.Send(context.Background(), messages, CompletionOptions{MaxTokens: 100})
		require.NoError(t, err)
		assert.Equal(t, "[]", got)

		assert.Equal(t, "you are a clip picker", gotReq.System)
		require.Len(t, gotReq.Messages, 1)
		assert.Equal(t, "user", gotReq.Messages[0].Role)
		assert.Equal(t, 100, gotReq.MaxTokens)
	})

	t.Run("max tokens defaulted when unset", func(t *testing.T) {
		var gotReq anthropicRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotReq)
			w.Write([]byte(`{"content":[{"type":"text","text":"ok"}]}`))
		}))
		defer server.Close()

		p, err := newAnthropicProvider(Credentials{APIKey: "secret", Endpoint: server.URL})
		require.NoError(t, err)

		_, err = p.Send(context.Background(), nil, CompletionOptions{})
		require.NoError(t, err)
		assert.Equal(t, 4096, gotReq.MaxTokens)
	})

	t.Run("structured API error surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"rate limited"}}`))
		}))
		defer server.Close()

		p, err := newAnthropicProvider(Credentials{APIKey: "secret", Endpoint: server.URL})
		require.NoError(t, err)

		_, err = p.Send(context.Background(), nil, CompletionOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("no text content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"content":[{"type":"tool_use","text":"x"}]}`))
		}))
		defer server.Close()

		p, err := newAnthropicProvider(Credentials{APIKey: "secret", Endpoint: server.URL})
		require.NoError(t, err)

		_, err = p.Send(context.Background(), nil, CompletionOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no text content")
	})
}
