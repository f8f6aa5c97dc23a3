package segments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/clipsmith/clipsmith/internal/services/provider"
	"github.com/clipsmith/clipsmith/internal/services/provider/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const mockBackend provider.ID = "mock"

func newMockedGenerator(t *testing.T) (*Generator, *mocks.MockProvider) {
	backend := mocks.NewMockProvider(t)
	registry := provider.NewRegistry()
	registry.Register(mockBackend, backend)
	return NewGenerator(registry), backend
}

func mockedSettings() GenerationSettings {
	return GenerationSettings{
		ProjectID:        "proj-1",
		SegmentCount:     2,
		MaxSegmentLength: 60 * time.Second,
		Provider:         mockBackend,
	}
}

func TestGenerateSuccess(t *testing.T) {
	generator, backend := newMockedGenerator(t)
	backend.EXPECT().Name().Return("mock")
	backend.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(
		`[
			{"start":"00:00:10","end":"00:00:40","excerpt":"first pick","reasoning":"opener"},
			{"start":"00:02:00","end":"00:02:50","excerpt":"second pick","reasoning":"closer"}
		]`, nil)

	result, err := generator.Generate(context.Background(), mockedSettings(), "a transcript", 300*time.Second)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Segments, 2)

	assert.Equal(t, "proj-1", result.Segments[0].ProjectID)
	assert.Equal(t, 10*time.Second, result.Segments[0].StartOffset)
	assert.Equal(t, 40*time.Second, result.Segments[0].EndOffset)
	assert.Equal(t, "first pick", result.Segments[0].TranscriptExcerpt)
	assert.Equal(t, StatusGenerated, result.Segments[0].Status)
}

func TestGenerateSendsAssembledPrompt(t *testing.T) {
	generator, backend := newMockedGenerator(t)
	backend.EXPECT().Name().Return("mock")

	var sent []provider.ChatMessage
	var sentOpts provider.CompletionOptions
	backend.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, messages []provider.ChatMessage, opts provider.CompletionOptions) {
			sent = messages
			sentOpts = opts
		}).
		Return(`[{"start":"00:00:00","end":"00:00:30","excerpt":"x","reasoning":"y"}]`, nil)

	settings := mockedSettings()
	settings.Model = "test-model"
	_, err := generator.Generate(context.Background(), settings, "the body of the talk", 300*time.Second)
	require.NoError(t, err)

	require.Len(t, sent, 1)
	assert.Equal(t, "user", sent[0].Role)
	assert.Contains(t, sent[0].Content, "the body of the talk")
	assert.Contains(t, sent[0].Content, "select the 2 most engaging moments")

	assert.Equal(t, "test-model", sentOpts.Model)
	assert.Equal(t, 0.2, sentOpts.Temperature)
	assert.Equal(t, 0.95, sentOpts.TopP)
	assert.Equal(t, 4000, sentOpts.MaxTokens)
}

func TestGenerateTruncatesToRequestedCount(t *testing.T) {
	generator, backend := newMockedGenerator(t)
	backend.EXPECT().Name().Return("mock")
	backend.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(
		`[
			{"start":"00:00:00","end":"00:00:30","excerpt":"1","reasoning":"r"},
			{"start":"00:01:00","end":"00:01:30","excerpt":"2","reasoning":"r"},
			{"start":"00:02:00","end":"00:02:30","excerpt":"3","reasoning":"r"},
			{"start":"00:03:00","end":"00:03:30","excerpt":"4","reasoning":"r"}
		]`, nil)

	result, err := generator.Generate(context.Background(), mockedSettings(), "a transcript", 300*time.Second)
	require.NoError(t, err)
	require.Len(t, result.Segments, 2, "extra segments past the requested count are dropped")
	assert.Equal(t, "1", result.Segments[0].TranscriptExcerpt)
	assert.Equal(t, "2", result.Segments[1].TranscriptExcerpt)
}

func TestGenerateEmptyInput(t *testing.T) {
	generator := NewGenerator(provider.NewRegistry())

	for _, transcript := range []string{"", "   \n\t  "} {
		result, err := generator.Generate(context.Background(), mockedSettings(), transcript, 300*time.Second)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyInput)
		require.NotNil(t, result)
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
	}
}

func TestGenerateConfigurationError(t *testing.T) {
	generator := NewGenerator(provider.NewRegistry())
	settings := mockedSettings()
	settings.Provider = "definitely-not-a-provider"

	result, err := generator.Generate(context.Background(), settings, "a transcript", 300*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.False(t, result.Success)
}

func TestGenerateUpstreamError(t *testing.T) {
	generator, backend := newMockedGenerator(t)
	backend.EXPECT().Name().Return("mock")
	backend.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("rate limited"))

	result, err := generator.Generate(context.Background(), mockedSettings(), "a transcript", 300*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, result.Error, "rate limited")
}

func TestGenerateCancelled(t *testing.T) {
	generator, backend := newMockedGenerator(t)
	backend.EXPECT().Name().Return("mock")
	backend.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ []provider.ChatMessage, _ provider.CompletionOptions) (string, error) {
			return "", ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := generator.Generate(ctx, mockedSettings(), "a transcript", 300*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.NotErrorIs(t, err, ErrUpstream)
	assert.False(t, result.Success)
}

func TestGenerateEmptyResponse(t *testing.T) {
	generator, backend := newMockedGenerator(t)
	backend.EXPECT().Name().Return("mock")
	backend.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return("  \n ", nil)

	result, err := generator.Generate(context.Background(), mockedSettings(), "a transcript", 300*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.False(t, result.Success)
}

func TestGenerateMisunderstoodTask(t *testing.T) {
	generator, backend := newMockedGenerator(t)
	backend.EXPECT().Name().Return("mock")
	backend.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(
		`[{"question":"What was discussed?","answer":"The roadmap"}]`, nil)

	result, err := generator.Generate(context.Background(), mockedSettings(), "a transcript", 300*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMisunderstoodTask)
	assert.False(t, result.Success)
}

func TestGenerateFallsBackOnUnusableResponse(t *testing.T) {
	transcript := strings.Repeat("word ", 300)

	tests := []struct {
		name     string
		response string
	}{
		{name: "prose refusal", response: "I cannot find any engaging moments here."},
		{name: "all segments out of range", response: `[{"start":"01:00:00","end":"01:01:00","excerpt":"x","reasoning":"y"}]`},
		{name: "empty array", response: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator, backend := newMockedGenerator(t)
			backend.EXPECT().Name().Return("mock")
			backend.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(tt.response, nil)

			result, err := generator.Generate(context.Background(), mockedSettings(), transcript, 300*time.Second)
			require.NoError(t, err, "an unusable response degrades softly instead of failing")
			require.True(t, result.Success)
			require.Len(t, result.Segments, 2)
			for _, seg := range result.Segments {
				assert.Equal(t, FallbackReasoning, seg.Reasoning)
				assert.LessOrEqual(t, seg.EndOffset, 300*time.Second)
			}
		})
	}
}

func TestGenerateAppliesDefaults(t *testing.T) {
	generator, backend := newMockedGenerator(t)
	backend.EXPECT().Name().Return("mock")

	var sentOpts provider.CompletionOptions
	backend.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ []provider.ChatMessage, opts provider.CompletionOptions) {
			sentOpts = opts
		}).
		Return("unusable", nil)

	settings := GenerationSettings{Provider: mockBackend}
	result, err := generator.Generate(context.Background(), settings, "a transcript", 300*time.Second)
	require.NoError(t, err)

	assert.Equal(t, 0.2, sentOpts.Temperature)
	assert.Equal(t, 0.95, sentOpts.TopP)
	assert.Equal(t, 4000, sentOpts.MaxTokens)
	assert.Len(t, result.Segments, 5, "default segment count drives the fallback")
}
