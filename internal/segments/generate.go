package segments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clipsmith/clipsmith/internal/services/provider"
	"github.com/clipsmith/clipsmith/internal/utils"
)

// Generator composes prompt assembly, the provider call, normalization,
// parsing, validation and the fallback distributor into one call. The
// provider registry is owned by the caller and shared across calls; all
// other state lives on the stack, so independent generations are safe to
// run concurrently.
type Generator struct {
	registry *provider.Registry
}

// NewGenerator creates a generator backed by the given registry
func NewGenerator(registry *provider.Registry) *Generator {
	return &Generator{registry: registry}
}

// Generate runs one full generation: resolve the provider, send a single
// completion request, then normalize, parse and validate the response.
// Once any response text exists the call does not hard-fail: when zero
// validated segments survive, evenly distributed fallback segments are
// returned instead. The only suspension point is the completion request;
// callers wrap ctx for timeout or cancellation.
func (g *Generator) Generate(ctx context.Context, settings GenerationSettings, transcript string, mediaDuration time.Duration) (result *GenerationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrGenerationFailed, r)
			result = failedResult(err)
		}
	}()

	settings = settings.withDefaults()

	// Validating
	if strings.TrimSpace(transcript) == "" {
		err := fmt.Errorf("%w: nothing to analyze", ErrEmptyInput)
		return failedResult(err), err
	}

	// Configuring
	backend, err := g.registry.Resolve(settings.Provider, settings.Credentials)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrConfiguration, err)
		return failedResult(err), err
	}

	// Requesting: a single completion call with near-deterministic sampling
	// and a bounded output. Retrying is the caller's decision.
	prompt := AssemblePrompt(settings.PromptTemplate, settings, transcript)
	messages := []provider.ChatMessage{{Role: "user", Content: prompt}}

	utils.LogInfo("Requesting %d segments from %s...", settings.SegmentCount, backend.Name())
	response, sendErr := backend.Send(ctx, messages, provider.CompletionOptions{
		Model:       settings.Model,
		Temperature: settings.Temperature,
		TopP:        settings.TopP,
		MaxTokens:   settings.MaxTokens,
	})
	if sendErr != nil {
		if errors.Is(sendErr, context.Canceled) {
			err = fmt.Errorf("%w: %s", ErrCancelled, sendErr)
		} else {
			err = fmt.Errorf("%w: %s", ErrUpstream, sendErr)
		}
		return failedResult(err), err
	}

	// Normalizing
	if strings.TrimSpace(response) == "" {
		err := fmt.Errorf("%w: %s", ErrEmptyResponse, backend.Name())
		return failedResult(err), err
	}

	arrayText, err := NormalizeResponse(response)
	if err != nil {
		return failedResult(err), err
	}

	// Parsing and ValidatingSegments
	descriptors := ParseDescriptors(arrayText, transcript, settings, mediaDuration)
	validated := ValidateDescriptors(descriptors, settings, mediaDuration)
	if len(validated) > settings.SegmentCount {
		validated = validated[:settings.SegmentCount]
	}

	// Zero survivors is soft degradation, not failure
	if len(validated) == 0 {
		utils.LogWarning("No usable AI segments recovered - falling back to even distribution")
		validated = DistributeSegments(transcript, settings, mediaDuration)
	}

	utils.LogSuccess("Generated %d segments", len(validated))
	return &GenerationResult{Success: true, Segments: validated}, nil
}

func failedResult(err error) *GenerationResult {
	return &GenerationResult{Success: false, Error: err.Error()}
}
