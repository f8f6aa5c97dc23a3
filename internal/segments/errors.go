package segments

import "errors"

// The engine fails in exactly these ways. Every other irregularity -
// malformed elements, unknown wrapper shapes, missing optional fields - is
// absorbed by the tiered fallbacks and never surfaces as an error.
var (
	// ErrEmptyInput indicates a blank or whitespace transcript; no request is made
	ErrEmptyInput = errors.New("transcript is empty")

	// ErrConfiguration indicates an unknown provider id or a missing credential
	ErrConfiguration = errors.New("provider configuration error")

	// ErrUpstream indicates the completion request itself failed; whether to
	// retry is the caller's decision
	ErrUpstream = errors.New("provider request failed")

	// ErrEmptyResponse indicates the provider returned blank text
	ErrEmptyResponse = errors.New("provider returned an empty response")

	// ErrMisunderstoodTask indicates the provider answered a different task
	// shape entirely
	ErrMisunderstoodTask = errors.New("provider response does not describe segments")

	// ErrCancelled indicates the caller cancelled the in-flight completion
	// request; nothing is persisted mid-pipeline, so abandoning it is safe
	ErrCancelled = errors.New("generation cancelled")

	// ErrGenerationFailed covers unexpected failures caught at the engine
	// boundary
	ErrGenerationFailed = errors.New("segment generation failed")
)
