// Package segments turns free-form AI completion text into validated,
// time-bounded video segments clamped to the duration of the source
// recording.
package segments

import (
	"time"

	"github.com/clipsmith/clipsmith/internal/services/provider"
)

// SegmentStatus tracks a segment's lifecycle state
type SegmentStatus string

// StatusGenerated is the initial status of every segment produced here.
// Later lifecycle states (edited, extracted, deleted) are owned by
// downstream collaborators.
const StatusGenerated SegmentStatus = "Generated"

// SegmentDescriptor is an AI-authored candidate segment. It is never
// persisted; the validator either promotes it to a Segment or discards it.
type SegmentDescriptor struct {
	Start     string  `json:"start"`     // Start timestamp, e.g. "00:01:30"
	End       string  `json:"end"`       // End timestamp
	Duration  float64 `json:"duration"`  // Informational length in seconds, not authoritative
	Excerpt   string  `json:"excerpt"`   // Transcript text covered by the segment
	Reasoning string  `json:"reasoning"` // Why the model picked this span
}

// Segment is a validated, time-bounded clip definition ready for downstream
// extraction. StartOffset < EndOffset <= media duration always holds.
type Segment struct {
	ProjectID         string
	StartOffset       time.Duration
	EndOffset         time.Duration
	TranscriptExcerpt string
	Summary           string
	Reasoning         string
	Status            SegmentStatus
}

// GenerationSettings is an immutable snapshot of the parameters for one
// generation call.
type GenerationSettings struct {
	ProjectID        string
	SegmentCount     int           // Requested number of segments (default 5)
	MaxSegmentLength time.Duration // Requested maximum segment length (default 60s)
	PromptTemplate   string        // Custom template; empty selects the default
	Provider         provider.ID
	Credentials      provider.Credentials
	Model            string  // Overrides the provider's default model when set
	Temperature      float64 // Sampling temperature (default 0.2, near-deterministic)
	TopP             float64 // Nucleus sampling value (default 0.95)
	MaxTokens        int     // Output token ceiling (default 4000)
}

const (
	defaultSegmentCount  = 5
	defaultSegmentLength = 60 * time.Second
	defaultTemperature   = 0.2
	defaultTopP          = 0.95
	defaultMaxTokens     = 4000
)

// withDefaults fills in unset settings fields
func (s GenerationSettings) withDefaults() GenerationSettings {
	if s.SegmentCount <= 0 {
		s.SegmentCount = defaultSegmentCount
	}
	if s.MaxSegmentLength <= 0 {
		s.MaxSegmentLength = defaultSegmentLength
	}
	if s.Temperature == 0 {
		s.Temperature = defaultTemperature
	}
	if s.TopP == 0 {
		s.TopP = defaultTopP
	}
	if s.MaxTokens == 0 {
		s.MaxTokens = defaultMaxTokens
	}
	return s
}

// GenerationResult is the terminal outcome of one generation call. It is not
// persisted by this engine.
type GenerationResult struct {
	Success  bool
	Segments []Segment
	Error    string
}
