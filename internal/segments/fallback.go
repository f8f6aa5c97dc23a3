package segments

import (
	"fmt"
	"strings"
	"time"
)

// defaultMediaDuration stands in when the recording length is unknown
const defaultMediaDuration = 300 * time.Second

// minFallbackWords is the smallest excerpt the distributor produces while
// the transcript still has words to give
const minFallbackWords = 10

// FallbackReasoning marks segments produced by the distributor rather than
// the model, so callers can tell soft degradation from AI-authored output.
const FallbackReasoning = "Evenly distributed segment (AI response could not be used)"

// DistributeSegments deterministically spreads the requested number of
// segments across the recording. When the requested count times length does
// not fit into the runtime, segments overlap rather than coming up short of
// the requested count. Output is ascending by start offset.
func DistributeSegments(transcript string, settings GenerationSettings, mediaDuration time.Duration) []Segment {
	total := mediaDuration
	if total <= 0 {
		total = defaultMediaDuration
	}

	n := settings.SegmentCount
	if n < 1 {
		n = 1
	}
	length := settings.MaxSegmentLength
	if length <= 0 {
		length = defaultSegmentLength
	}

	segments := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		start := fallbackStart(i, n, length, total)
		end := start + min(length, total-start)
		segments = append(segments, Segment{
			ProjectID:         settings.ProjectID,
			StartOffset:       start,
			EndOffset:         end,
			TranscriptExcerpt: sliceTranscript(transcript, start, end, total),
			Summary:           fmt.Sprintf("Segment %d of %d", i+1, n),
			Reasoning:         FallbackReasoning,
			Status:            StatusGenerated,
		})
	}

	return segments
}

// fallbackStart computes the i-th uniformly spaced start offset. The loose
// parse tier uses the same formula to synthesize times for descriptors that
// lack them.
func fallbackStart(i, n int, length, total time.Duration) time.Duration {
	if n <= 1 {
		return 0
	}

	spacing := (total - length) / time.Duration(n-1)
	if time.Duration(n)*length > total {
		// The request does not fit without overlap. Keep the requested count
		// and space starts at least a tenth of the length apart instead of
		// returning fewer segments.
		if tenth := length / 10; spacing < tenth {
			spacing = tenth
		}
	}

	maxStart := total - length
	if maxStart < 0 {
		maxStart = 0
	}

	start := time.Duration(i) * spacing
	if start > maxStart {
		start = maxStart
	}
	if start < 0 {
		start = 0
	}
	return start
}

// sliceTranscript maps a time range onto the whitespace-tokenized
// transcript by proportional word offsets. Word-level timestamps are not
// available here, so a uniform speaking rate is assumed.
func sliceTranscript(transcript string, start, end, total time.Duration) string {
	words := strings.Fields(transcript)
	if len(words) == 0 || total <= 0 {
		return ""
	}

	startIdx := int(float64(len(words)) * (float64(start) / float64(total)))
	endIdx := int(float64(len(words)) * (float64(end) / float64(total)))
	if startIdx < 0 {
		startIdx = 0
	}
	if endIdx > len(words) {
		endIdx = len(words)
	}

	// Degenerate ranges still get a usable excerpt
	if endIdx-startIdx < minFallbackWords {
		endIdx = startIdx + minFallbackWords
		if endIdx > len(words) {
			endIdx = len(words)
			startIdx = endIdx - minFallbackWords
			if startIdx < 0 {
				startIdx = 0
			}
		}
	}

	if startIdx >= endIdx {
		return ""
	}
	return strings.Join(words[startIdx:endIdx], " ")
}
