package segments

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidateDescriptors converts candidate descriptors into validated
// segments clamped to the media duration. Descriptors with unparsable or
// out-of-range times are discarded silently; the descriptor duration field
// is informational and never consulted.
func ValidateDescriptors(descs []SegmentDescriptor, settings GenerationSettings, mediaDuration time.Duration) []Segment {
	segments := make([]Segment, 0, len(descs))
	for _, desc := range descs {
		start, err := ParseClockTime(desc.Start)
		if err != nil {
			continue
		}
		end, err := ParseClockTime(desc.End)
		if err != nil {
			continue
		}

		if start >= mediaDuration {
			continue
		}
		if end > mediaDuration {
			end = mediaDuration
		}
		// Defensive: nothing should survive the clamping above with an
		// inverted range
		if end <= start {
			continue
		}

		segments = append(segments, Segment{
			ProjectID:         settings.ProjectID,
			StartOffset:       start,
			EndOffset:         end,
			TranscriptExcerpt: desc.Excerpt,
			Summary:           summarize(desc.Excerpt),
			Reasoning:         desc.Reasoning,
			Status:            StatusGenerated,
		})
	}
	return segments
}

// ParseClockTime parses "HH:MM:SS", "MM:SS" or bare seconds (fractions
// allowed) into a duration.
func ParseClockTime(value string) (time.Duration, error) {
	text := strings.TrimSpace(value)
	if text == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp format: %s", value)
	}

	total := 0.0
	for _, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid timestamp format: %s", value)
		}
		total = total*60 + n
	}

	return time.Duration(total * float64(time.Second)), nil
}

// FormatClockTime renders a duration as an HH:MM:SS timestamp
func FormatClockTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// summarize derives a short display label from a transcript excerpt
func summarize(excerpt string) string {
	text := strings.TrimSpace(excerpt)
	if len(text) <= 80 {
		return text
	}
	cut := strings.LastIndex(text[:80], " ")
	if cut <= 0 {
		cut = 80
	}
	return text[:cut] + "..."
}
