package segments

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Alternate field names the loose tier accepts for each descriptor field
var (
	looseStartKeys   = []string{"start", "startTime", "start_time", "begin", "from"}
	looseEndKeys     = []string{"end", "endTime", "end_time", "stop", "to", "until"}
	looseExcerptKeys = []string{"excerpt", "text", "transcript", "quote", "content"}
	looseReasonKeys  = []string{"reasoning", "reason", "why", "explanation", "description"}
)

// ParseDescriptors turns normalized array text into candidate descriptors.
// The strict tier requires valid JSON matching the requested schema; a
// structural failure drops to the loose tier, and a loose structural
// failure yields zero descriptors rather than an error.
func ParseDescriptors(arrayText, transcript string, settings GenerationSettings, mediaDuration time.Duration) []SegmentDescriptor {
	if descs, err := parseStrict(arrayText); err == nil {
		return descs
	}
	return parseLoose(arrayText, transcript, settings, mediaDuration)
}

// parseStrict unmarshals the text as a typed descriptor array. Unknown
// fields are ignored. Per-element semantic problems are the validator's
// concern; only array-level syntax failures surface here.
func parseStrict(arrayText string) ([]SegmentDescriptor, error) {
	var descs []SegmentDescriptor
	if err := json.Unmarshal([]byte(arrayText), &descs); err != nil {
		return nil, err
	}
	return descs, nil
}

// parseLoose treats every array element as a generic field bag. Elements
// without a usable time range get one synthesized from the uniform-spacing
// formula, indexed by their position, with the excerpt sliced from the
// transcript by proportional word offsets.
func parseLoose(arrayText, transcript string, settings GenerationSettings, mediaDuration time.Duration) []SegmentDescriptor {
	parsed := gjson.Parse(strings.TrimSpace(arrayText))
	if !parsed.IsArray() {
		return nil
	}

	total := mediaDuration
	if total <= 0 {
		total = defaultMediaDuration
	}

	elements := parsed.Array()
	descs := make([]SegmentDescriptor, 0, len(elements))
	for i, el := range elements {
		var desc SegmentDescriptor
		switch {
		case el.IsObject():
			desc.Start = looseField(el, looseStartKeys)
			desc.End = looseField(el, looseEndKeys)
			desc.Excerpt = looseField(el, looseExcerptKeys)
			desc.Reasoning = looseField(el, looseReasonKeys)
			if d := el.Get("duration"); d.Exists() {
				desc.Duration = d.Float()
			}
		case el.Type == gjson.String:
			desc.Excerpt = el.String()
		}

		if _, err := ParseClockTime(desc.Start); err != nil {
			start := fallbackStart(i, len(elements), settings.MaxSegmentLength, total)
			end := start + min(settings.MaxSegmentLength, total-start)
			desc.Start = FormatClockTime(start)
			desc.End = FormatClockTime(end)
			if desc.Excerpt == "" {
				desc.Excerpt = sliceTranscript(transcript, start, end, total)
			}
		} else if _, err := ParseClockTime(desc.End); err != nil {
			start, _ := ParseClockTime(desc.Start)
			desc.End = FormatClockTime(start + min(settings.MaxSegmentLength, total-start))
		}

		descs = append(descs, desc)
	}

	return descs
}

func looseField(el gjson.Result, keys []string) string {
	for _, key := range keys {
		if v := el.Get(key); v.Exists() {
			return v.String()
		}
	}
	return ""
}
