package segments

import (
	"strconv"
	"strings"
)

// Placeholder names recognized by AssemblePrompt
const (
	placeholderSegmentCount  = "{segmentCount}"
	placeholderSegmentLength = "{segmentLength}"
	placeholderTranscript    = "{transcript}"
)

// DefaultPromptTemplate asks for a bare JSON array of segment descriptors.
const DefaultPromptTemplate = `## TASK:
Analyze the transcript below and select the {segmentCount} most engaging moments for short video clips.

## REQUIREMENTS:
1. Select EXACTLY {segmentCount} segments.
2. Each segment must be at most {segmentLength} seconds long.
3. Timestamps use HH:MM:SS format and must fall inside the recording.
4. excerpt quotes the transcript verbatim; reasoning explains the pick in one sentence.
5. Segments must be self-contained: understandable without additional context.

## REQUIRED JSON FORMAT (USE EXACTLY THIS FORMAT):
[
  {
    "start": "00:01:30",
    "end": "00:02:15",
    "duration": 45,
    "excerpt": "the transcript text covered by this segment",
    "reasoning": "why this moment works as a standalone clip"
  }
]

## IMPORTANT: Your response MUST be only the JSON array, without prior explanations and without code fences.

Transcript:
{transcript}`

// localReinforcement is appended for locally-hosted models, which follow
// exact-schema instructions less reliably than large hosted ones. The
// example is repeated on purpose.
const localReinforcement = `## STRUCTURE REMINDER:
Your ENTIRE response must be a JSON array. The first character must be [ and the last character must be ].
Here is a complete, valid example response once more:
[
  {
    "start": "00:00:10",
    "end": "00:00:55",
    "duration": 45,
    "excerpt": "example transcript excerpt",
    "reasoning": "example reasoning"
  }
]`

// AssemblePrompt substitutes the named placeholders into the template.
// Unmatched placeholders are left verbatim rather than erroring, so partial
// templates still produce a usable prompt.
func AssemblePrompt(template string, settings GenerationSettings, transcript string) string {
	text := template
	if text == "" {
		text = DefaultPromptTemplate
	}

	text = strings.ReplaceAll(text, placeholderSegmentCount, strconv.Itoa(settings.SegmentCount))
	text = strings.ReplaceAll(text, placeholderSegmentLength, strconv.Itoa(int(settings.MaxSegmentLength.Seconds())))
	text = strings.ReplaceAll(text, placeholderTranscript, transcript)

	if settings.Provider.IsLocal() {
		text += "\n\n" + localReinforcement
	}

	return text
}
