package segments

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Reasoning trace sentinels emitted by "thinking" model variants
var tracePairs = [][2]string{
	{"<think>", "</think>"},
	{"<thinking>", "</thinking>"},
	{"<reasoning>", "</reasoning>"},
}

// Envelope keys some models wrap the requested array in
var envelopeKeys = []string{"responses", "segments", "items", "results", "data"}

// NormalizeResponse cleans raw completion text down to a best-guess JSON
// array substring. Steps run in order and the whole pass is idempotent:
// trim, drop reasoning trace blocks, strip one outer code fence, wrap a
// bare object into an array, then cut the text to its outermost array
// markers (first/last occurrence; the segment schema has no nested arrays).
// When no array markers exist the cleaned text is returned unchanged so
// parsing can fall through to the next tier.
func NormalizeResponse(text string) (string, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = stripTraceBlocks(cleaned)
	cleaned = stripOuterFence(cleaned)

	// A single bare object instead of an array is tolerated
	if strings.HasPrefix(cleaned, "{") && !strings.Contains(cleaned, "[") {
		cleaned = "[" + cleaned + "]"
	}

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end <= start {
		return cleaned, nil
	}
	candidate := cleaned[start : end+1]

	// Known envelope wrappers are unwrapped one level
	if start > 0 && strings.HasPrefix(cleaned, "{") {
		for _, key := range envelopeKeys {
			if v := gjson.Get(cleaned, key); v.IsArray() {
				candidate = v.Raw
				break
			}
		}
	}

	if isForeignTaskShape(candidate) {
		return "", fmt.Errorf("%w: got a question/answer payload", ErrMisunderstoodTask)
	}

	return candidate, nil
}

// stripTraceBlocks removes paired reasoning trace blocks. The loop is
// bounded by the presence of an opening sentinel, so malformed nesting
// cannot spin forever.
func stripTraceBlocks(text string) string {
	for _, pair := range tracePairs {
		opening, closing := pair[0], pair[1]
		for strings.Contains(text, opening) {
			i := strings.Index(text, opening)
			rest := text[i+len(opening):]
			j := strings.Index(rest, closing)
			if j == -1 {
				// Unterminated trace block: drop everything from the opener on
				text = text[:i]
				break
			}
			text = text[:i] + rest[j+len(closing):]
		}
	}
	return strings.TrimSpace(text)
}

// stripOuterFence removes a fenced code block wrapper when the whole
// response sits inside one.
func stripOuterFence(text string) string {
	if len(text) < 6 || !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") {
		return text
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")

	// Drop the language tag on the opening fence line, e.g. ```json
	if nl := strings.Index(inner, "\n"); nl != -1 {
		first := strings.TrimSpace(inner[:nl])
		if !strings.ContainsAny(first, "[{") {
			inner = inner[nl+1:]
		}
	}

	return strings.TrimSpace(inner)
}

// isForeignTaskShape reports whether the array looks like the answer to a
// different task, e.g. quiz-style question/answer pairs with no timestamps.
func isForeignTaskShape(arrayText string) bool {
	parsed := gjson.Parse(arrayText)
	if !parsed.IsArray() {
		return false
	}

	for _, el := range parsed.Array() {
		if !el.IsObject() {
			return false
		}
		hasQA := el.Get("question").Exists() &&
			(el.Get("answer").Exists() || el.Get("options").Exists())
		hasTimes := el.Get("start").Exists() || el.Get("startTime").Exists() ||
			el.Get("start_time").Exists()
		return hasQA && !hasTimes
	}

	return false
}
