package segments

import (
	"strings"
	"testing"
	"time"

	"github.com/clipsmith/clipsmith/internal/services/provider"

	"github.com/stretchr/testify/assert"
)

func TestAssemblePrompt(t *testing.T) {
	settings := GenerationSettings{
		SegmentCount:     3,
		MaxSegmentLength: 45 * time.Second,
		Provider:         provider.OpenAI,
	}

	t.Run("default template substitution", func(t *testing.T) {
		prompt := AssemblePrompt("", settings, "the transcript body")

		assert.Contains(t, prompt, "select the 3 most engaging moments")
		assert.Contains(t, prompt, "at most 45 seconds")
		assert.Contains(t, prompt, "the transcript body")
		assert.NotContains(t, prompt, "{segmentCount}")
		assert.NotContains(t, prompt, "{segmentLength}")
		assert.NotContains(t, prompt, "{transcript}")
	})

	t.Run("custom template", func(t *testing.T) {
		template := "Pick {segmentCount} clips of {segmentLength}s from: {transcript}"
		prompt := AssemblePrompt(template, settings, "hello world")

		assert.Equal(t, "Pick 3 clips of 45s from: hello world", prompt)
	})

	t.Run("repeated placeholders are all substituted", func(t *testing.T) {
		template := "{segmentCount} and again {segmentCount}"
		prompt := AssemblePrompt(template, settings, "x")

		assert.Equal(t, "3 and again 3", prompt)
	})

	t.Run("unknown placeholders are left verbatim", func(t *testing.T) {
		template := "count={segmentCount} lang={language}"
		prompt := AssemblePrompt(template, settings, "x")

		assert.Equal(t, "count=3 lang={language}", prompt)
	})

	t.Run("template without placeholders is usable", func(t *testing.T) {
		prompt := AssemblePrompt("just do the thing", settings, "ignored")
		assert.True(t, strings.HasPrefix(prompt, "just do the thing"))
	})

	t.Run("local provider gets the structure reminder", func(t *testing.T) {
		local := settings
		local.Provider = provider.Local

		hosted := AssemblePrompt("", settings, "body")
		reinforced := AssemblePrompt("", local, "body")

		assert.NotContains(t, hosted, "STRUCTURE REMINDER")
		assert.Contains(t, reinforced, "STRUCTURE REMINDER")
		assert.True(t, strings.HasSuffix(reinforced, "]"), "reminder example closes the prompt")
	})
}
