package segments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleArray = `[{"start":"00:00:10","end":"00:00:40","duration":30,"excerpt":"hello","reasoning":"strong opener"}]`

func TestNormalizeResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean array passes through",
			input: sampleArray,
			want:  sampleArray,
		},
		{
			name:  "surrounding whitespace",
			input: "\n\n  " + sampleArray + "  \n",
			want:  sampleArray,
		},
		{
			name:  "fenced with language tag",
			input: "```json\n" + sampleArray + "\n```",
			want:  sampleArray,
		},
		{
			name:  "fenced without language tag",
			input: "```\n" + sampleArray + "\n```",
			want:  sampleArray,
		},
		{
			name:  "prose before and after the array",
			input: "Here are your segments:\n" + sampleArray + "\nLet me know if you need more.",
			want:  sampleArray,
		},
		{
			name:  "think block stripped",
			input: "<think>the user wants five segments</think>\n" + sampleArray,
			want:  sampleArray,
		},
		{
			name:  "unterminated think block drops the tail",
			input: sampleArray + "\n<think>wait, maybe I should",
			want:  sampleArray,
		},
		{
			name:  "bare object wrapped into an array",
			input: `{"start":"00:00:10","end":"00:00:40","duration":30,"excerpt":"hello","reasoning":"ok"}`,
			want:  `[{"start":"00:00:10","end":"00:00:40","duration":30,"excerpt":"hello","reasoning":"ok"}]`,
		},
		{
			name:  "segments envelope unwrapped",
			input: `{"segments":` + sampleArray + `}`,
			want:  sampleArray,
		},
		{
			name:  "responses envelope unwrapped",
			input: `{"responses":` + sampleArray + `}`,
			want:  sampleArray,
		},
		{
			name:  "no array markers returned unchanged",
			input: "I cannot find any engaging moments in this transcript.",
			want:  "I cannot find any engaging moments in this transcript.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeResponse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeResponseIsIdempotent(t *testing.T) {
	inputs := []string{
		"```json\n" + sampleArray + "\n```",
		"<thinking>hmm</thinking>\nSure!\n" + sampleArray,
		`{"items":` + sampleArray + `}`,
		sampleArray,
	}

	for _, input := range inputs {
		once, err := NormalizeResponse(input)
		require.NoError(t, err)
		twice, err := NormalizeResponse(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeResponseMisunderstoodTask(t *testing.T) {
	t.Run("quiz payload is rejected", func(t *testing.T) {
		input := `[{"question":"What is discussed?","answer":"The roadmap","options":["a","b"]}]`
		_, err := NormalizeResponse(input)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMisunderstoodTask)
	})

	t.Run("question field with timestamps is fine", func(t *testing.T) {
		input := `[{"question":"intro?","answer":"yes","start":"00:00:05","end":"00:00:30"}]`
		got, err := NormalizeResponse(input)
		require.NoError(t, err)
		assert.Equal(t, input, got)
	})
}
