package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "fenced with json tag",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "fenced without tag",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "prose around object",
			input: "Here is the result:\n{\"a\": 1}\nHope that helps!",
			want:  `{"a": 1}`,
		},
		{
			name:  "trailing comma removed",
			input: `{"a": 1, "b": [1, 2,],}`,
			want:  `{"a": 1, "b": [1, 2]}`,
		},
		{
			name:  "line comment stripped",
			input: "{\n\"a\": 1 // the count\n}",
			want:  "{\n\"a\": 1\n}",
		},
		{
			name:  "slashes inside string preserved",
			input: `{"url": "https://example.com//path"}`,
			want:  `{"url": "https://example.com//path"}`,
		},
		{
			name:    "no object",
			input:   "sorry, I cannot help with that",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractObject(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, json.Valid([]byte(got)), "extracted doc must be valid JSON")
		})
	}
}

func TestExtractArray(t *testing.T) {
	got, err := ExtractArray("```json\n[1, 2, 3]\n```")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", got)

	_, err = ExtractArray("no list here")
	require.Error(t, err)
}

func TestStripLineCommentRespectsEscapes(t *testing.T) {
	// An escaped quote must not end the string early.
	in := `"say \"hi\" // not a comment" // comment`
	assert.Equal(t, `"say \"hi\" // not a comment"`, stripLineComment(in))
}
