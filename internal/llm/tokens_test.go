package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountTokens(t *testing.T) {
	tests := []struct {
		name  string
		model string
		text  string
		want  int
	}{
		{name: "empty", model: "gpt-4", text: "", want: 0},
		{name: "known model", model: "gpt-4", text: "hello world", want: 2},
		{name: "unknown model falls back", model: "not-a-real-model", text: "hello world", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountTokens(tt.model, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountTokens_CompactIsSmaller(t *testing.T) {
	raw := "CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, email VARCHAR(255) NOT NULL UNIQUE);"

	rawCount, err := CountTokens("gpt-4", raw)
	require.NoError(t, err)
	compactCount, err := CountTokens("gpt-4", "users: id, email\n")
	require.NoError(t, err)

	assert.Less(t, compactCount, rawCount)
}
