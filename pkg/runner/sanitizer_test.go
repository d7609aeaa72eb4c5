package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", DefaultMaxInputSize - 1, false},
		{"Exact Limit", DefaultMaxInputSize, false},
		{"Over Limit", DefaultMaxInputSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeInput(strings.Repeat("a", tt.inputSize))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "4")

	_, err := SanitizeInput("toggle")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	got, err := SanitizeInput("off")
	require.NoError(t, err)
	assert.Equal(t, "off", got)
}

func TestSanitizeInput_Cleaning(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "inc", "inc"},
		{"arrow key prefix", "\x1b[A+", "+"},
		{"colour codes", "\x1b[31mon\x1b[0m", "on"},
		{"bell and null", "t\a\x00", "t"},
		{"tab and padding", "\t help \r", "help"},
		{"unicode kept", "ação", "ação"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("\xff\xfe")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
