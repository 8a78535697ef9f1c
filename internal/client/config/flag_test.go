package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name:     "overrides both",
			args:     []string{"cmd", "-a", "http://localhost:8080", "-s", "/tmp/s.db"},
			expected: Config{APIBaseURL: "http://localhost:8080", SessionDBPath: "/tmp/s.db"},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"cmd", "-a", "http://localhost:8080", "-x", "whatever"},
			expected: Config{APIBaseURL: "http://localhost:8080"},
		},
		{
			name:     "no flags keeps existing values",
			args:     []string{"cmd"},
			expected: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, *config)
		})
	}
}
