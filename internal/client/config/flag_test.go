package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"growlog", "-a", "https://api.example.com", "-t", "10", "-d", "x.db", "-l", "debug"},
			expected: &Config{
				APIBaseURL:     "https://api.example.com",
				RequestTimeout: 10 * time.Second,
				DatabasePath:   "x.db",
				LogLevel:       "debug",
			},
		},
		{
			name:     "config flag is ignored here",
			args:     []string{"growlog", "-c", "conf.json", "-t", "3"},
			expected: &Config{RequestTimeout: 3 * time.Second},
		},
		{name: "non-numeric timeout", args: []string{"growlog", "-t", "abc"}, wantErr: true},
		{name: "zero timeout", args: []string{"growlog", "-t", "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := &Config{RequestTimeout: time.Second}

			err := parseFlags(cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
