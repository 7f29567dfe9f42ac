package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"-a", "127.0.0.1:9090", "-t", "tok", "-db", "/tmp/r.db", "-timeout", "3s"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", AccessToken: "tok", ReceiptsDB: "/tmp/r.db", RequestTimeout: 3 * time.Second}},
		{name: "foreign flags ignored", args: []string{"-a", "h:1", "-title", "x"},
			expected: &Config{ServerEndpointAddr: "h:1"}},
		{name: "bad timeout", args: []string{"-timeout", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
