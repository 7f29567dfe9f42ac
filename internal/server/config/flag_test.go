package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-d", "postgres://db", "-s", "secret", "-t", "2h",
				"-k", "48h", "-m", "3", "-w", "0s", "-n", "500", "-x", "blake3", "-l", "https://read.example",
				"-mail-endpoint", "https://api.resend.com/emails", "-mail-key", "re_x", "-mail-from", "me@example.com",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
				"-presign-ttl", "5m", "-log-level", "debug",
			},
			expected: &Config{
				EndpointAddrGRPC:            "127.0.0.1:9090",
				DatabaseDSN:                 "postgres://db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 2 * time.Hour,
				CodeValidityDuration:        48 * time.Hour,
				MaxCodeAttempts:             3,
				SweepInterval:               0,
				PreviewRunes:                500,
				HashAlgorithm:               "blake3",
				PublicBaseURL:               "https://read.example",
				MailEndpoint:                "https://api.resend.com/emails",
				MailAPIKey:                  "re_x",
				MailFrom:                    "me@example.com",
				S3RootUser:                  "user",
				S3RootPassword:              "password",
				S3Bucket:                    "bucket",
				S3Region:                    "us-west-1",
				S3BaseEndpoint:              "http://endpoint",
				PresignTTL:                  5 * time.Minute,
				LogLevel:                    "debug",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-zzz", "1", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"},
		},
		{
			name:        "bad duration panics",
			args:        []string{"-k", "forever"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			if tt.expectPanic {
				assert.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			parseFlags(config, tt.args)
			if diff := cmp.Diff(tt.expected, config); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
