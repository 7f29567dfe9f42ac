package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, 30*24*time.Hour, c.CodeValidityDuration)
	assert.Equal(t, 5, c.MaxCodeAttempts)
	assert.Equal(t, time.Hour, c.SweepInterval)
	assert.Equal(t, "sha256", c.HashAlgorithm)
	assert.Empty(t, c.S3Bucket)
	assert.Empty(t, c.MailEndpoint)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"server"}

	c := LoadConfig()
	require.NotNil(t, c)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, c)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty address", func(c *Config) { c.EndpointAddrGRPC = "" }},
		{"empty secret", func(c *Config) { c.SecretKey = "" }},
		{"zero code validity", func(c *Config) { c.CodeValidityDuration = 0 }},
		{"negative attempts", func(c *Config) { c.MaxCodeAttempts = -1 }},
		{"negative sweep", func(c *Config) { c.SweepInterval = -time.Second }},
		{"unknown algorithm", func(c *Config) { c.HashAlgorithm = "md5" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), common.ErrValidation)
		})
	}
}
