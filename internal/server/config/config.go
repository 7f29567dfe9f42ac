// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/cryptox"
)

// Config holds runtime settings for the SealKeeper server.
//
// An empty DatabaseDSN selects the in-memory repositories, an empty
// S3Bucket disables snapshot storage and an empty MailEndpoint logs
// invitations instead of sending them.
type Config struct {
	EndpointAddrGRPC            string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration

	CodeValidityDuration time.Duration
	MaxCodeAttempts      int
	SweepInterval        time.Duration
	PreviewRunes         int
	HashAlgorithm        string
	PublicBaseURL        string

	MailEndpoint string
	MailAPIKey   string
	MailFrom     string
	MailTimeout  time.Duration

	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	PresignTTL     time.Duration

	LogLevel string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 24 * time.Hour

	c.CodeValidityDuration = 30 * 24 * time.Hour
	c.MaxCodeAttempts = 5
	c.SweepInterval = time.Hour
	c.PreviewRunes = 1200
	c.HashAlgorithm = cryptox.DefaultAlgorithm
	c.PublicBaseURL = "http://localhost:8080"

	c.MailEndpoint = ""
	c.MailAPIKey = ""
	c.MailFrom = "noreply@sealkeeper.local"
	c.MailTimeout = 10 * time.Second

	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.PresignTTL = 15 * time.Minute

	c.LogLevel = "info"
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	if c.EndpointAddrGRPC == "" {
		return fmt.Errorf("%w: grpc address is empty", common.ErrValidation)
	}
	if c.SecretKey == "" {
		return fmt.Errorf("%w: secret key is empty", common.ErrValidation)
	}
	if c.CodeValidityDuration <= 0 {
		return fmt.Errorf("%w: code validity must be positive", common.ErrValidation)
	}
	if c.MaxCodeAttempts < 0 {
		return fmt.Errorf("%w: max code attempts must not be negative", common.ErrValidation)
	}
	if c.SweepInterval < 0 || c.PreviewRunes < 0 || c.PresignTTL < 0 {
		return fmt.Errorf("%w: negative interval or length", common.ErrValidation)
	}
	if _, err := cryptox.NewHasher(c.HashAlgorithm); err != nil {
		return err
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
