package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sealkeeper/internal/flagx"
	"github.com/dmitrijs2005/sealkeeper/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "720h" style
// strings or integer nanoseconds. Fields left out of the file keep their
// current values.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`

	CodeValidityDuration timex.Duration  `json:"code_validity_duration"`
	MaxCodeAttempts      *int            `json:"max_code_attempts"`
	SweepInterval        *timex.Duration `json:"sweep_interval"`
	PreviewRunes         *int            `json:"preview_runes"`
	HashAlgorithm        string          `json:"hash_algorithm"`
	PublicBaseURL        string          `json:"public_base_url"`

	MailEndpoint string         `json:"mail_endpoint"`
	MailAPIKey   string         `json:"mail_api_key"`
	MailFrom     string         `json:"mail_from"`
	MailTimeout  timex.Duration `json:"mail_timeout"`

	S3RootUser     string         `json:"s3_root_user"`
	S3RootPassword string         `json:"s3_root_password"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	PresignTTL     timex.Duration `json:"presign_ttl"`

	LogLevel string `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config in args.
// Without that flag nothing is loaded. An unreadable or malformed file
// panics, like a malformed flag does.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.ConfigFileFlag(args)
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}

	if c.CodeValidityDuration.Duration != 0 {
		config.CodeValidityDuration = c.CodeValidityDuration.Duration
	}
	if c.MaxCodeAttempts != nil {
		config.MaxCodeAttempts = *c.MaxCodeAttempts
	}
	// zero is meaningful here: it disables the sweeper
	if c.SweepInterval != nil {
		config.SweepInterval = c.SweepInterval.Duration
	}
	if c.PreviewRunes != nil {
		config.PreviewRunes = *c.PreviewRunes
	}
	setString(&config.HashAlgorithm, c.HashAlgorithm)
	setString(&config.PublicBaseURL, c.PublicBaseURL)

	setString(&config.MailEndpoint, c.MailEndpoint)
	setString(&config.MailAPIKey, c.MailAPIKey)
	setString(&config.MailFrom, c.MailFrom)
	if c.MailTimeout.Duration != 0 {
		config.MailTimeout = c.MailTimeout.Duration
	}

	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.PresignTTL.Duration != 0 {
		config.PresignTTL = c.PresignTTL.Duration
	}

	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
