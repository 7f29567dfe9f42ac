package config

import (
	"flag"

	"github.com/dmitrijs2005/sealkeeper/internal/flagx"
)

var serverFlags = []string{
	"-a", "-d", "-s", "-t",
	"-k", "-m", "-w", "-n", "-x", "-l",
	"-mail-endpoint", "-mail-key", "-mail-from",
	"-u", "-p", "-b", "-g", "-e", "-presign-ttl",
	"-log-level",
}

// parseFlags overlays command-line flags onto config.
//
//	-a string          gRPC bind address (":50051")
//	-d string          PostgreSQL DSN, empty for in-memory storage
//	-s string          JWT HMAC secret key
//	-t duration        author access token validity
//	-k duration        access code validity ("720h")
//	-m int             failed code attempts before lockout, 0 disables
//	-w duration        expired code sweep interval, 0 disables
//	-n int             preview length in characters
//	-x string          hash algorithm (sha256, blake2b-256, blake3)
//	-l string          public base URL used in share links
//	-mail-endpoint     mail API URL, empty to only log invitations
//	-mail-key          mail API bearer key
//	-mail-from         sender address
//	-u / -p            S3 user and password
//	-b string          S3 bucket, empty disables snapshots
//	-g string          S3 region
//	-e string          S3 base endpoint ("http://127.0.0.1:9000")
//	-presign-ttl       lifetime of manuscript download URLs
//	-log-level string  debug, info, warn or error
//
// Only the flags above are looked at, so -c/-config and flags of other
// components may share the command line. Parse errors panic.
func parseFlags(config *Config, osArgs []string) {
	args := flagx.FilterArgs(osArgs, serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.AccessTokenValidityDuration, "t", config.AccessTokenValidityDuration, "access token validity")

	fs.DurationVar(&config.CodeValidityDuration, "k", config.CodeValidityDuration, "access code validity")
	fs.IntVar(&config.MaxCodeAttempts, "m", config.MaxCodeAttempts, "failed code attempts before lockout")
	fs.DurationVar(&config.SweepInterval, "w", config.SweepInterval, "expired code sweep interval")
	fs.IntVar(&config.PreviewRunes, "n", config.PreviewRunes, "preview length in characters")
	fs.StringVar(&config.HashAlgorithm, "x", config.HashAlgorithm, "hash algorithm")
	fs.StringVar(&config.PublicBaseURL, "l", config.PublicBaseURL, "public base URL")

	fs.StringVar(&config.MailEndpoint, "mail-endpoint", config.MailEndpoint, "mail API endpoint")
	fs.StringVar(&config.MailAPIKey, "mail-key", config.MailAPIKey, "mail API key")
	fs.StringVar(&config.MailFrom, "mail-from", config.MailFrom, "mail sender address")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.DurationVar(&config.PresignTTL, "presign-ttl", config.PresignTTL, "presigned URL lifetime")

	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
