package config

import (
	"flag"

	"github.com/dmitrijs2005/sealkeeper/internal/flagx"
)

// parseFlags overlays global flags onto cfg.
//
//	-a string       server address and port
//	-t string       author access token
//	-db string      receipts database file
//	-timeout dur    per-request timeout
//
// Parse errors panic.
func parseFlags(cfg *Config, osArgs []string) {
	args := flagx.FilterArgs(osArgs, []string{"-a", "-t", "-db", "-timeout"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "author access token")
	fs.StringVar(&cfg.ReceiptsDB, "db", cfg.ReceiptsDB, "receipts database file")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
