// Package config holds the SealKeeper CLI settings. Values come from
// defaults, then an optional JSON file (-c/-config), then global flags.
package config

import "time"

// Config holds runtime settings for the SealKeeper CLI.
//
// AccessToken is the author JWT; recipient commands work without it.
// ReceiptsDB is the local SQLite file that records seal receipts.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	ReceiptsDB         string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.AccessToken = ""
	c.ReceiptsDB = "receipts.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file and flags found in args.
// args are the global arguments that precede the subcommand.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
