package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"ping": {"check that the server answers", (*App).ping},

	"seal":        {"-m <manuscript id> -title <title> -author <name> -f <file|->", (*App).seal},
	"seals":       {"[-id <seal id>]", (*App).seals},
	"share":       {"-seal <seal id> -email <address> [-name <name>] [-msg <message>]", (*App).share},
	"shares":      {"-seal <seal id> | -id <share id>", (*App).shares},
	"approve":     {"-id <share id>", (*App).approve},
	"revoke":      {"-id <share id>", (*App).revoke},
	"dashboard":   {"-seal <seal id> [-html]", (*App).dashboard},
	"certificate": {"-seal <seal id> [-o <dir>]", (*App).certificate},
	"verify":      {"-seal <seal id> -f <file|->", (*App).verify},
	"reply":       {"-id <share id> -body <text>", (*App).reply},
	"receipts":    {"list seals recorded on this machine", (*App).listReceipts},

	"open":     {"-token <token>", (*App).open},
	"preview":  {"-token <token>", (*App).preview},
	"request":  {"-token <token>", (*App).request},
	"redeem":   {"-token <token> [-code <code>]", (*App).redeem},
	"progress": {"-token <token> -page <n>", (*App).progress},
	"read":     {"-token <token>", (*App).read},
	"message":  {"-token <token> -body <text> [-name <name>]", (*App).message},
}

var errMissingFlag = errors.New("missing required flag")

// ErrMismatch is returned by verify when the content does not match the
// seal.
var ErrMismatch = errors.New("content does not match the seal")

func (a *App) printHelp() {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	a.printf("usage: sealkeeper [-a addr] [-t token] [-db file] [-c config.json] <command> [flags]\n\ncommands:\n")
	for _, n := range names {
		a.printf("  %-12s %s\n", n, commands[n].usage)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// required reports the first empty value in pairs of (flag name, value).
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%w -%s", errMissingFlag, pairs[i])
		}
	}
	return nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}

func formatTimestamp(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	t := ts.AsTime()
	return formatTime(&t)
}

func (a *App) ping(ctx context.Context, _ []string) error {
	if err := a.api.Ping(ctx); err != nil {
		return err
	}
	a.printf("server %s is up\n", a.config.ServerEndpointAddr)
	return nil
}
