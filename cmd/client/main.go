package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/sealkeeper/internal/client/cli"
	"github.com/dmitrijs2005/sealkeeper/internal/client/config"
	"github.com/dmitrijs2005/sealkeeper/internal/flagx"
)

func main() {

	global, cmd, rest := flagx.SplitCommand(os.Args[1:])

	ctx := context.Background()
	cfg := config.LoadConfig(global)
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = app.Run(ctx, cmd, rest)
	if cerr := app.Close(); cerr != nil {
		log.Printf("close: %v", cerr)
	}
	if errors.Is(err, cli.ErrMismatch) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

}
