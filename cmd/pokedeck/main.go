// Command pokedeck searches card collections and builds teams from them.
//
//	pokedeck --collection cards.yaml search Bulbasaur 10
//	pokedeck --collection cards.yaml team Bulbasaur:10 Pikachu:10
//	pokedeck --collection cards.yaml team --interactive
//	pokedeck sort < cards.json
//
// The collection can also be named with POKEDECK_COLLECTION. Without it
// the collection is read from standard input.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amp-labs/pokedeck/config"
	"github.com/amp-labs/pokedeck/logger"
	"github.com/amp-labs/pokedeck/shutdown"
)

func main() {
	ctx := shutdown.SetupHandler(context.Background())

	// Applied here as well as in the commands so LOG_* from the env file
	// reach the logger.
	ctx, _, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	if _, err := logger.ConfigureLogging(ctx, "pokedeck"); err != nil {
		logger.Fatal("invalid logging configuration", "error", err)
	}

	shutdown.BeforeShutdown(func() {
		logger.Get(ctx).Info("stopping before the command finished")
	})

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "pokedeck:", err)
		os.Exit(1)
	}
}
