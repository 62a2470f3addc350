package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/pokedeck/logger"
	"github.com/amp-labs/pokedeck/pokemon"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search NAME LEVEL",
		Short: "Print the index of a card in the sorted collection",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: level %q is not a number", pokemon.ErrBadKey, args[1])
			}

			collection, err := a.load(cmd)
			if err != nil {
				return err
			}

			// Same normalization as deck.Load, or decomposed spellings miss.
			key := pokemon.Key{Name: norm.NFC.String(strings.TrimSpace(args[0])), Level: level}

			idx, ok := pokemon.Search(collection, key.Name, key.Level).Get()
			if !ok {
				return fmt.Errorf("%s: %w", key, pokemon.ErrNotFound)
			}

			logger.Get(cmd.Context()).Debug("card found",
				"key", key.String(), "index", idx, "collection_size", len(collection))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", idx, collection[idx])

			return err
		},
	}
}
