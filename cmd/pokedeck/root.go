package main

import (
	"errors"
	"io"
	"os"

	"github.com/amp-labs/pokedeck/build"
	"github.com/amp-labs/pokedeck/config"
	"github.com/amp-labs/pokedeck/deck"
	"github.com/amp-labs/pokedeck/optional"
	"github.com/amp-labs/pokedeck/pokemon"
	"github.com/amp-labs/pokedeck/xform"
	"github.com/spf13/cobra"
)

// errNoCollection is returned when a command needs the collection to come
// from a file but none was named.
var errNoCollection = errors.New("no collection file given, use --collection or " + config.Collection)

// app holds what every subcommand shares: the flags on the root command
// and the configuration read before any of them runs.
type app struct {
	collection string
	format     string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pokedeck",
		Short: "Search a card collection and build teams from it",
		Long: `pokedeck reads a collection of cards (YAML or JSON, a list of name, level ` +
			`and optional type) and searches it or builds a team of up to ` +
			`six cards from it.`,
		Version:       build.Read().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.collection, "collection", "c", "",
		"collection file, overrides "+config.Collection+" (default: standard input)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "",
		"yaml or json, overrides "+config.Format+" (default: from the file extension, then yaml)")

	root.AddCommand(
		newSearchCmd(a),
		newTeamCmd(a),
		newSortCmd(a),
	)

	return root
}

// configure merges the flags over the environment.
func (a *app) configure(cmd *cobra.Command) error {
	ctx, cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}

	cmd.SetContext(ctx)

	if a.collection != "" {
		path, err := xform.Path(a.collection)
		if err != nil {
			return err
		}

		if path, err = xform.PathIsFile(path); err != nil {
			return err
		}

		cfg.Collection = optional.Some(path)
	}

	if a.format != "" {
		f, err := deck.ParseFormat(a.format)
		if err != nil {
			return err
		}

		cfg.Format = optional.Some(f)
	}

	a.cfg = cfg

	return nil
}

func (a *app) fromFile() bool {
	return a.cfg.Collection.NonEmpty()
}

// load reads the collection from the configured file, or from the
// command's input stream.
func (a *app) load(cmd *cobra.Command) ([]pokemon.Pokemon, error) {
	format := a.cfg.DeckFormat()

	path, ok := a.cfg.Collection.Get()
	if !ok {
		return deck.Load(cmd.InOrStdin(), format)
	}

	f, err := os.Open(path.Path)
	if err != nil {
		return nil, err
	}

	defer f.Close() //nolint:errcheck

	return deck.Load(f, format)
}

func (a *app) write(out io.Writer, cards []pokemon.Pokemon) error {
	return deck.Write(out, cards, a.cfg.DeckFormat())
}
