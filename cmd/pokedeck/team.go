package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/amp-labs/pokedeck/cli"
	perrors "github.com/amp-labs/pokedeck/errors"
	"github.com/amp-labs/pokedeck/logger"
	"github.com/amp-labs/pokedeck/pokemon"
	"github.com/amp-labs/pokedeck/roster"
	"github.com/amp-labs/pokedeck/try"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

// errRejected is returned after the team was written when some of the
// requested cards could not be added.
var errRejected = errors.New("some cards were not added")

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newTeamCmd(a *app) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "team [NAME:LEVEL...]",
		Short: "Build a team of up to six cards and print it",
		Long: `Adds each NAME:LEVEL card to a new team, in order, and prints the team. ` +
			`Cards that are missing from the collection, or that do not fit, are ` +
			`reported on standard error and the command exits non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}

			if interactive && !a.fromFile() {
				return fmt.Errorf("--interactive: %w", errNoCollection)
			}

			collection, err := a.load(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			r, err := roster.New(ctx, collection)
			if err != nil {
				return err
			}

			if interactive {
				picked, err := cli.SelectTeam(picker(cmd), r.Collection(), r.Remaining()-len(keys))
				if err != nil {
					return err
				}

				keys = append(keys, picked...)
			}

			results := r.AddAll(ctx, keys...)

			_, errs := try.Partition(results)
			for _, err := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), "skipped:", err) //nolint:errcheck
			}

			if species, err := r.Species(); err == nil {
				logger.Get(ctx).Debug("team built", "species", species, "rejected", len(errs))
			}

			if err := a.write(cmd.OutOrStdout(), r.Team()); err != nil {
				return err
			}

			if len(errs) > 0 {
				return fmt.Errorf("%w: %d of %d", errRejected, len(errs), len(results))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"pick further cards from a list (needs --collection)")

	return cmd
}

func parseKeys(args []string) ([]pokemon.Key, error) {
	keys := make([]pokemon.Key, 0, len(args))

	var errs perrors.Collection

	for _, arg := range args {
		key, err := pokemon.ParseKey(arg)
		errs.Add(err)

		// Decks are normalized on load, so keys typed by hand must be too.
		key.Name = norm.NFC.String(key.Name)
		keys = append(keys, key)
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return keys, nil
}

func picker(cmd *cobra.Command) cli.Picker {
	in, ok := cmd.InOrStdin().(io.ReadCloser)
	if !ok {
		in = io.NopCloser(cmd.InOrStdin())
	}

	// The team goes to stdout, so the list is drawn on stderr.
	out, ok := cmd.ErrOrStderr().(io.WriteCloser)
	if !ok {
		out = nopWriteCloser{cmd.ErrOrStderr()}
	}

	return cli.PromptPicker(in, out)
}
