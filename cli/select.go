// Package cli holds the interactive pieces of the pokedeck command.
package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/amp-labs/pokedeck/hashing"
	"github.com/amp-labs/pokedeck/pokemon"
	"github.com/amp-labs/pokedeck/set"
	"github.com/manifoldco/promptui"
)

const done = "[Done]"

// Picker shows items and returns the chosen index and item.
type Picker func(label string, items []string) (int, string, error)

// PromptPicker returns a Picker backed by a promptui select list reading
// from in and drawing on out. Typing filters the list by prefix.
func PromptPicker(in io.ReadCloser, out io.WriteCloser) Picker {
	return func(label string, items []string) (int, string, error) {
		sel := &promptui.Select{
			Label: label,
			Items: items,
			Size:  10,
			Searcher: func(input string, index int) bool {
				if index == 0 || len(input) == 0 {
					return false
				}

				return strings.HasPrefix(strings.ToLower(items[index]), strings.ToLower(input))
			},
			Stdin:  in,
			Stdout: out,
		}

		return sel.Run()
	}
}

// SelectTeam lets the user pick up to remaining cards from collection.
// The same card may be picked more than once. Picking stops at "[Done]",
// when no slot is left, or when the prompt is interrupted (Ctrl-C / EOF),
// in which case the picks so far are returned.
func SelectTeam(pick Picker, collection []pokemon.Pokemon, remaining int) ([]pokemon.Key, error) {
	if len(collection) == 0 || remaining <= 0 {
		return nil, nil
	}

	cards := set.NewNames(hashing.Xxh3)
	for _, p := range collection {
		if _, err := cards.Add(p.Key().String()); err != nil {
			return nil, err
		}
	}

	items := append([]string{done}, cards.Natural()...)

	var picked []pokemon.Key

	for len(picked) < remaining {
		idx, value, err := pick("Add to team", items)
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				break
			}

			return picked, err
		}

		if idx == 0 {
			break
		}

		key, err := pokemon.ParseKey(value)
		if err != nil {
			return picked, err
		}

		picked = append(picked, key)
	}

	return picked, nil
}
