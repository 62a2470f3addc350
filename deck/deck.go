// Package deck reads collections from, and writes teams to, YAML or JSON
// documents. A document is a list of cards:
//
//	- name: Bulbasaur
//	  level: 10
//	  type: grass
//	- name: Pikachu
//	  level: 10
//
// The type is optional. Names are normalized to Unicode NFC so that
// visually identical names compare equal.
package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	perrors "github.com/amp-labs/pokedeck/errors"
	"github.com/amp-labs/pokedeck/pokemon"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDeck is returned when some records cannot be turned into cards.
	ErrInvalidDeck = errors.New("invalid deck")

	// ErrTrailingData is returned when a JSON deck has more after its list.
	ErrTrailingData = errors.New("unexpected data after the deck")
)

type record struct {
	Name  string `json:"name"           yaml:"name"`
	Level int    `json:"level"          yaml:"level"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

func (r record) toPokemon() (pokemon.Pokemon, error) {
	var opts []pokemon.Option

	if r.Type != "" {
		t, err := pokemon.ParseType(r.Type)
		if err != nil {
			return pokemon.Pokemon{}, err
		}

		opts = append(opts, pokemon.WithType(t))
	}

	p := pokemon.New(norm.NFC.String(strings.TrimSpace(r.Name)), r.Level, opts...)

	return p, p.Validate()
}

func fromPokemon(p pokemon.Pokemon) record {
	rec := record{Name: p.Name, Level: p.Level}

	if t, ok := p.Type.Get(); ok {
		rec.Type = strings.ToLower(t.String())
	}

	return rec
}

func decode(r io.Reader, format Format) ([]record, error) {
	var records []record

	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)

		if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml deck: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()

		if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding json deck: %w", err)
		}

		// A deck is exactly one list.
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding json deck: %w", ErrTrailingData)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return records, nil
}

// Load reads a collection and returns it sorted, ready to be searched.
// Every bad record is reported, each prefixed with its position.
// An empty document is an empty collection.
func Load(r io.Reader, format Format) ([]pokemon.Pokemon, error) {
	records, err := decode(r, format)
	if err != nil {
		return nil, err
	}

	collection := make([]pokemon.Pokemon, 0, len(records))

	var errs perrors.Collection

	for i, rec := range records {
		p, err := rec.toPokemon()
		if err != nil {
			errs.Addf(err, "record %d (%q)", i, rec.Name)

			continue
		}

		collection = append(collection, p)
	}

	if errs.HasError() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeck, errs.GetError())
	}

	pokemon.Sort(collection)

	return collection, nil
}

// LoadFile is Load with the format taken from the file extension.
func LoadFile(path string) ([]pokemon.Pokemon, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) // #nosec G304 -- the caller names the deck to read
	if err != nil {
		return nil, err
	}

	defer f.Close() //nolint:errcheck

	return Load(f, format)
}

// Write encodes cards in the given format, in the order given.
func Write(w io.Writer, cards []pokemon.Pokemon, format Format) error {
	records := make([]record, 0, len(cards))
	for _, p := range cards {
		records = append(records, fromPokemon(p))
	}

	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(records); err != nil {
			return err
		}

		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
