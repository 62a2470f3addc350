// Package config reads the pokedeck settings from the environment.
package config

import (
	"context"
	"fmt"

	"github.com/amp-labs/pokedeck/deck"
	"github.com/amp-labs/pokedeck/envtypes"
	"github.com/amp-labs/pokedeck/envutil"
	"github.com/amp-labs/pokedeck/optional"
)

const (
	// EnvFile names a .env, .json or .yaml file whose variables override
	// the process environment for everything below.
	EnvFile = "POKEDECK_ENV_FILE"

	// Collection is the deck to read. Standard input is used when unset.
	Collection = "POKEDECK_COLLECTION"

	// Format forces the deck format, yaml or json.
	Format = "POKEDECK_FORMAT"
)

type Config struct {
	Collection optional.Value[envtypes.LocalPath]
	Format     optional.Value[deck.Format]
}

// DeckFormat resolves the format to read the collection with: the explicit
// format if any, then the collection's extension, then YAML.
func (c Config) DeckFormat() deck.Format {
	if f, ok := c.Format.Get(); ok {
		return f
	}

	if path, ok := c.Collection.Get(); ok {
		if f, err := deck.FormatFromPath(path.Path); err == nil {
			return f
		}
	}

	return deck.YAML
}

// Load applies the env file, if one is named, and reads the settings. The
// returned context carries the env file's variables so later readers
// (the logger for instance) see them too.
func Load(ctx context.Context) (context.Context, Config, error) {
	var cfg Config

	envFile, err := envutil.FilePath(ctx, EnvFile).Optional()
	if err != nil {
		return ctx, cfg, err
	}

	if path, ok := envFile.Get(); ok {
		ctx, err = envutil.WithEnvFile(ctx, path.Path)
		if err != nil {
			return ctx, cfg, fmt.Errorf("loading %s: %w", EnvFile, err)
		}
	}

	cfg.Collection, err = envutil.FilePath(ctx, Collection).Optional()
	if err != nil {
		return ctx, cfg, err
	}

	cfg.Format, err = envutil.Map(envutil.String(ctx, Format), deck.ParseFormat).Optional()
	if err != nil {
		return ctx, cfg, err
	}

	return ctx, cfg, nil
}
