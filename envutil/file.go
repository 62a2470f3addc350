package envutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile loads variables from a file. The format follows the extension:
//   - .env: KEY=VALUE lines, parsed by godotenv (comments, quotes, export)
//   - .json: an object with an "env" field of string pairs
//   - .yml/.yaml: a mapping with an "env" field of string pairs
//
// Example YAML file:
//
//	env:
//	  POKEDECK_COLLECTION: ./cards.yaml
//	  LOG_LEVEL: debug
func LoadEnvFile(path string) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".env":
		return godotenv.Read(path)
	case ".json":
		return loadStructured(path, json.Unmarshal)
	case ".yml", ".yaml":
		return loadStructured(path, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}
}

// envFile is the shape shared by the JSON and YAML formats.
type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadStructured(path string, unmarshal func([]byte, any) error) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile

	if err := unmarshal(bts, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return out.Env, nil
}

// WithEnvFile loads path and returns a context in which its variables
// override the process environment.
func WithEnvFile(ctx context.Context, path string) (context.Context, error) {
	vars, err := LoadEnvFile(path)
	if err != nil {
		return ctx, err
	}

	return WithEnvOverrides(ctx, vars), nil
}
