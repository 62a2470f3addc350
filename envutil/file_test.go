package envutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoadEnvFile(t *testing.T) {
	t.Parallel()

	want := map[string]string{"LOG_LEVEL": "debug", "POKEDECK_FORMAT": "json"}

	tests := []struct {
		name     string
		file     string
		contents string
	}{
		{
			name:     "dotenv",
			file:     "pokedeck.env",
			contents: "# comment\nLOG_LEVEL=debug\nexport POKEDECK_FORMAT=\"json\"\n",
		},
		{
			name:     "bare dotenv",
			file:     ".env",
			contents: "LOG_LEVEL=debug\nPOKEDECK_FORMAT=json\n",
		},
		{
			name:     "json",
			file:     "pokedeck.json",
			contents: `{"env": {"LOG_LEVEL": "debug", "POKEDECK_FORMAT": "json"}}`,
		},
		{
			name:     "yaml",
			file:     "pokedeck.yaml",
			contents: "env:\n  LOG_LEVEL: debug\n  POKEDECK_FORMAT: json\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadEnvFile(writeFile(t, tt.file, tt.contents))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadEnvFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadEnvFile(writeFile(t, "pokedeck.toml", "x = 1"))
	require.ErrorIs(t, err, ErrUnknownFileType)

	_, err = LoadEnvFile(writeFile(t, "broken.json", "{"))
	require.Error(t, err)

	_, err = LoadEnvFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithEnvFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "pokedeck.yaml", "env:\n  POKEDECK_TEST_FROM_FILE: yes-please\n")

	ctx, err := WithEnvFile(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, "yes-please", String(ctx, "POKEDECK_TEST_FROM_FILE").ValueOrElse(""))

	same, err := WithEnvFile(ctx, path+".missing")
	require.Error(t, err)
	assert.Equal(t, ctx, same)
}
