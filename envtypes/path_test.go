package envtypes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPath_Exists(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0o600))

	info, err := os.Stat(file)
	require.NoError(t, err)

	assert.True(t, LocalPath{Path: file, Info: info}.Exists())
	assert.False(t, LocalPath{Path: file + ".missing"}.Exists())
}
