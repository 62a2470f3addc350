// Package envtypes holds value types produced by the xform transformers.
package envtypes

import (
	"os"
)

// LocalPath represents a filesystem path with its associated file information.
// Info is nil when the path does not exist.
type LocalPath struct {
	Path string
	Info os.FileInfo
}

// Exists reports whether the path was found when it was stat'ed.
func (lp LocalPath) Exists() bool {
	return lp.Info != nil
}
