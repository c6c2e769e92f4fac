// Package assets embeds the built-in mission catalog: sample planet and
// rover definitions used when no catalog directory or database is
// configured.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed missions/*.planet missions/*.rover
var missions embed.FS

// Missions returns the embedded definitions rooted at the missions directory.
func Missions() fs.FS {
	sub, err := fs.Sub(missions, "missions")
	if err != nil {
		panic(err) // the directory is embedded above
	}
	return sub
}
