// internal/store/store.go
//
// Mission catalog: named planet and rover definitions in their text form.
// Implementations:
//   - Memory (memory.go): map-backed, seeded at startup.
//   - SQLite (sqlite.go): read from a database file.
//
// The catalog only holds inputs; mission runs never write to it.

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ErrNotFound is returned for unknown names.
var ErrNotFound = errors.New("not found")

// Catalog looks up definitions by name.
type Catalog interface {
	// Planet returns the planet definition text ("5x4\n2,0 0,3").
	Planet(ctx context.Context, name string) (string, error)

	// Rover returns the rover definition text ("0,0\nN").
	Rover(ctx context.Context, name string) (string, error)
}

// Writer adds definitions; used to seed a catalog.
type Writer interface {
	PutPlanet(ctx context.Context, name, definition string) error
	PutRover(ctx context.Context, name, definition string) error
}

// Seed loads every "*.planet" and "*.rover" file at the root of fsys into
// w, named after the file without its extension. Returns the number of
// definitions loaded.
func Seed(ctx context.Context, w Writer, fsys fs.FS) (int, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return 0, fmt.Errorf("read catalog dir: %w", err)
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		name := strings.TrimSuffix(e.Name(), ext)
		var put func(context.Context, string, string) error
		switch ext {
		case ".planet":
			put = w.PutPlanet
		case ".rover":
			put = w.PutRover
		default:
			continue
		}
		b, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return n, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		if err := put(ctx, name, string(b)); err != nil {
			return n, fmt.Errorf("store %s: %w", e.Name(), err)
		}
		n++
	}
	return n, nil
}

func notFound(kind, name string) error {
	return fmt.Errorf("%s %q: %w", kind, name, ErrNotFound)
}
