// Package adapters implements the mission ports: mission sources backed
// by files, inline text or the catalog, command channels, and reports.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/robalobadob/marsrover/internal/parse"
	"github.com/robalobadob/marsrover/internal/rover"
)

// FileContentError reports a definition with the wrong number of lines.
type FileContentError struct {
	Name string
	Want string
	Got  int
}

func (e *FileContentError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %d", e.Name, e.Want, e.Got)
}

// lines splits a definition, ignoring \r and trailing blank lines.
func lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// PlanetFromText parses a planet definition: a size line, optionally
// followed by an obstacle line.
func PlanetFromText(name, text string) (rover.Planet, error) {
	ls := lines(text)
	switch len(ls) {
	case 1:
		return parse.Planet(ls[0], "")
	case 2:
		return parse.Planet(ls[0], ls[1])
	}
	return rover.Planet{}, &FileContentError{Name: name, Want: "1 or 2 lines", Got: len(ls)}
}

// RoverFromText parses a rover definition: a position line and a heading line.
func RoverFromText(name, text string) (rover.Rover, error) {
	ls := lines(text)
	if len(ls) != 2 {
		return rover.Rover{}, &FileContentError{Name: name, Want: "2 lines", Got: len(ls)}
	}
	return parse.Rover(ls[0], ls[1])
}

// InlineSource treats each ref as the definition text itself.
type InlineSource struct{}

func (InlineSource) ReadPlanet(ctx context.Context, text string) (rover.Planet, error) {
	if err := ctx.Err(); err != nil {
		return rover.Planet{}, err
	}
	return PlanetFromText("planet", text)
}

func (InlineSource) ReadRover(ctx context.Context, text string) (rover.Rover, error) {
	if err := ctx.Err(); err != nil {
		return rover.Rover{}, err
	}
	return RoverFromText("rover", text)
}
