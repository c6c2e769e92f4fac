package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/robalobadob/marsrover/internal/rover"
)

// FileSource reads planet and rover definitions from files; refs are paths.
type FileSource struct{}

func (FileSource) ReadPlanet(ctx context.Context, path string) (rover.Planet, error) {
	text, err := readFile(ctx, path)
	if err != nil {
		return rover.Planet{}, err
	}
	return PlanetFromText(path, text)
}

func (FileSource) ReadRover(ctx context.Context, path string) (rover.Rover, error) {
	text, err := readFile(ctx, path)
	if err != nil {
		return rover.Rover{}, err
	}
	return RoverFromText(path, text)
}

func readFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
