package adapters

import (
	"context"

	"github.com/robalobadob/marsrover/internal/rover"
	"github.com/robalobadob/marsrover/internal/store"
)

// CatalogSource resolves refs as names in a mission catalog.
type CatalogSource struct {
	Catalog store.Catalog
}

func (s CatalogSource) ReadPlanet(ctx context.Context, name string) (rover.Planet, error) {
	text, err := s.Catalog.Planet(ctx, name)
	if err != nil {
		return rover.Planet{}, err
	}
	return PlanetFromText("planet "+name, text)
}

func (s CatalogSource) ReadRover(ctx context.Context, name string) (rover.Rover, error) {
	text, err := s.Catalog.Rover(ctx, name)
	if err != nil {
		return rover.Rover{}, err
	}
	return RoverFromText("rover "+name, text)
}
