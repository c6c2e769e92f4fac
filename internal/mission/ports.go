// internal/mission/ports.go
//
// Interfaces the interpreter talks to. Implementations live in internal/adapters.

package mission

import (
	"context"

	"github.com/robalobadob/marsrover/internal/rover"
)

// MissionSource loads the planet and rover definitions.
type MissionSource interface {
	ReadPlanet(ctx context.Context, ref string) (rover.Planet, error)
	ReadRover(ctx context.Context, ref string) (rover.Rover, error)
}

// CommandsChannel delivers one batch of commands.
type CommandsChannel interface {
	ReadCommands(ctx context.Context) ([]rover.Command, error)
}

// MissionReport publishes the single outcome of a mission.
type MissionReport interface {
	SequenceCompleted(ctx context.Context, r rover.Rover) error
	ObstacleDetected(ctx context.Context, r rover.Rover) error
	MissionFailed(ctx context.Context, err error) error
}
