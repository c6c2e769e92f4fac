// internal/rover/types.go
//
// Core type definitions for the rover simulation.
// Defines:
//   - Heading: compass orientation (N/E/S/W).
//   - Position, Size: grid coordinates and toroidal dimensions.
//   - Planet: size plus a fixed set of obstacles.
//   - Rover: position plus heading, always handled by value.
//   - Command: one of the four rover instructions.

package rover

import "fmt"

// Heading is the compass orientation of a rover.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists every heading in clockwise order starting at North.
var Headings = [...]Heading{North, East, South, West}

// String renders the single-letter form used by the text formats ("N", "E", "S", "W").
func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// Position is a 0-indexed cell on the grid.
type Position struct {
	X int
	Y int
}

// Size holds the grid dimensions. Both must be positive; callers validate
// before constructing a Planet.
type Size struct {
	Width  int
	Height int
}

// Contains reports whether p lies on a grid of this size.
func (s Size) Contains(p Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Obstacle is a blocked cell.
type Obstacle struct {
	Position Position
}

// Planet is the immutable playing field for one mission.
type Planet struct {
	Size      Size
	Obstacles []Obstacle
}

// NewPlanet copies the obstacle list so later edits by the caller cannot
// leak into a running mission.
func NewPlanet(size Size, obstacles ...Obstacle) Planet {
	cp := make([]Obstacle, len(obstacles))
	copy(cp, obstacles)
	return Planet{Size: size, Obstacles: cp}
}

// HasObstacle reports whether p is blocked. Linear scan; obstacle fields
// are small.
func (pl Planet) HasObstacle(p Position) bool {
	for _, o := range pl.Obstacles {
		if o.Position == p {
			return true
		}
	}
	return false
}

// Rover is the vehicle state. Every command yields a new value.
type Rover struct {
	Position Position
	Heading  Heading
}

// New constructs a Rover at (x, y) facing h.
func New(x, y int, h Heading) Rover {
	return Rover{Position: Position{X: x, Y: y}, Heading: h}
}

// WithHeading returns a copy of r facing h.
func (r Rover) WithHeading(h Heading) Rover {
	r.Heading = h
	return r
}

// WithPosition returns a copy of r moved to p.
func (r Rover) WithPosition(p Position) Rover {
	r.Position = p
	return r
}

// Command is a single rover instruction.
type Command int

const (
	TurnRight Command = iota
	TurnLeft
	MoveForward
	MoveBackward
)

// Commands lists every command value.
var Commands = [...]Command{TurnRight, TurnLeft, MoveForward, MoveBackward}

func (c Command) String() string {
	switch c {
	case TurnRight:
		return "R"
	case TurnLeft:
		return "L"
	case MoveForward:
		return "F"
	case MoveBackward:
		return "B"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}
