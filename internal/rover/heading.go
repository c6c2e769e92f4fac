// internal/rover/heading.go
//
// Compass arithmetic for headings.
// Notes:
//   - Right and Left are inverse 90° rotations; Opposite is a 180° turn.
//   - UnitVector treats increasing y as North.

package rover

import "fmt"

// Right rotates 90° clockwise: N → E → S → W → N.
func (h Heading) Right() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	panic(unknownHeading(h))
}

// Left rotates 90° counter-clockwise; it is the inverse of Right.
func (h Heading) Left() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	}
	panic(unknownHeading(h))
}

// Opposite flips the heading by 180°. MoveBackward is MoveForward along
// the opposite heading.
func (h Heading) Opposite() Heading {
	switch h {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	panic(unknownHeading(h))
}

// UnitVector returns the one-cell displacement for h. Increasing y is
// forward when facing North.
func (h Heading) UnitVector() Position {
	switch h {
	case North:
		return Position{X: 0, Y: 1}
	case South:
		return Position{X: 0, Y: -1}
	case East:
		return Position{X: 1, Y: 0}
	case West:
		return Position{X: -1, Y: 0}
	}
	panic(unknownHeading(h))
}

// unreachable for values built through this package or internal/parse
func unknownHeading(h Heading) string {
	return fmt.Sprintf("rover: unknown heading %d", int(h))
}
