// internal/rover/engine.go
//
// Command execution engine for a single rover.
// Responsibilities:
//   - Apply one command to a rover on a planet (Step).
//   - Fold a command sequence through Step, stopping at the first obstacle (ExecuteAll).
//
// Notes:
//   - Turning never collides, so turns skip the obstacle check.
//   - A blocked move leaves the rover exactly as it was (position and heading);
//     the obstacle's own position is never reported.
//   - Both functions are pure: no I/O, no shared state.

package rover

// StepResult is the outcome of Step or ExecuteAll: either the new rover
// state, or the rover state at the moment an obstacle stopped it.
type StepResult struct {
	Rover       Rover
	Intercepted bool
}

// Moved wraps a successful result.
func Moved(r Rover) StepResult { return StepResult{Rover: r} }

// ObstacleDetected wraps an interception carrying the rover before the blocked move.
func ObstacleDetected(r Rover) StepResult { return StepResult{Rover: r, Intercepted: true} }

// Step applies cmd to r on planet p.
func Step(p Planet, r Rover, cmd Command) StepResult {
	switch cmd {
	case TurnRight:
		return Moved(r.WithHeading(r.Heading.Right()))
	case TurnLeft:
		return Moved(r.WithHeading(r.Heading.Left()))
	case MoveForward:
		return move(p, r, r.Heading.UnitVector())
	case MoveBackward:
		return move(p, r, r.Heading.Opposite().UnitVector())
	}
	panic("rover: unknown command " + cmd.String())
}

// move computes the candidate cell and refuses it when blocked.
func move(p Planet, r Rover, delta Position) StepResult {
	next := r.Position.Advance(p.Size, delta)
	if p.HasObstacle(next) {
		return ObstacleDetected(r)
	}
	return Moved(r.WithPosition(next))
}

// ExecuteAll runs cmds left to right. Once a command is intercepted the
// remaining commands are skipped and the interception is the result.
func ExecuteAll(p Planet, r Rover, cmds []Command) StepResult {
	res := Moved(r)
	for _, cmd := range cmds {
		res = Step(p, res.Rover, cmd)
		if res.Intercepted {
			return res
		}
	}
	return res
}
