// internal/mission/update.go
//
// Pure transition function of the mission lifecycle.
// Notes:
//   - Update is total: unhandled (state, event) pairs end in Failed.

package mission

import (
	"errors"
	"fmt"

	"github.com/robalobadob/marsrover/internal/rover"
)

// ErrUnexpectedEvent is wrapped by the error reported when an event
// arrives in a state that does not handle it.
var ErrUnexpectedEvent = errors.New("cannot handle event in state")

// Init returns the initializer for m: start Loading and ask for the mission.
func Init(m Mission) func() (State, Effect) {
	return func() (State, Effect) {
		return Loading{}, LoadMission{PlanetRef: m.PlanetRef, RoverRef: m.RoverRef}
	}
}

// Update is the transition function of the mission lifecycle:
//
//	Loading + LoadMissionSucceeded → Ready,  AskCommands
//	Loading + LoadMissionFailed    → Failed, ReportError
//	Ready   + CommandsReceived     → Ready,  ReportObstacleDetected | ReportSequenceCompleted
//	Ready   + CommandsFailed       → Failed, ReportError
//	anything else                  → Failed, ReportError(ErrUnexpectedEvent)
func Update(s State, e Event) (State, Effect) {
	switch st := s.(type) {
	case Loading:
		switch ev := e.(type) {
		case LoadMissionSucceeded:
			return Ready{Planet: ev.Planet, Rover: ev.Rover}, AskCommands{}
		case LoadMissionFailed:
			return Failed{Err: ev.Err}, ReportError{Err: ev.Err}
		}
	case Ready:
		switch ev := e.(type) {
		case CommandsReceived:
			res := rover.ExecuteAll(st.Planet, st.Rover, ev.Commands)
			next := Ready{Planet: st.Planet, Rover: res.Rover}
			if res.Intercepted {
				return next, ReportObstacleDetected{Rover: res.Rover}
			}
			return next, ReportSequenceCompleted{Rover: res.Rover}
		case CommandsFailed:
			return Failed{Err: ev.Err}, ReportError{Err: ev.Err}
		}
	}
	err := fmt.Errorf("%w: %s in %s", ErrUnexpectedEvent, eventName(e), stateName(s))
	return Failed{Err: err}, ReportError{Err: err}
}
