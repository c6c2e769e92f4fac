// internal/mission/types.go
//
// Values exchanged by the mission state machine.
// Defines:
//   - State:  Loading, Ready{planet, rover}, Failed{err}.
//   - Event:  what the interpreter observed (mission loaded, commands received, ...).
//   - Effect: work the interpreter must perform (load, ask, report).
//
// States, events and effects are plain values; nothing here performs I/O.

package mission

import (
	"fmt"

	"github.com/robalobadob/marsrover/internal/rover"
)

// State is one of Loading, Ready or Failed.
type State interface {
	isState()
}

// Loading is the initial state, waiting for the mission definition.
type Loading struct{}

// Ready holds a loaded mission. It self-transitions with the updated rover
// after each command batch.
type Ready struct {
	Planet rover.Planet
	Rover  rover.Rover
}

// Failed is terminal.
type Failed struct {
	Err error
}

func (Loading) isState() {}
func (Ready) isState()   {}
func (Failed) isState()  {}

// Event is produced by the interpreter and consumed by Update.
type Event interface {
	isEvent()
}

type LoadMissionSucceeded struct {
	Planet rover.Planet
	Rover  rover.Rover
}

type LoadMissionFailed struct {
	Err error
}

type CommandsReceived struct {
	Commands []rover.Command
}

// CommandsFailed reports that the commands source could not deliver a batch.
type CommandsFailed struct {
	Err error
}

func (LoadMissionSucceeded) isEvent() {}
func (LoadMissionFailed) isEvent()    {}
func (CommandsReceived) isEvent()     {}
func (CommandsFailed) isEvent()       {}

// Effect describes external work. Kind is a stable snake_case name used
// for logs and metrics.
type Effect interface {
	Kind() string
}

// LoadMission asks for the planet and rover identified by the two refs.
// What a ref means (file path, catalog name, inline text) is up to the
// MissionSource.
type LoadMission struct {
	PlanetRef string
	RoverRef  string
}

type AskCommands struct{}

type ReportObstacleDetected struct {
	Rover rover.Rover
}

type ReportSequenceCompleted struct {
	Rover rover.Rover
}

type ReportError struct {
	Err error
}

func (LoadMission) Kind() string             { return "load_mission" }
func (AskCommands) Kind() string             { return "ask_commands" }
func (ReportObstacleDetected) Kind() string  { return "report_obstacle_detected" }
func (ReportSequenceCompleted) Kind() string { return "report_sequence_completed" }
func (ReportError) Kind() string             { return "report_error" }

// stateName and eventName render values for logs and the fallback error.
func stateName(s State) string {
	switch s.(type) {
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("%T", s)
}

func eventName(e Event) string {
	switch e.(type) {
	case LoadMissionSucceeded:
		return "LoadMissionSucceeded"
	case LoadMissionFailed:
		return "LoadMissionFailed"
	case CommandsReceived:
		return "CommandsReceived"
	case CommandsFailed:
		return "CommandsFailed"
	}
	return fmt.Sprintf("%T", e)
}
