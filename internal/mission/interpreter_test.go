package mission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/robalobadob/marsrover/internal/rover"
)

func TestInterpret_LoadMissionSucceeded(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	src := &fakeSource{planet: grid, rover: start}
	in := &Interpreter{Source: src}

	ev, more := in.Interpret(context.Background(), LoadMission{PlanetRef: "p", RoverRef: "r"})

	require.True(t, more)
	assert.Equal(t, LoadMissionSucceeded{Planet: grid, Rover: start}, ev)
	assert.ElementsMatch(t, []string{"p", "r"}, src.refs)
}

func TestInterpret_LoadMissionPlanetErrorWins(t *testing.T) {
	planetErr := errors.New("planet broken")
	roverErr := errors.New("rover broken")
	in := &Interpreter{Source: &fakeSource{planetErr: planetErr, roverErr: roverErr}}

	for i := 0; i < 20; i++ {
		ev, more := in.Interpret(context.Background(), LoadMission{})
		require.True(t, more)
		assert.Equal(t, LoadMissionFailed{Err: planetErr}, ev)
	}
}

func TestInterpret_LoadMissionRoverError(t *testing.T) {
	roverErr := errors.New("rover broken")
	in := &Interpreter{Source: &fakeSource{planet: grid, roverErr: roverErr}}

	ev, _ := in.Interpret(context.Background(), LoadMission{})
	assert.Equal(t, LoadMissionFailed{Err: roverErr}, ev)
}

func TestInterpret_LoadMissionRoverOffGrid(t *testing.T) {
	in := &Interpreter{Source: &fakeSource{planet: grid, rover: rover.New(9, 9, rover.North)}}

	ev, more := in.Interpret(context.Background(), LoadMission{})

	require.True(t, more)
	failed, ok := ev.(LoadMissionFailed)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, ErrRoverOffGrid)
	assert.EqualError(t, failed.Err, "rover starts outside the planet: 9,9 on a 5x4 grid")
}

func TestInterpret_TimeoutBoundsEffect(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	in := &Interpreter{
		Source:  &fakeSource{planet: grid, rover: start, delay: time.Second},
		Timeout: 10 * time.Millisecond,
	}

	ev, more := in.Interpret(context.Background(), LoadMission{})

	require.True(t, more)
	failed, ok := ev.(LoadMissionFailed)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, context.DeadlineExceeded)
}

func TestInterpret_AskCommands(t *testing.T) {
	cmds := []rover.Command{rover.TurnLeft, rover.MoveForward}
	in := &Interpreter{Commands: &fakeCommands{cmds: cmds}}

	ev, more := in.Interpret(context.Background(), AskCommands{})

	require.True(t, more)
	assert.Equal(t, CommandsReceived{Commands: cmds}, ev)
}

func TestInterpret_AskCommandsFailure(t *testing.T) {
	boom := errors.New("eof")
	in := &Interpreter{Commands: &fakeCommands{err: boom}}

	ev, more := in.Interpret(context.Background(), AskCommands{})

	require.True(t, more)
	assert.Equal(t, CommandsFailed{Err: boom}, ev)
}

func TestInterpret_ReportsStopLoop(t *testing.T) {
	bad := errors.New("bad file")
	r := rover.New(1, 2, rover.West)
	rep := &fakeReport{}
	in := &Interpreter{Report: rep}

	for _, eff := range []Effect{ReportSequenceCompleted{Rover: r}, ReportObstacleDetected{Rover: r}, ReportError{Err: bad}} {
		ev, more := in.Interpret(context.Background(), eff)
		assert.False(t, more, eff.Kind())
		assert.Nil(t, ev, eff.Kind())
	}
	assert.Equal(t, []outcome{
		{kind: "completed", rover: r},
		{kind: "obstacle", rover: r},
		{kind: "failed", err: bad},
	}, rep.outcomes)
}

func TestInterpret_ReportFailureStillStops(t *testing.T) {
	in := &Interpreter{Report: &fakeReport{fail: true}}

	_, more := in.Interpret(context.Background(), ReportSequenceCompleted{Rover: start})
	assert.False(t, more)
}
