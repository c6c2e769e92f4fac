package mission

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/marsrover/internal/rover"
)

type fakeSource struct {
	planet    rover.Planet
	rover     rover.Rover
	planetErr error
	roverErr  error
	delay     time.Duration

	mu   sync.Mutex
	refs []string
}

func (f *fakeSource) ReadPlanet(ctx context.Context, ref string) (rover.Planet, error) {
	f.record(ref)
	if err := f.wait(ctx); err != nil {
		return rover.Planet{}, err
	}
	return f.planet, f.planetErr
}

func (f *fakeSource) ReadRover(ctx context.Context, ref string) (rover.Rover, error) {
	f.record(ref)
	if err := f.wait(ctx); err != nil {
		return rover.Rover{}, err
	}
	return f.rover, f.roverErr
}

func (f *fakeSource) record(ref string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refs = append(f.refs, ref)
}

func (f *fakeSource) wait(ctx context.Context) error {
	if f.delay == 0 {
		return nil
	}
	select {
	case <-time.After(f.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type fakeCommands struct {
	cmds  []rover.Command
	err   error
	calls int
}

func (f *fakeCommands) ReadCommands(context.Context) ([]rover.Command, error) {
	f.calls++
	return f.cmds, f.err
}

type outcome struct {
	kind  string
	rover rover.Rover
	err   error
}

type fakeReport struct {
	outcomes []outcome
	fail     bool
}

var errReportDown = errors.New("report sink down")

func (f *fakeReport) SequenceCompleted(_ context.Context, r rover.Rover) error {
	f.outcomes = append(f.outcomes, outcome{kind: "completed", rover: r})
	return f.result()
}

func (f *fakeReport) ObstacleDetected(_ context.Context, r rover.Rover) error {
	f.outcomes = append(f.outcomes, outcome{kind: "obstacle", rover: r})
	return f.result()
}

func (f *fakeReport) MissionFailed(_ context.Context, err error) error {
	f.outcomes = append(f.outcomes, outcome{kind: "failed", err: err})
	return f.result()
}

func (f *fakeReport) result() error {
	if f.fail {
		return errReportDown
	}
	return nil
}
