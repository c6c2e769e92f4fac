// internal/mission/interpreter.go
//
// Interpreter performs mission effects against the three ports.
// Responsibilities:
//   - LoadMission: read planet and rover concurrently; both must succeed
//     and the rover must start on the grid.
//   - AskCommands: read one command batch.
//   - Report*: publish the outcome, then stop the loop.
//
// Notes:
//   - When both reads fail the planet error wins, so the reported error
//     does not depend on goroutine timing.
//   - Timeout bounds each effect; zero disables it.

package mission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	mlog "github.com/robalobadob/marsrover/internal/log"
	"github.com/robalobadob/marsrover/internal/metrics"
	"github.com/robalobadob/marsrover/internal/rover"
)

// ErrRoverOffGrid is wrapped by the load failure for a rover whose start
// position lies outside the planet.
var ErrRoverOffGrid = errors.New("rover starts outside the planet")

// Interpreter wires the ports used by a mission run.
type Interpreter struct {
	Source   MissionSource
	Commands CommandsChannel
	Report   MissionReport
	Timeout  time.Duration
}

// Interpret performs eff. It returns the resulting event and true, or
// false once a report has been published.
func (in *Interpreter) Interpret(ctx context.Context, eff Effect) (Event, bool) {
	metrics.RecordEffect(eff.Kind())
	if in.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, in.Timeout)
		defer cancel()
	}

	switch e := eff.(type) {
	case LoadMission:
		return in.loadMission(ctx, e), true
	case AskCommands:
		cmds, err := in.Commands.ReadCommands(ctx)
		if err != nil {
			return CommandsFailed{Err: err}, true
		}
		metrics.CommandsTotal.Add(float64(len(cmds)))
		return CommandsReceived{Commands: cmds}, true
	case ReportSequenceCompleted:
		in.publish(ctx, e, metrics.OutcomeCompleted, in.Report.SequenceCompleted(ctx, e.Rover))
	case ReportObstacleDetected:
		in.publish(ctx, e, metrics.OutcomeObstacle, in.Report.ObstacleDetected(ctx, e.Rover))
	case ReportError:
		logger := mlog.WithContext(ctx, mlog.WithComponent("mission"))
		logger.Warn().Err(e.Err).Msg("mission failed")
		in.publish(ctx, e, metrics.OutcomeFailed, in.Report.MissionFailed(ctx, e.Err))
	default:
		logger := mlog.WithContext(ctx, mlog.WithComponent("mission"))
		logger.Error().Str("effect", eff.Kind()).Msg("unknown effect, stopping")
	}
	return nil, false
}

func (in *Interpreter) loadMission(ctx context.Context, e LoadMission) Event {
	var (
		g                   errgroup.Group
		planet              rover.Planet
		rv                  rover.Rover
		planetErr, roverErr error
	)
	g.Go(func() error {
		planet, planetErr = in.Source.ReadPlanet(ctx, e.PlanetRef)
		return planetErr
	})
	g.Go(func() error {
		rv, roverErr = in.Source.ReadRover(ctx, e.RoverRef)
		return roverErr
	})
	_ = g.Wait()

	switch {
	case planetErr != nil:
		return LoadMissionFailed{Err: planetErr}
	case roverErr != nil:
		return LoadMissionFailed{Err: roverErr}
	case !planet.Size.Contains(rv.Position):
		return LoadMissionFailed{Err: fmt.Errorf("%w: %d,%d on a %dx%d grid",
			ErrRoverOffGrid, rv.Position.X, rv.Position.Y, planet.Size.Width, planet.Size.Height)}
	}
	return LoadMissionSucceeded{Planet: planet, Rover: rv}
}

// publish records the outcome; a failed write is logged, never retried.
func (in *Interpreter) publish(ctx context.Context, eff Effect, outcome string, err error) {
	metrics.RecordOutcome(outcome)
	if err != nil {
		logger := mlog.WithContext(ctx, mlog.WithComponent("mission"))
		logger.Error().Err(err).Str("effect", eff.Kind()).Msg("report failed")
	}
}
