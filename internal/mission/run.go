// internal/mission/run.go
//
// Runs one mission: Init, Update and the Interpreter driven by loop.Run.
// Notes:
//   - Each run carries a run id in its context for log correlation.

package mission

import (
	"context"
	"errors"

	"github.com/google/uuid"

	mlog "github.com/robalobadob/marsrover/internal/log"
	"github.com/robalobadob/marsrover/internal/loop"
)

// Mission names the planet and rover to load.
type Mission struct {
	PlanetRef string
	RoverRef  string
}

// Run drives one mission through the effect loop and returns the final
// state. A run id is attached to ctx for logging unless one is present.
func Run(ctx context.Context, m Mission, in *Interpreter) (State, error) {
	if mlog.RunIDFromContext(ctx) == "" {
		ctx = mlog.ContextWithRunID(ctx, uuid.NewString())
	}
	logger := mlog.WithContext(ctx, mlog.WithComponent("mission"))

	update := func(s State, e Event) (State, Effect) {
		next, eff := Update(s, e)
		logger.Debug().
			Str("from", stateName(s)).
			Str("event", eventName(e)).
			Str("to", stateName(next)).
			Str("effect", eff.Kind()).
			Msg("transition")
		if f, ok := next.(Failed); ok && errors.Is(f.Err, ErrUnexpectedEvent) {
			logger.Warn().Err(f.Err).Msg("protocol violation")
		}
		return next, eff
	}

	logger.Info().Str("planet", m.PlanetRef).Str("rover", m.RoverRef).Msg("mission started")
	final, err := loop.Run(ctx, loop.Program[State, Event, Effect]{
		Init:      Init(m),
		Update:    update,
		Interpret: in.Interpret,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("mission aborted")
		return final, err
	}
	logger.Info().Str("state", stateName(final)).Msg("mission finished")
	return final, nil
}
