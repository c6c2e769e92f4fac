package adapters

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/robalobadob/marsrover/internal/rover"
)

// FormatRover renders "x:y:H".
func FormatRover(r rover.Rover) string {
	return fmt.Sprintf("%d:%d:%s", r.Position.X, r.Position.Y, r.Heading)
}

// FormatObstacle renders "O:x:y:H" for a rover stopped by an obstacle.
func FormatObstacle(r rover.Rover) string {
	return "O:" + FormatRover(r)
}

// WriterReport prints the outcome as a single line.
type WriterReport struct {
	Out io.Writer
}

func (w WriterReport) SequenceCompleted(_ context.Context, r rover.Rover) error {
	_, err := fmt.Fprintln(w.Out, FormatRover(r))
	return err
}

func (w WriterReport) ObstacleDetected(_ context.Context, r rover.Rover) error {
	_, err := fmt.Fprintln(w.Out, FormatObstacle(r))
	return err
}

func (w WriterReport) MissionFailed(_ context.Context, err error) error {
	_, werr := fmt.Fprintln(w.Out, err.Error())
	return werr
}

// Outcome labels used by RecordingReport.
const (
	OutcomeCompleted = "completed"
	OutcomeObstacle  = "obstacle"
	OutcomeFailed    = "failed"
)

// RecordingReport keeps the outcome in memory for callers that render it
// themselves, such as the HTTP handlers.
type RecordingReport struct {
	mu      sync.Mutex
	outcome string
	line    string
	rover   *rover.Rover
	err     error
}

func (r *RecordingReport) SequenceCompleted(_ context.Context, rv rover.Rover) error {
	r.set(OutcomeCompleted, FormatRover(rv), &rv, nil)
	return nil
}

func (r *RecordingReport) ObstacleDetected(_ context.Context, rv rover.Rover) error {
	r.set(OutcomeObstacle, FormatObstacle(rv), &rv, nil)
	return nil
}

func (r *RecordingReport) MissionFailed(_ context.Context, err error) error {
	r.set(OutcomeFailed, err.Error(), nil, err)
	return nil
}

func (r *RecordingReport) set(outcome, line string, rv *rover.Rover, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcome, r.line, r.rover, r.err = outcome, line, rv, err
}

// Result returns the recorded outcome, its rendered line, the final rover
// (nil on failure) and the failure (nil otherwise). Outcome is "" if
// nothing was reported.
func (r *RecordingReport) Result() (outcome, line string, rv *rover.Rover, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome, r.line, r.rover, r.err
}
