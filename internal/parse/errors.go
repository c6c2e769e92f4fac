// internal/parse/errors.go
//
// Typed parse failures. Every error keeps the offending raw input.

package parse

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// Kind classifies malformed input.
type Kind int

const (
	InvalidSize Kind = iota + 1
	InvalidObstacle
	InvalidPosition
	InvalidDirection
	InvalidCommand
)

func (k Kind) String() string {
	switch k {
	case InvalidSize:
		return "invalid size"
	case InvalidObstacle:
		return "invalid obstacle"
	case InvalidPosition:
		return "invalid position"
	case InvalidDirection:
		return "invalid direction"
	case InvalidCommand:
		return "invalid command"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error wraps the offending raw input together with a readable message.
type Error struct {
	Kind  Kind
	Input string
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Input, e.Msg)
}

// Is matches any *Error of the same Kind, so callers can test with
// errors.Is(err, &parse.Error{Kind: parse.InvalidSize}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, input, msg string) *Error {
	return &Error{Kind: kind, Input: input, Msg: msg}
}

// fromGrammar converts a participle failure, keeping only its message.
func fromGrammar(kind Kind, input string, err error) *Error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return newError(kind, input, perr.Message())
	}
	return newError(kind, input, err.Error())
}
