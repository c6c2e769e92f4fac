package adapters

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/marsrover/internal/parse"
	"github.com/robalobadob/marsrover/internal/rover"
)

// ErrNoCommands is returned when the reader is exhausted before a line.
var ErrNoCommands = errors.New("no commands received")

// ReaderCommands reads one line of commands, e.g. from stdin. If Prompt is
// set it is written before reading.
type ReaderCommands struct {
	In     io.Reader
	Prompt io.Writer
	Text   string
}

func (c ReaderCommands) ReadCommands(ctx context.Context) ([]rover.Command, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.Prompt != nil {
		text := c.Text
		if text == "" {
			text = "Insert commands (R L F B): "
		}
		if _, err := fmt.Fprint(c.Prompt, text); err != nil {
			return nil, fmt.Errorf("write prompt: %w", err)
		}
	}

	// No line length limit.
	line, err := bufio.NewReader(c.In).ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		if line == "" {
			return nil, ErrNoCommands
		}
	case err != nil:
		return nil, fmt.Errorf("read commands: %w", err)
	}
	return parse.Commands(strings.TrimRight(line, "\r\n"))
}

// StaticCommands delivers a fixed command string.
type StaticCommands string

func (c StaticCommands) ReadCommands(ctx context.Context) ([]rover.Command, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return parse.Commands(string(c))
}
