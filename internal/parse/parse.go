// internal/parse/parse.go
//
// Entry points for the mission text formats.
// Responsibilities:
//   - Validate each line and convert it into rover values.
//   - Combine lines into a Planet or a Rover.

// Package parse reads the text formats used to describe a mission:
//
//	planet:   "WIDTHxHEIGHT" and "x,y x,y ..." (obstacles)
//	rover:    "x,y" and a heading letter N, E, S or W
//	commands: one letter per command, R L F B, case-insensitive
//
// Every failure is an *Error carrying the offending input.
package parse

import (
	"fmt"
	"math"
	"strings"

	"github.com/robalobadob/marsrover/internal/rover"
)

// MaxSide is the largest accepted grid width or height.
const MaxSide = math.MaxInt32

// Size parses "WIDTHxHEIGHT". Both dimensions must be positive and at most MaxSide.
func Size(s string) (rover.Size, error) {
	if strings.TrimSpace(s) == "" {
		return rover.Size{}, newError(InvalidSize, s, "empty input")
	}
	ast, err := sizeParser.ParseString("size", s)
	if err != nil {
		return rover.Size{}, fromGrammar(InvalidSize, s, err)
	}
	if ast.Width <= 0 || ast.Height <= 0 {
		return rover.Size{}, newError(InvalidSize, s, "width and height must be positive")
	}
	if ast.Width > MaxSide || ast.Height > MaxSide {
		return rover.Size{}, newError(InvalidSize, s, fmt.Sprintf("width and height must be at most %d", MaxSide))
	}
	return rover.Size{Width: ast.Width, Height: ast.Height}, nil
}

// Obstacles parses a space-separated list of "x,y" pairs. An empty line
// means no obstacles.
func Obstacles(s string) ([]rover.Obstacle, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	ast, err := obstaclesParser.ParseString("obstacles", s)
	if err != nil {
		return nil, fromGrammar(InvalidObstacle, s, err)
	}
	out := make([]rover.Obstacle, 0, len(ast.Pairs))
	for _, p := range ast.Pairs {
		out = append(out, rover.Obstacle{Position: rover.Position{X: p.X, Y: p.Y}})
	}
	return out, nil
}

// Position parses a single "x,y" pair.
func Position(s string) (rover.Position, error) {
	if strings.TrimSpace(s) == "" {
		return rover.Position{}, newError(InvalidPosition, s, "empty input")
	}
	ast, err := pairParser.ParseString("position", s)
	if err != nil {
		return rover.Position{}, fromGrammar(InvalidPosition, s, err)
	}
	return rover.Position{X: ast.X, Y: ast.Y}, nil
}

// Heading parses one of N, E, S, W (case-insensitive).
func Heading(s string) (rover.Heading, error) {
	if strings.TrimSpace(s) == "" {
		return 0, newError(InvalidDirection, s, "empty input")
	}
	ast, err := headingParser.ParseString("heading", s)
	if err != nil {
		return 0, fromGrammar(InvalidDirection, s, err)
	}
	switch strings.ToUpper(ast.Letter) {
	case "N":
		return rover.North, nil
	case "E":
		return rover.East, nil
	case "S":
		return rover.South, nil
	case "W":
		return rover.West, nil
	}
	return 0, newError(InvalidDirection, s, "expected one of N, E, S, W")
}

// Commands parses a command string such as "RFFlb". Blank input yields an
// empty sequence.
func Commands(s string) ([]rover.Command, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	ast, err := commandsParser.ParseString("commands", s)
	if err != nil {
		return nil, fromGrammar(InvalidCommand, s, err)
	}
	out := make([]rover.Command, 0, len(ast.Letters))
	for _, l := range ast.Letters {
		cmd, ok := commandLetters[strings.ToUpper(l)]
		if !ok {
			return nil, newError(InvalidCommand, l, "expected one of R, L, F, B")
		}
		out = append(out, cmd)
	}
	return out, nil
}

var commandLetters = map[string]rover.Command{
	"R": rover.TurnRight,
	"L": rover.TurnLeft,
	"F": rover.MoveForward,
	"B": rover.MoveBackward,
}

// Planet combines the size line and the obstacle line. Every obstacle
// must lie on the grid.
func Planet(sizeLine, obstaclesLine string) (rover.Planet, error) {
	size, err := Size(sizeLine)
	if err != nil {
		return rover.Planet{}, err
	}
	obstacles, err := Obstacles(obstaclesLine)
	if err != nil {
		return rover.Planet{}, err
	}
	for _, o := range obstacles {
		if !size.Contains(o.Position) {
			return rover.Planet{}, newError(InvalidObstacle, fmt.Sprintf("%d,%d", o.Position.X, o.Position.Y),
				fmt.Sprintf("outside the %dx%d grid", size.Width, size.Height))
		}
	}
	return rover.NewPlanet(size, obstacles...), nil
}

// Rover combines the position line and the heading line.
func Rover(positionLine, headingLine string) (rover.Rover, error) {
	pos, err := Position(positionLine)
	if err != nil {
		return rover.Rover{}, err
	}
	h, err := Heading(headingLine)
	if err != nil {
		return rover.Rover{}, err
	}
	return rover.Rover{Position: pos, Heading: h}, nil
}
