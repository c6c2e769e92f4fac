package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/marsrover/internal/rover"
)

func TestSize(t *testing.T) {
	got, err := Size("5x4")
	require.NoError(t, err)
	assert.Equal(t, rover.Size{Width: 5, Height: 4}, got)

	got, err = Size(" 10X3 ")
	require.NoError(t, err)
	assert.Equal(t, rover.Size{Width: 10, Height: 3}, got)
}

func TestSize_Invalid(t *testing.T) {
	for _, in := range []string{"", "5", "5x", "x4", "5x4x3", "0x4", "5x0", "-5x4", "ax4", "5,4"} {
		_, err := Size(in)
		var perr *Error
		require.ErrorAs(t, err, &perr, in)
		assert.Equal(t, InvalidSize, perr.Kind, in)
		assert.Equal(t, in, perr.Input, in)
	}
}

func TestObstacles(t *testing.T) {
	got, err := Obstacles("2,0 0,3")
	require.NoError(t, err)
	assert.Equal(t, []rover.Obstacle{
		{Position: rover.Position{X: 2, Y: 0}},
		{Position: rover.Position{X: 0, Y: 3}},
	}, got)

	got, err = Obstacles("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestObstacles_Invalid(t *testing.T) {
	for _, in := range []string{"2,", "2,0 3", "a,b", "2;0", "1,1,1"} {
		_, err := Obstacles(in)
		assert.ErrorIs(t, err, &Error{Kind: InvalidObstacle}, in)
	}
}

func TestPosition(t *testing.T) {
	got, err := Position("1,2")
	require.NoError(t, err)
	assert.Equal(t, rover.Position{X: 1, Y: 2}, got)

	for _, in := range []string{"", "1", "1,2 3,4", "-1,2", "N"} {
		_, err := Position(in)
		assert.ErrorIs(t, err, &Error{Kind: InvalidPosition}, in)
	}
}

func TestHeading(t *testing.T) {
	for in, want := range map[string]rover.Heading{
		"N": rover.North, "e": rover.East, "S": rover.South, "w": rover.West,
	} {
		got, err := Heading(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "Q", "NE", "North", "1", "x"} {
		_, err := Heading(in)
		assert.ErrorIs(t, err, &Error{Kind: InvalidDirection}, in)
	}
}

func TestCommands(t *testing.T) {
	got, err := Commands("RLfb\n")
	require.NoError(t, err)
	assert.Equal(t, []rover.Command{rover.TurnRight, rover.TurnLeft, rover.MoveForward, rover.MoveBackward}, got)

	got, err = Commands("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCommands_InvalidCarriesLetter(t *testing.T) {
	_, err := Commands("FFXF")

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, InvalidCommand, perr.Kind)
	assert.Equal(t, "X", perr.Input)
	assert.Equal(t, `invalid command "X": expected one of R, L, F, B`, err.Error())
}

func TestPlanet(t *testing.T) {
	p, err := Planet("5x4", "2,0")
	require.NoError(t, err)
	assert.Equal(t, rover.Size{Width: 5, Height: 4}, p.Size)
	assert.True(t, p.HasObstacle(rover.Position{X: 2, Y: 0}))

	_, err = Planet("5x4", "2")
	assert.ErrorIs(t, err, &Error{Kind: InvalidObstacle})

	_, err = Planet("nope", "2,0")
	assert.ErrorIs(t, err, &Error{Kind: InvalidSize})
}

func TestSize_TooLarge(t *testing.T) {
	for _, in := range []string{"9223372036854775807x4", "4x2147483648", "99999999999999999999x4"} {
		_, err := Size(in)
		assert.ErrorIs(t, err, &Error{Kind: InvalidSize}, in)
	}

	got, err := Size("2147483647x4")
	require.NoError(t, err)
	assert.Equal(t, MaxSide, got.Width)
}

func TestPlanet_ObstacleOutsideGrid(t *testing.T) {
	for _, line := range []string{"5,0", "0,4", "1,1 9,9"} {
		_, err := Planet("5x4", line)
		var perr *Error
		require.ErrorAs(t, err, &perr, line)
		assert.Equal(t, InvalidObstacle, perr.Kind, line)
	}
}

func TestRover(t *testing.T) {
	r, err := Rover("0,3", "N")
	require.NoError(t, err)
	assert.Equal(t, rover.New(0, 3, rover.North), r)

	_, err = Rover("0,3", "Z")
	assert.ErrorIs(t, err, &Error{Kind: InvalidDirection})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "invalid size", InvalidSize.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
