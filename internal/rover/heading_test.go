package rover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeading_RightIsFourCycle(t *testing.T) {
	for _, h := range Headings {
		assert.Equal(t, h, h.Right().Right().Right().Right(), h.String())
	}
	assert.Equal(t, East, North.Right())
	assert.Equal(t, South, East.Right())
	assert.Equal(t, West, South.Right())
	assert.Equal(t, North, West.Right())
}

func TestHeading_LeftInvertsRight(t *testing.T) {
	for _, h := range Headings {
		assert.Equal(t, h, h.Right().Left(), h.String())
		assert.Equal(t, h, h.Left().Right(), h.String())
	}
}

func TestHeading_OppositeTwiceIsIdentity(t *testing.T) {
	for _, h := range Headings {
		assert.Equal(t, h, h.Opposite().Opposite(), h.String())
		assert.Equal(t, h.Right().Right(), h.Opposite(), h.String())
	}
}

func TestHeading_UnitVectors(t *testing.T) {
	assert.Equal(t, Position{X: 0, Y: 1}, North.UnitVector())
	assert.Equal(t, Position{X: 0, Y: -1}, South.UnitVector())
	assert.Equal(t, Position{X: 1, Y: 0}, East.UnitVector())
	assert.Equal(t, Position{X: -1, Y: 0}, West.UnitVector())
}

func TestHeading_UnknownPanics(t *testing.T) {
	bad := Heading(42)
	assert.Panics(t, func() { bad.Right() })
	assert.Panics(t, func() { bad.Left() })
	assert.Panics(t, func() { bad.Opposite() })
	assert.Panics(t, func() { bad.UnitVector() })
	assert.Equal(t, "Heading(42)", bad.String())
}
