// internal/rover/position.go
//
// Toroidal movement on the grid.
// Notes:
//   - Each axis wraps independently; leaving one edge re-enters at the opposite one.

package rover

// Wrap shifts value by delta on a ring of length limit. The result is a
// true modulo, always in [0, limit), also for negative intermediates:
// Wrap(0, 5, -1) == 4.
func Wrap(value, limit, delta int) int {
	r := (value + delta) % limit
	if r < 0 {
		r += limit
	}
	return r
}

// Advance moves p by delta on the torus described by size, wrapping each
// axis independently.
func (p Position) Advance(size Size, delta Position) Position {
	return Position{
		X: Wrap(p.X, size.Width, delta.X),
		Y: Wrap(p.Y, size.Height, delta.Y),
	}
}
