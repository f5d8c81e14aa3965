package measure

import "fmt"

// ErrInvalidOrientation is returned for orientation codes outside 0-3.
// Invalid codes indicate a caller bug, so they fail hard instead of
// defaulting.
var ErrInvalidOrientation = fmt.Errorf("axis orientation must be one of 0-3")

// AxisOrientation selects one of four fixed conventions for mapping the raw
// pixel delta to labeled real-world X/Y axes. The codes match the axis
// diagrams shown during calibration, in order.
type AxisOrientation int

const (
	OrientationDefault  AxisOrientation = 0 // X right, Y down
	OrientationRotated  AxisOrientation = 1 // axes swapped, both flipped
	OrientationMirrored AxisOrientation = 2 // Y flipped
	OrientationSwapped  AxisOrientation = 3 // axes swapped
)

// Valid reports whether o is one of the four defined codes.
func (o AxisOrientation) Valid() bool {
	return o >= 0 && o <= 3
}

// ResolveAxisDelta computes the raw pixel delta (target - implement) and
// remaps it to real-world axes according to the orientation convention.
func ResolveAxisDelta(target, implement Point, orientation AxisOrientation) (float64, float64, error) {
	if !orientation.Valid() {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidOrientation, orientation)
	}

	dx := target.X - implement.X
	dy := target.Y - implement.Y

	switch orientation {
	case OrientationDefault:
		dx = -dx
	case OrientationRotated:
		dx, dy = -dy, -dx
	case OrientationMirrored:
		dy = -dy
	case OrientationSwapped:
		dx, dy = dy, dx
	}
	return dx, dy, nil
}
