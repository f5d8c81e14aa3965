package measure

import (
	"errors"
	"math"
)

// ErrDegenerateCalibration is returned when both calibration points are the
// same pixel, making the scaling factor undefined. The user should reselect
// the two points.
var ErrDegenerateCalibration = errors.New("calibration points coincide: select two different points")

// Point is a clicked pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between a and b multiplied by
// scale. Pass scale 1 for a pure pixel distance.
func Distance(a, b Point, scale float64) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx+dy*dy) * scale
}

// DeriveScalingFactor computes real-world units per pixel from two
// calibration points a known realDistance apart. realDistance is assumed
// caller-validated as positive and finite.
func DeriveScalingFactor(realDistance float64, a, b Point) (float64, error) {
	pixelDistance := Distance(a, b, 1)
	if pixelDistance == 0 {
		return 0, ErrDegenerateCalibration
	}
	return realDistance / pixelDistance, nil
}

// TrialResult contains the displacement errors for one trial, each rounded
// to two decimal places as stored in the results file.
type TrialResult struct {
	Radial float64 `json:"radial"`
	X      float64 `json:"x_axis"`
	Y      float64 `json:"y_axis"`
}

// ComputeTrial computes the radial and axis-aligned real-world displacement
// between the target point and the implement point.
func ComputeTrial(target, implement Point, scale float64, orientation AxisOrientation) (*TrialResult, error) {
	dx, dy, err := ResolveAxisDelta(target, implement, orientation)
	if err != nil {
		return nil, err
	}
	return &TrialResult{
		Radial: round2(Distance(target, implement, scale)),
		X:      round2(dx * scale),
		Y:      round2(dy * scale),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
