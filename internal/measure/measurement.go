package measure

// Kind distinguishes a measured trial from the two intentionally-unmeasured
// states.
type Kind int

const (
	// KindMeasured means the trial produced numeric radial/x/y values.
	KindMeasured Kind = iota

	// KindNoImage means no trial image existed for this trial.
	KindNoImage

	// KindOutOfBounds means the implement landed outside the valid
	// measurement area.
	KindOutOfBounds
)

// Measurement is the outcome of one trial: either numeric displacement
// values or one of the sentinel states. The numeric fields are meaningful
// only when Kind is KindMeasured.
type Measurement struct {
	Kind   Kind    `json:"kind"`
	Radial float64 `json:"radial,omitempty"`
	X      float64 `json:"x_axis,omitempty"`
	Y      float64 `json:"y_axis,omitempty"`
}

// Measured wraps a trial result as a measurement.
func Measured(r *TrialResult) Measurement {
	return Measurement{Kind: KindMeasured, Radial: r.Radial, X: r.X, Y: r.Y}
}

// NoImage returns the "no trial image available" sentinel measurement.
func NoImage() Measurement {
	return Measurement{Kind: KindNoImage}
}

// OutOfBounds returns the "implement outside valid area" sentinel
// measurement.
func OutOfBounds() Measurement {
	return Measurement{Kind: KindOutOfBounds}
}
