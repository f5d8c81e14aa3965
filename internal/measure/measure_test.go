package measure

import (
	"errors"
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Point
		scale float64
		want  float64
	}{
		{"same point", Point{50, 50}, Point{50, 50}, 1, 0},
		{"same point scaled", Point{50, 50}, Point{50, 50}, 3.5, 0},
		{"horizontal", Point{0, 10}, Point{100, 10}, 1, 100},
		{"vertical", Point{10, 0}, Point{10, 100}, 1, 100},
		{"3-4-5 triangle", Point{0, 0}, Point{3, 4}, 1, 5},
		{"3-4-5 scaled", Point{0, 0}, Point{3, 4}, 2, 10},
		{"diagonal", Point{0, 0}, Point{100, 100}, 1, 141.4213562373095},
		{"fractional coordinates", Point{0.5, 0.5}, Point{3.5, 4.5}, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b, tt.scale)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance_LinearInScale(t *testing.T) {
	a := Point{12.5, 88.25}
	b := Point{301.75, 17.5}
	base := Distance(a, b, 1)

	for _, scale := range []float64{0.01, 0.5, 1, 2.5, 1000} {
		got := Distance(a, b, scale)
		want := scale * base
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("scale %v: got %v, want %v", scale, got, want)
		}
	}
}

func TestDeriveScalingFactor(t *testing.T) {
	tests := []struct {
		name         string
		realDistance float64
		a, b         Point
		want         float64
		wantErr      bool
	}{
		{"vertical reference", 50, Point{100, 100}, Point{100, 200}, 0.5, false},
		{"horizontal reference", 100, Point{0, 0}, Point{200, 0}, 0.5, false},
		{"unit ratio", 5, Point{0, 0}, Point{3, 4}, 1, false},
		{"identical points", 50, Point{100, 100}, Point{100, 100}, 0, true},
		{"identical fractional points", 50, Point{10.25, 3.5}, Point{10.25, 3.5}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveScalingFactor(tt.realDistance, tt.a, tt.b)
			if tt.wantErr {
				if !errors.Is(err, ErrDegenerateCalibration) {
					t.Fatalf("expected ErrDegenerateCalibration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DeriveScalingFactor failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("scaling factor: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeTrial(t *testing.T) {
	tests := []struct {
		name              string
		target, implement Point
		scale             float64
		orientation       AxisOrientation
		wantRadial        float64
		wantX             float64
		wantY             float64
	}{
		// Calibration (100,100)-(100,200) over 50 real units gives scale 0.5.
		{
			"implement right of target",
			Point{100, 100}, Point{150, 100}, 0.5, OrientationDefault,
			25.00, 25.00, 0.00,
		},
		{
			"implement below target",
			Point{100, 100}, Point{100, 150}, 0.5, OrientationDefault,
			25.00, 0.00, -25.00,
		},
		{
			"perfect placement",
			Point{320, 240}, Point{320, 240}, 0.5, OrientationDefault,
			0.00, 0.00, 0.00,
		},
		{
			"rotated orientation swaps axes",
			Point{100, 100}, Point{150, 100}, 0.5, OrientationRotated,
			25.00, 0.00, 25.00,
		},
		{
			"rounds to two decimals",
			Point{0, 0}, Point{1, 1}, 1, OrientationMirrored,
			1.41, -1.00, 1.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTrial(tt.target, tt.implement, tt.scale, tt.orientation)
			if err != nil {
				t.Fatalf("ComputeTrial failed: %v", err)
			}
			if got.Radial != tt.wantRadial {
				t.Errorf("Radial: got %v, want %v", got.Radial, tt.wantRadial)
			}
			if got.X != tt.wantX {
				t.Errorf("X: got %v, want %v", got.X, tt.wantX)
			}
			if got.Y != tt.wantY {
				t.Errorf("Y: got %v, want %v", got.Y, tt.wantY)
			}
		})
	}
}

func TestComputeTrial_InvalidOrientation(t *testing.T) {
	for _, orientation := range []AxisOrientation{-1, 4, 99} {
		_, err := ComputeTrial(Point{0, 0}, Point{1, 1}, 1, orientation)
		if !errors.Is(err, ErrInvalidOrientation) {
			t.Errorf("orientation %d: expected ErrInvalidOrientation, got %v", orientation, err)
		}
	}
}

func TestMeasurementConstructors(t *testing.T) {
	m := Measured(&TrialResult{Radial: 1.5, X: -0.5, Y: 2})
	if m.Kind != KindMeasured || m.Radial != 1.5 || m.X != -0.5 || m.Y != 2 {
		t.Errorf("Measured: got %+v", m)
	}
	if NoImage().Kind != KindNoImage {
		t.Error("NoImage: wrong kind")
	}
	if OutOfBounds().Kind != KindOutOfBounds {
		t.Error("OutOfBounds: wrong kind")
	}
}
