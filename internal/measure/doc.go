// Package measure implements the measurement engine: deriving a
// pixel-to-real-world scaling factor from a calibration image and computing
// per-trial displacement errors from clicked point pairs.
//
// All functions are pure: no shared state, no side effects, safe to call
// repeatedly with the same inputs.
//
// # Coordinate System
//
// Points are raw pixel coordinates as reported by the image view: (0,0) at
// the top-left corner, X increasing rightward, Y increasing downward. Pixel
// coordinates carry no unit; they only become meaningful when combined with
// a scaling factor (real-world units per pixel).
//
// # Calibration
//
// A session is calibrated once by clicking two points a known real-world
// distance apart on a reference image. DeriveScalingFactor converts that
// into a scalar applied to every subsequent trial in the session. The
// scaling factor and axis orientation are immutable for the session;
// callers carry them through the trial loop as plain values.
//
// # Axis Orientation
//
// Because the subject may face any of four directions relative to the
// camera, the raw pixel delta (dx, dy) is remapped to labeled real-world
// X/Y axes by one of four fixed conventions:
//
//	0: (dx, dy) -> (-dx,  dy)
//	1: (dx, dy) -> (-dy, -dx)
//	2: (dx, dy) -> ( dx, -dy)
//	3: (dx, dy) -> ( dy,  dx)
//
// Each remap is a sign-flip/swap permutation, so no information is lost.
// Codes outside 0-3 are rejected with ErrInvalidOrientation.
//
// # Sentinels
//
// A trial can be intentionally unmeasured: the trial image may be missing,
// or the implement may land outside the valid measurement area. These are
// modeled as the NoImage and OutOfBounds variants of Measurement rather
// than overloading the numeric fields.
package measure
