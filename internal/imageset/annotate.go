package imageset

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phastlab/pinpoint-mcp/internal/measure"
)

// Marker geometry, matching the desktop front end's point markers.
const (
	markerRadius   = 6
	crossHalfWidth = 10
	penWidth       = 2
)

// Preview bounding box defaults.
const (
	previewMaxWidth  = 1600
	previewMaxHeight = 1200
)

// RenderResult contains a rendered image encoded as base64 PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview downscales an image to fit within maxW x maxH preserving aspect
// ratio. Non-positive limits fall back to the 1600x1200 default box.
// Images already inside the box are returned at original size.
func Preview(img image.Image, maxW, maxH int) (*RenderResult, error) {
	if maxW <= 0 {
		maxW = previewMaxWidth
	}
	if maxH <= 0 {
		maxH = previewMaxHeight
	}
	return encodePNG(imaging.Fit(img, maxW, maxH, imaging.Lanczos))
}

// AnnotateOptions controls marker rendering.
type AnnotateOptions struct {
	// MarkerColor is the hex pen color for outlines and the implement
	// cross. Default "#FF0000".
	MarkerColor string

	// TargetFill is the hex fill color of the target circle.
	// Default "#00FF00".
	TargetFill string

	// Scale resizes the rendered output (e.g. 0.5 to halve). Default 1.0.
	Scale float64
}

// Annotate draws the session's point markers onto a copy of the trial
// image: a filled circle centered on the target point and a cross at the
// implement point.
func Annotate(img image.Image, target, implement measure.Point, opts AnnotateOptions) (*RenderResult, error) {
	pen, err := parseHex(opts.MarkerColor, "#FF0000")
	if err != nil {
		return nil, fmt.Errorf("invalid marker color: %w", err)
	}
	fill, err := parseHex(opts.TargetFill, "#00FF00")
	if err != nil {
		return nil, fmt.Errorf("invalid target fill color: %w", err)
	}

	bounds := img.Bounds()
	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	drawCircle(result, int(target.X), int(target.Y), markerRadius, pen, fill)
	drawCross(result, int(implement.X), int(implement.Y), crossHalfWidth, pen)

	var out image.Image = result
	if opts.Scale > 0 && opts.Scale != 1.0 {
		w := int(float64(bounds.Dx()) * opts.Scale)
		h := int(float64(bounds.Dy()) * opts.Scale)
		out = transform.Resize(result, w, h, transform.Linear)
	}
	return encodePNG(out)
}

// parseHex parses a "#RRGGBB" color, substituting def for an empty string.
func parseHex(hex, def string) (color.RGBA, error) {
	if hex == "" {
		hex = def
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// drawCircle draws a filled circle with an outline, clipped to the image.
func drawCircle(img *image.RGBA, cx, cy, radius int, outline, fill color.RGBA) {
	rr := radius * radius
	inner := (radius - penWidth) * (radius - penWidth)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := dx*dx + dy*dy
			if d > rr {
				continue
			}
			c := fill
			if d >= inner {
				c = outline
			}
			setClipped(img, cx+dx, cy+dy, c)
		}
	}
}

// drawCross draws a penWidth-thick cross centered at (cx, cy).
func drawCross(img *image.RGBA, cx, cy, halfWidth int, c color.RGBA) {
	for t := 0; t < penWidth; t++ {
		for d := -halfWidth; d <= halfWidth; d++ {
			setClipped(img, cx+d, cy+t, c)
			setClipped(img, cx+t, cy+d, c)
		}
	}
}

func setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

func encodePNG(img image.Image) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	bounds := img.Bounds()
	return &RenderResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
