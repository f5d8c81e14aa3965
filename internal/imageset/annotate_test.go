package imageset

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/phastlab/pinpoint-mcp/internal/measure"
)

// decodeRender decodes a render result's base64 PNG back into an image.
func decodeRender(t *testing.T, r *RenderResult) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

func whiteImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestPreview_DownscalesToDefaultBox(t *testing.T) {
	result, err := Preview(whiteImage(3200, 2400), 0, 0)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if result.Width != 1600 || result.Height != 1200 {
		t.Errorf("got %dx%d, want 1600x1200", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("mime type: got %q", result.MimeType)
	}
}

func TestPreview_KeepsSmallImages(t *testing.T) {
	result, err := Preview(whiteImage(320, 240), 0, 0)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if result.Width != 320 || result.Height != 240 {
		t.Errorf("got %dx%d, want 320x240", result.Width, result.Height)
	}
}

func TestPreview_CustomBoxPreservesAspect(t *testing.T) {
	result, err := Preview(whiteImage(1000, 500), 400, 400)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if result.Width != 400 || result.Height != 200 {
		t.Errorf("got %dx%d, want 400x200", result.Width, result.Height)
	}
}

func TestAnnotate_DrawsMarkers(t *testing.T) {
	target := measure.Point{X: 30, Y: 30}
	implement := measure.Point{X: 70, Y: 70}

	result, err := Annotate(whiteImage(100, 100), target, implement, AnnotateOptions{})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("got %dx%d, want 100x100", result.Width, result.Height)
	}

	img := decodeRender(t, result)

	// Center of the target circle has the default green fill.
	if got := rgbaAt(img, 30, 30); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("target center: got %v, want green", got)
	}
	// Circle edge carries the pen color.
	if got := rgbaAt(img, 30, 36); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("target outline: got %v, want red", got)
	}
	// Implement cross center and arm tips.
	if got := rgbaAt(img, 70, 70); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("implement center: got %v, want red", got)
	}
	if got := rgbaAt(img, 80, 70); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("cross arm: got %v, want red", got)
	}
	// Far from both markers the image is untouched.
	if got := rgbaAt(img, 5, 95); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("background: got %v, want white", got)
	}
}

func TestAnnotate_CustomColors(t *testing.T) {
	result, err := Annotate(whiteImage(60, 60), measure.Point{X: 20, Y: 20}, measure.Point{X: 40, Y: 40}, AnnotateOptions{
		MarkerColor: "#0000FF",
		TargetFill:  "#FFFF00",
	})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	img := decodeRender(t, result)

	if got := rgbaAt(img, 20, 20); got != (color.RGBA{R: 255, G: 255, A: 255}) {
		t.Errorf("target fill: got %v, want yellow", got)
	}
	if got := rgbaAt(img, 40, 40); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("implement cross: got %v, want blue", got)
	}
}

func TestAnnotate_Scale(t *testing.T) {
	result, err := Annotate(whiteImage(100, 100), measure.Point{X: 30, Y: 30}, measure.Point{X: 70, Y: 70}, AnnotateOptions{
		Scale: 0.5,
	})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if result.Width != 50 || result.Height != 50 {
		t.Errorf("got %dx%d, want 50x50", result.Width, result.Height)
	}
}

func TestAnnotate_InvalidColor(t *testing.T) {
	_, err := Annotate(whiteImage(10, 10), measure.Point{}, measure.Point{}, AnnotateOptions{
		MarkerColor: "red",
	})
	if err == nil {
		t.Fatal("expected error for invalid color")
	}
}

func TestAnnotate_MarkersOutsideBoundsAreClipped(t *testing.T) {
	result, err := Annotate(whiteImage(50, 50), measure.Point{X: -20, Y: -20}, measure.Point{X: 200, Y: 200}, AnnotateOptions{})
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	img := decodeRender(t, result)
	if got := rgbaAt(img, 25, 25); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("center pixel: got %v, want white", got)
	}
}
