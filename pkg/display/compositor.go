package display

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

var (
	errNoMonitors      = errors.New("display: no monitors to compose")
	errInvalidGeometry = errors.New("display: monitor size must be positive")
)

// Bounds is the smallest rectangle enclosing every monitor of a layout.
type Bounds struct {
	MinX   int
	MinY   int
	Width  int
	Height int
}

// Rect returns the bounds in desktop coordinates.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.MinX, b.MinY, b.MinX+b.Width, b.MinY+b.Height)
}

// CompositingError tells that a per-monitor capture doesn't have the size of
// its monitor, which usually means the native capture was cut short.
type CompositingError struct {
	MonitorID string
	Expected  image.Point
	Actual    image.Point
}

func (e *CompositingError) Error() string {
	if e.Actual == (image.Point{}) {
		return fmt.Sprintf("compositing: missing capture for monitor %s", e.MonitorID)
	}
	return fmt.Sprintf("compositing: monitor %s captured as %dx%d, expected %dx%d",
		e.MonitorID, e.Actual.X, e.Actual.Y, e.Expected.X, e.Expected.Y)
}

// ComputeBounds returns the bounding box of monitors in a single pass.
func ComputeBounds(monitors []Geometry) (Bounds, error) {
	if len(monitors) == 0 {
		return Bounds{}, errNoMonitors
	}

	minX, minY := monitors[0].X, monitors[0].Y
	maxX, maxY := monitors[0].X+monitors[0].Width, monitors[0].Y+monitors[0].Height
	for _, g := range monitors {
		if g.Width <= 0 || g.Height <= 0 {
			return Bounds{}, fmt.Errorf("%w: %s", errInvalidGeometry, g)
		}
		minX = min(minX, g.X)
		minY = min(minY, g.Y)
		maxX = max(maxX, g.X+g.Width)
		maxY = max(maxY, g.Y+g.Height)
	}

	return Bounds{
		MinX:   minX,
		MinY:   minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}, nil
}

// ComputeOffsets maps every monitor id to its top-left corner on the canvas
// described by b.
func ComputeOffsets(monitors []Geometry, b Bounds) map[string]image.Point {
	offsets := make(map[string]image.Point, len(monitors))
	for _, g := range monitors {
		offsets[g.ID] = image.Pt(g.X-b.MinX, g.Y-b.MinY)
	}
	return offsets
}

// Composite copies every capture onto a blank canvas of size b at its
// offset. monitors gives the paint order; a later monitor overwrites an
// earlier one where they overlap.
func Composite(b Bounds, monitors []Geometry, captures map[string]*image.RGBA, offsets map[string]image.Point) (*image.RGBA, error) {
	for _, g := range monitors {
		img, ok := captures[g.ID]
		if !ok || img == nil {
			return nil, &CompositingError{MonitorID: g.ID, Expected: g.Size()}
		}
		if img.Bounds().Size() != g.Size() {
			return nil, &CompositingError{MonitorID: g.ID, Expected: g.Size(), Actual: img.Bounds().Size()}
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for _, g := range monitors {
		img := captures[g.ID]
		off := offsets[g.ID]
		dst := image.Rectangle{Min: off, Max: off.Add(g.Size())}
		draw.Draw(canvas, dst, img, img.Bounds().Min, draw.Src)
	}
	return canvas, nil
}
