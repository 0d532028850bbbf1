// Package display models monitor geometry in the virtual-desktop coordinate
// space and composites per-monitor captures into one canvas.
package display

import (
	"fmt"
	"image"
)

// Geometry is one monitor's position and size on the virtual desktop.
// X and Y may be negative for monitors left of or above the primary.
type Geometry struct {
	ID      string
	X       int
	Y       int
	Width   int
	Height  int
	Primary bool
	// Virtual marks a synthetic monitor that stands for the whole desktop.
	Virtual bool
}

// Rect returns g as a rectangle in desktop coordinates.
func (g Geometry) Rect() image.Rectangle {
	return image.Rect(g.X, g.Y, g.X+g.Width, g.Y+g.Height)
}

// Size returns the width and height of g.
func (g Geometry) Size() image.Point {
	return image.Pt(g.Width, g.Height)
}

func (g Geometry) String() string {
	return fmt.Sprintf("%s(%dx%d%+d%+d)", g.ID, g.Width, g.Height, g.X, g.Y)
}

// FromRect builds a Geometry from a desktop rectangle.
func FromRect(id string, r image.Rectangle) Geometry {
	return Geometry{
		ID:     id,
		X:      r.Min.X,
		Y:      r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}

// Layout is the result of one enumeration.
type Layout struct {
	Monitors []Geometry
	// Arranged is set when X and Y reflect where monitors really sit, so
	// per-monitor captures can be composited.
	Arranged bool
	// Degraded is set when the platform couldn't tell monitors apart and
	// Monitors holds a single Virtual entry for the whole desktop.
	Degraded bool
}

// Primary returns the monitor flagged as primary, or the first one.
func (l Layout) Primary() (Geometry, bool) {
	for _, g := range l.Monitors {
		if g.Primary {
			return g, true
		}
	}
	if len(l.Monitors) == 0 {
		return Geometry{}, false
	}
	return l.Monitors[0], true
}

// Find looks a monitor up by id.
func (l Layout) Find(id string) (Geometry, bool) {
	for _, g := range l.Monitors {
		if g.ID == id {
			return g, true
		}
	}
	return Geometry{}, false
}
