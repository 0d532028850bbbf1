package video

import (
	"image"

	"golang.org/x/image/draw"
)

// ToRGBA returns src as an *image.RGBA anchored at the origin. src itself is
// returned when it already is one.
func ToRGBA(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok {
		if bounds.Min != (image.Point{}) {
			clone := *rgba
			clone.Rect = bounds.Sub(bounds.Min)
			return &clone
		}
		return rgba
	}

	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}
