package video

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Scaler represents scaling algorithm
type Scaler draw.Scaler

// List of scaling algorithms
var (
	ScalerNearestNeighbor = Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = Scaler(draw.BiLinear)
	ScalerCatmullRom      = Scaler(draw.CatmullRom)
)

// ErrInvalidScale is returned for a scale factor that isn't a finite
// number greater than 0.
var ErrInvalidScale = errors.New("scale must be greater than 0")

// ValidateScale checks scale before any work is done with it.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidScale, scale)
	}
	return nil
}

// Limits on a rescaled frame. A frame at the limit still takes 4GiB as RGBA.
const (
	MaxDimension = 1 << 16
	MaxPixels    = 1 << 30
)

// ScaledSize returns floor(width*scale) x floor(height*scale), never smaller
// than one pixel on either axis. It fails with ErrInvalidScale when the
// result exceeds MaxDimension on an axis or MaxPixels in total.
func ScaledSize(size image.Point, scale float64) (image.Point, error) {
	w := math.Max(math.Floor(float64(size.X)*scale), 1)
	h := math.Max(math.Floor(float64(size.Y)*scale), 1)
	if w > MaxDimension || h > MaxDimension || w*h > MaxPixels {
		return image.Point{}, fmt.Errorf("%w, %v turns %dx%d into %.0fx%.0f", ErrInvalidScale, scale, size.X, size.Y, w, h)
	}
	return image.Pt(int(w), int(h)), nil
}

// Resize rescales img uniformly by scale.
// Setting scaler=nil to use default scaler. (ScalerCatmullRom)
// A scale of exactly 1 returns img itself.
func Resize(img *image.RGBA, scale float64, scaler Scaler) (*image.RGBA, error) {
	if err := ValidateScale(scale); err != nil {
		return nil, err
	}
	if scale == 1 {
		return img, nil
	}
	if scaler == nil {
		scaler = ScalerCatmullRom
	}

	size, err := ScaledSize(img.Bounds().Size(), scale)
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// Scale returns video scaling transform that resizes every frame by scale.
func Scale(scale float64, scaler Scaler) TransformFunc {
	return func(r Reader) Reader {
		return ReaderFunc(func() (*image.RGBA, error) {
			img, err := r.Read()
			if err != nil {
				return nil, err
			}
			return Resize(img, scale, scaler)
		})
	}
}
