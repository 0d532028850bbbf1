package video

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestResize(t *testing.T) {
	cases := map[string]struct {
		size     image.Point
		scale    float64
		expected image.Point
	}{
		"Half":         {size: image.Pt(1000, 800), scale: 0.5, expected: image.Pt(500, 400)},
		"Double":       {size: image.Pt(64, 48), scale: 2, expected: image.Pt(128, 96)},
		"FloorsOdd":    {size: image.Pt(101, 77), scale: 0.5, expected: image.Pt(50, 38)},
		"ClampedToOne": {size: image.Pt(10, 10), scale: 0.01, expected: image.Pt(1, 1)},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			for scalerName, scaler := range map[string]Scaler{
				"Default":         nil,
				"NearestNeighbor": ScalerNearestNeighbor,
				"ApproxBiLinear":  ScalerApproxBiLinear,
				"BiLinear":        ScalerBiLinear,
				"CatmullRom":      ScalerCatmullRom,
			} {
				img, err := Resize(gradient(c.size.X, c.size.Y), c.scale, scaler)
				require.NoError(t, err, scalerName)
				assert.Equal(t, c.expected, img.Bounds().Size(), scalerName)
			}
		})
	}
}

func TestResizeIdentity(t *testing.T) {
	src := gradient(33, 17)
	dst, err := Resize(src, 1.0, nil)
	require.NoError(t, err)
	assert.Same(t, src, dst)
	assert.Equal(t, gradient(33, 17).Pix, dst.Pix)
}

func TestResizeDeterministic(t *testing.T) {
	a, err := Resize(gradient(120, 90), 0.37, nil)
	require.NoError(t, err)
	b, err := Resize(gradient(120, 90), 0.37, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestResizeInvalidScale(t *testing.T) {
	for _, scale := range []float64{0, -1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Resize(gradient(4, 4), scale, nil)
		assert.True(t, errors.Is(err, ErrInvalidScale), "scale %v", scale)
	}
}

func TestScaledSizeTooLarge(t *testing.T) {
	cases := map[string]struct {
		size  image.Point
		scale float64
	}{
		"WidthOverLimit":  {size: image.Pt(1000, 800), scale: 1e6},
		"OverflowsInt":    {size: image.Pt(1000, 800), scale: 1e17},
		"Infinite":        {size: image.Pt(2, 2), scale: math.MaxFloat64},
		"PixelsOverLimit": {size: image.Pt(40000, 40000), scale: 1.5},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			_, err := ScaledSize(c.size, c.scale)
			assert.ErrorIs(t, err, ErrInvalidScale)
		})
	}
}

func TestResizeTooLarge(t *testing.T) {
	src := gradient(1000, 800)
	for _, scale := range []float64{1e6, 1e17} {
		img, err := Resize(src, scale, ScalerNearestNeighbor)
		assert.ErrorIs(t, err, ErrInvalidScale, "scale %v", scale)
		assert.Nil(t, img)
	}
}

func TestScaledSizeAtLimit(t *testing.T) {
	size, err := ScaledSize(image.Pt(MaxDimension/2, 100), 2)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(MaxDimension, 200), size)
}

func TestScaleTransform(t *testing.T) {
	calls := 0
	src := ReaderFunc(func() (*image.RGBA, error) {
		calls++
		return gradient(40, 20), nil
	})

	r := Merge(nil, Scale(0.25, ScalerNearestNeighbor))(src)
	img, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(10, 5), img.Bounds().Size())
	assert.Equal(t, 1, calls)
}

func TestScaleTransformPropagatesError(t *testing.T) {
	errRead := errors.New("read failed")
	r := Scale(0.5, nil)(ReaderFunc(func() (*image.RGBA, error) {
		return nil, errRead
	}))
	_, err := r.Read()
	assert.Equal(t, errRead, err)
}
