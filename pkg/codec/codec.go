// Package codec encodes captured frames into image files and decodes the
// files produced by external screenshot tools.
package codec

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pion/screencapture/internal/logging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format names an image file format.
type Format string

// Supported formats
const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// DefaultFormat is used for destinations without a known extension.
const DefaultFormat = FormatJPEG

var errEmptyImage = errors.New("codec: image has no pixels")

var logger = logging.NewLogger("codec")

func init() {
	Register(FormatJPEG, func(w io.Writer, img image.Image, quality int) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	}, ".jpg", ".jpeg")
	Register(FormatPNG, func(w io.Writer, img image.Image, _ int) error {
		enc := png.Encoder{CompressionLevel: png.BestSpeed}
		return enc.Encode(w, img)
	}, ".png")
	Register(FormatBMP, func(w io.Writer, img image.Image, _ int) error {
		return bmp.Encode(w, img)
	}, ".bmp")
	Register(FormatTIFF, func(w io.Writer, img image.Image, _ int) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}, ".tif", ".tiff")
}

// Encode writes img to w as f. quality is handed to encoders that have a
// quality knob and ignored by the others.
func Encode(w io.Writer, img image.Image, f Format, quality int) error {
	if img.Bounds().Empty() {
		return errEmptyImage
	}
	enc, err := encoderFor(f)
	if err != nil {
		return err
	}
	return enc(w, img, quality)
}

// EncodeFile encodes img in the format matching path's extension and writes
// it to path. The destination is only touched once encoding has succeeded,
// and is replaced atomically.
func EncodeFile(path string, img image.Image, quality int) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatFor(path), quality); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

// DecodeFile reads an image in any registered format from path.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func writeAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		removeTemp(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		removeTemp(tmp)
		return err
	}
	logger.Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}

func removeTemp(tmp string) {
	err := os.Remove(tmp)
	switch {
	case err == nil:
		logger.Debugf("removed %s", tmp)
	case !errors.Is(err, os.ErrNotExist):
		logger.Warnf("failed to remove %s: %v", tmp, err)
	}
}
