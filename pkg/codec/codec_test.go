package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pion/logging"
	ilogging "github.com/pion/screencapture/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}
	return img
}

func TestFormatFor(t *testing.T) {
	cases := map[string]Format{
		"shot.jpg":          FormatJPEG,
		"shot.JPEG":         FormatJPEG,
		"dir/shot.png":      FormatPNG,
		"shot.bmp":          FormatBMP,
		"shot.tif":          FormatTIFF,
		"shot.tiff":         FormatTIFF,
		"shot.webp":         DefaultFormat,
		"shot":              DefaultFormat,
		"screen_%d.png":     FormatPNG,
		"/tmp/a.b/shot.Png": FormatPNG,
	}
	for path, expected := range cases {
		assert.Equal(t, expected, FormatFor(path), path)
	}
}

func TestEncodeFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := testImage(16, 8)

	for _, name := range []string{"a.png", "a.bmp", "a.tiff", "a.jpg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, EncodeFile(path, src, 90), name)

		img, err := DecodeFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, src.Bounds(), img.Bounds(), name)

		if FormatFor(name) == FormatJPEG {
			continue
		}
		// lossless formats keep every pixel
		r, g, b, a := img.At(3, 5).RGBA()
		assert.Equal(t, src.RGBAAt(3, 5), color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4, "temporary files must not be left behind")
}

func TestEncodeJPEGQuality(t *testing.T) {
	src := testImage(64, 64)
	var low, high bytes.Buffer
	require.NoError(t, Encode(&low, src, FormatJPEG, 10))
	require.NoError(t, Encode(&high, src, FormatJPEG, 100))
	assert.Less(t, low.Len(), high.Len())
}

func TestEncodeFileFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.png")

	err := EncodeFile(path, image.NewRGBA(image.Rectangle{}), 75)
	assert.True(t, errors.Is(err, errEmptyImage))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEncodeFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "a.png")
	err := EncodeFile(path, testImage(2, 2), 75)
	var pathErr *os.PathError
	assert.True(t, errors.As(err, &pathErr))
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Encode(io.Discard, testImage(2, 2), Format("webp"), 75)
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	const raw = Format("raw-test")
	Register(raw, func(w io.Writer, img image.Image, _ int) error {
		_, err := w.Write(img.(*image.RGBA).Pix)
		return err
	}, ".RAWTEST")

	assert.Equal(t, raw, FormatFor("x.rawtest"))
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(1, 1), raw, 0))
	assert.Equal(t, 4, buf.Len())
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.True(t, os.IsNotExist(err))
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	f := &logging.DefaultLoggerFactory{
		Writer:          &buf,
		DefaultLogLevel: logging.LogLevelDebug,
		ScopeLevels:     make(map[string]logging.LogLevel),
	}
	prev := logger
	logger = ilogging.NewLoggerFrom(f, "codec")
	t.Cleanup(func() { logger = prev })
	return &buf
}

func TestEncodeFileLogsWrite(t *testing.T) {
	logs := captureLogs(t)
	path := filepath.Join(t.TempDir(), "a.png")

	require.NoError(t, EncodeFile(path, testImage(2, 2), 75))
	assert.Contains(t, logs.String(), "screencapture/codec")
	assert.Contains(t, logs.String(), "to "+path)
}

func TestEncodeFileRenameFailureRemovesTemp(t *testing.T) {
	logs := captureLogs(t)
	dir := t.TempDir()
	// a non-empty directory can't be replaced by a file
	path := filepath.Join(dir, "taken.png")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0o755))

	assert.Error(t, EncodeFile(path, testImage(2, 2), 75))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover %s", e.Name())
	}
	assert.Contains(t, logs.String(), "removed ")
}
