package codec

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// EncoderFunc writes img to w.
type EncoderFunc func(w io.Writer, img image.Image, quality int) error

var (
	mu         sync.RWMutex
	encoders   = make(map[Format]EncoderFunc)
	extensions = make(map[string]Format)
)

// Register binds an encoder to f and to the given file extensions. A later
// registration replaces an earlier one.
func Register(f Format, enc EncoderFunc, exts ...string) {
	mu.Lock()
	defer mu.Unlock()

	encoders[f] = enc
	for _, ext := range exts {
		extensions[strings.ToLower(ext)] = f
	}
}

// FormatFor picks the format from path's extension, DefaultFormat when the
// extension is unknown.
func FormatFor(path string) Format {
	mu.RLock()
	defer mu.RUnlock()

	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	return DefaultFormat
}

func encoderFor(f Format) (EncoderFunc, error) {
	mu.RLock()
	defer mu.RUnlock()

	enc, ok := encoders[f]
	if !ok {
		return nil, fmt.Errorf("codec: can't find %s encoder", f)
	}
	return enc, nil
}
