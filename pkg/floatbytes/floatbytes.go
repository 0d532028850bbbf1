// Package floatbytes packs float32 slices into raw bytes and back.
// Both directions use little-endian IEEE 754 layout regardless of the host.
package floatbytes

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// SampleSize is the encoded width of one float32.
const SampleSize = 4

var errMisaligned = errors.New("length is not a multiple of 4")

// FromFloats encodes values as little-endian bytes.
func FromFloats(values []float32) []byte {
	b := make([]byte, len(values)*SampleSize)
	for i, v := range values {
		binary.LittleEndian.PutUint32(b[i*SampleSize:], math.Float32bits(v))
	}
	return b
}

// ToFloats decodes little-endian bytes produced by FromFloats.
func ToFloats(b []byte) ([]float32, error) {
	if len(b)%SampleSize != 0 {
		return nil, fmt.Errorf("floatbytes: %d bytes: %w", len(b), errMisaligned)
	}

	values := make([]float32, len(b)/SampleSize)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*SampleSize:]))
	}
	return values, nil
}
