// Package video holds the post-processing applied to captured frames
// before they are encoded.
package video

import (
	"image"
)

// Reader produces one captured frame per call.
type Reader interface {
	Read() (*image.RGBA, error)
}

type ReaderFunc func() (*image.RGBA, error)

func (rf ReaderFunc) Read() (*image.RGBA, error) {
	return rf()
}

// TransformFunc produces a new Reader that will produces a transformed video
type TransformFunc func(r Reader) Reader

// Merge merges transforms and produces a new TransformFunc that will execute
// transforms in order
func Merge(transforms ...TransformFunc) TransformFunc {
	return func(r Reader) Reader {
		for _, transform := range transforms {
			if transform == nil {
				continue
			}

			r = transform(r)
		}

		return r
	}
}
