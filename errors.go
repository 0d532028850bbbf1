package screencapture

import (
	"errors"

	"github.com/pion/screencapture/pkg/display"
	"github.com/pion/screencapture/pkg/driver"
	"github.com/pion/screencapture/pkg/io/video"
)

var (
	// ErrInvalidScale is returned when the scale factor isn't greater than 0.
	ErrInvalidScale = video.ErrInvalidScale
	// ErrPlatformNotSupported is returned on platforms without a backend.
	ErrPlatformNotSupported = driver.ErrPlatformNotSupported
	// ErrInvalidTemplate is returned when a per-screen destination doesn't
	// hold exactly one ordinal placeholder.
	ErrInvalidTemplate = errors.New("destination template must contain exactly one %d placeholder")
	// ErrInvalidDestination is returned for an empty destination.
	ErrInvalidDestination = errors.New("destination must not be empty")
)

type (
	// PlatformError names the platform that has no backend.
	PlatformError = driver.PlatformError
	// EnumerationError tells that monitors couldn't be discovered.
	EnumerationError = driver.EnumerationError
	// CaptureError tells that pixels couldn't be read.
	CaptureError = driver.CaptureError
	// CompositingError tells that a capture doesn't match its monitor size.
	CompositingError = display.CompositingError
)
