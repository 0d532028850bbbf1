package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pion/screencapture/pkg/platform"
)

// ErrPlatformNotSupported is returned when no backend exists for the
// running platform.
var ErrPlatformNotSupported = errors.New("platform not supported")

// PlatformError names the platform that has no backend. It matches
// ErrPlatformNotSupported with errors.Is.
type PlatformError struct {
	Platform platform.Platform
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("screen capture: %s: %v", e.Platform, ErrPlatformNotSupported)
}

func (e *PlatformError) Unwrap() error {
	return ErrPlatformNotSupported
}

// EnumerationError tells that monitors couldn't be discovered.
type EnumerationError struct {
	Platform platform.Platform
	Stderr   string
	Err      error
}

func (e *EnumerationError) Error() string {
	msg := fmt.Sprintf("enumerate monitors on %s: %v", e.Platform, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// CaptureError tells that pixels couldn't be read. MonitorID is empty when
// the failing capture targeted the whole desktop.
type CaptureError struct {
	Platform  platform.Platform
	MonitorID string
	Stderr    string
	Err       error
}

func (e *CaptureError) Error() string {
	target := "desktop"
	if e.MonitorID != "" {
		target = "monitor " + e.MonitorID
	}
	msg := fmt.Sprintf("capture %s on %s: %v", target, e.Platform, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}

// IsCaptureError reports whether err, or anything it wraps, is a
// CaptureError.
func IsCaptureError(err error) bool {
	var target *CaptureError
	return errors.As(err, &target)
}
