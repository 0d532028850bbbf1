// Package platform detects the operating environment and tells which
// capture backend applies to it.
package platform

import "runtime"

// Platform identifies an operating environment with its own capture primitive.
type Platform string

const (
	// Windows copies pixels straight out of the framebuffer.
	Windows Platform = "windows"
	// Darwin shells out to the screencapture tool.
	Darwin Platform = "darwin"
	// Unsupported is every other environment.
	Unsupported Platform = "unsupported"
)

var current = FromGOOS(runtime.GOOS)

// Detect returns the platform of the running process. The value is computed
// once at startup and never changes.
func Detect() Platform {
	return current
}

// FromGOOS maps a GOOS value onto a Platform.
func FromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return Darwin
	default:
		return Unsupported
	}
}

// Supported reports whether p has a capture backend.
func (p Platform) Supported() bool {
	return p == Windows || p == Darwin
}

func (p Platform) String() string {
	return string(p)
}
