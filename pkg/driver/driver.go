// Package driver defines the contract every platform capture backend
// fulfils, and keeps the registry that maps a platform onto its backend.
package driver

import (
	"image"

	"github.com/pion/logging"
	"github.com/pion/screencapture/pkg/display"
	"github.com/pion/screencapture/pkg/platform"
)

// Backend captures raw pixels with a platform's native means. Every
// returned image is owned by the caller.
type Backend interface {
	// Platform tells which environment the backend captures on.
	Platform() platform.Platform
	// Enumerate lists monitors in platform enumeration order. It never
	// caches; every call queries the platform again.
	Enumerate() (display.Layout, error)
	// CapturePrimary captures the platform's primary monitor.
	CapturePrimary() (*image.RGBA, error)
	// CaptureRegion captures exactly the monitor described by g.
	CaptureRegion(g display.Geometry) (*image.RGBA, error)
	// CaptureAll captures the whole virtual desktop spanned by monitors.
	CaptureAll(monitors []display.Geometry) (*image.RGBA, error)
	// CaptureByID captures the monitor the platform knows as id.
	CaptureByID(id string) (*image.RGBA, error)
}

// Config carries the settings a Factory may use to build a Backend. Zero
// values select each backend's defaults.
type Config struct {
	LoggerFactory logging.LoggerFactory
	// TempDir is where backends that go through files put them.
	TempDir string
	// CaptureCommand overrides the screenshot tool command line.
	CaptureCommand string
	// DisplayInfoCommand overrides the display enumeration command line.
	DisplayInfoCommand string
}

// Factory builds a Backend from a Config.
type Factory func(cfg Config) (Backend, error)
