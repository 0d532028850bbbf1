// Package screencapture captures display monitors to compressed image
// files. It captures the primary monitor, every monitor composited into
// one virtual-desktop image, or every monitor into its own file, with the
// same rescaling and encoding applied in all three cases.
//
// Windows copies pixels natively; macOS drives the screencapture tool.
// Both are reached through the same Capturer.
package screencapture

import (
	"github.com/pion/logging"
	ilogging "github.com/pion/screencapture/internal/logging"
	"github.com/pion/screencapture/pkg/driver"
	"github.com/pion/screencapture/pkg/io/video"
	"github.com/pion/screencapture/pkg/platform"

	// backends register themselves for their platform
	_ "github.com/pion/screencapture/pkg/driver/cmdsource"
	_ "github.com/pion/screencapture/pkg/driver/screen"
)

// Capturer runs capture requests. It holds no state across requests; each
// call runs the whole pipeline once. Concurrent calls are safe as long as
// they write to different destinations.
type Capturer struct {
	CapturerOptions
	log logging.LeveledLogger
}

// CapturerOptions stores parameters used by Capturer.
type CapturerOptions struct {
	platform      platform.Platform
	backend       driver.Backend
	loggerFactory logging.LoggerFactory
	scaler        video.Scaler
	transforms    []video.TransformFunc
	driverConfig  driver.Config
	stateHook     func(State)
}

// CapturerOption is a type of Capturer functional option.
type CapturerOption func(*CapturerOptions)

// WithPlatform overrides the detected platform.
func WithPlatform(p platform.Platform) CapturerOption {
	return func(o *CapturerOptions) {
		o.platform = p
	}
}

// WithBackend uses b instead of the backend registered for the platform.
func WithBackend(b driver.Backend) CapturerOption {
	return func(o *CapturerOptions) {
		o.backend = b
	}
}

// WithLoggerFactory routes every log line through f.
func WithLoggerFactory(f logging.LoggerFactory) CapturerOption {
	return func(o *CapturerOptions) {
		o.loggerFactory = f
		o.driverConfig.LoggerFactory = f
	}
}

// WithScaler selects the resampling algorithm used when rescaling.
func WithScaler(s video.Scaler) CapturerOption {
	return func(o *CapturerOptions) {
		o.scaler = s
	}
}

// WithTransform adds post-processing applied after rescaling, in order.
func WithTransform(t video.TransformFunc) CapturerOption {
	return func(o *CapturerOptions) {
		o.transforms = append(o.transforms, t)
	}
}

// WithTempDir sets where backends put their intermediate files.
func WithTempDir(dir string) CapturerOption {
	return func(o *CapturerOptions) {
		o.driverConfig.TempDir = dir
	}
}

// WithCaptureCommand overrides the screenshot tool command line.
func WithCaptureCommand(cmd string) CapturerOption {
	return func(o *CapturerOptions) {
		o.driverConfig.CaptureCommand = cmd
	}
}

// WithDisplayInfoCommand overrides the display enumeration command line.
func WithDisplayInfoCommand(cmd string) CapturerOption {
	return func(o *CapturerOptions) {
		o.driverConfig.DisplayInfoCommand = cmd
	}
}

// WithStateHook calls f on every pipeline state change.
func WithStateHook(f func(State)) CapturerOption {
	return func(o *CapturerOptions) {
		o.stateHook = f
	}
}

// New creates a Capturer for the running platform. It fails with
// ErrPlatformNotSupported when no backend exists for it.
func New(opts ...CapturerOption) (*Capturer, error) {
	o := CapturerOptions{
		platform: platform.Detect(),
		scaler:   video.ScalerCatmullRom,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.backend == nil {
		backend, err := driver.Open(o.platform, o.driverConfig)
		if err != nil {
			return nil, err
		}
		o.backend = backend
	}

	return &Capturer{
		CapturerOptions: o,
		log:             ilogging.NewLoggerFrom(o.loggerFactory, ""),
	}, nil
}

// Backend returns the backend requests run on.
func (c *Capturer) Backend() driver.Backend {
	return c.backend
}

// SaveScreen captures the primary monitor to path.
func (c *Capturer) SaveScreen(path string, quality int, scale float64) (*Result, error) {
	return c.Capture(Request{Mode: ModeSingle, Quality: quality, Scale: scale, Destination: path})
}

// SaveAllScreens captures every monitor, composited, to path.
func (c *Capturer) SaveAllScreens(path string, quality int, scale float64) (*Result, error) {
	return c.Capture(Request{Mode: ModeAll, Quality: quality, Scale: scale, Destination: path})
}

// SaveEachScreen captures every monitor into its own file. tmpl holds one
// %d verb replaced by the monitor's 0-based ordinal, e.g. "screen_%d.jpg".
func (c *Capturer) SaveEachScreen(tmpl string, quality int, scale float64) (*Result, error) {
	return c.Capture(Request{Mode: ModeEach, Quality: quality, Scale: scale, Destination: tmpl})
}

// Capture runs req through the pipeline. On error no partial result is
// returned.
func (c *Capturer) Capture(req Request) (*Result, error) {
	p := &pipeline{
		Capturer: c,
		req:      req,
		state:    StateIdle,
		result:   &Result{},
	}
	if err := p.run(); err != nil {
		c.log.Errorf("%s capture failed in %s: %v", req.Mode, p.failedIn, err)
		return nil, err
	}
	return p.result, nil
}
