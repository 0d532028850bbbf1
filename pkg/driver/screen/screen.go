// Package screen is the native capture backend. It copies framebuffer
// pixels straight from screen coordinates, one copy per monitor.
package screen

import (
	"errors"
	"image"
	"strconv"

	"github.com/kbinani/screenshot"
	"github.com/pion/logging"
	ilogging "github.com/pion/screencapture/internal/logging"
	"github.com/pion/screencapture/pkg/display"
	"github.com/pion/screencapture/pkg/driver"
	"github.com/pion/screencapture/pkg/platform"
)

var (
	errNoDisplay      = errors.New("no active display")
	errEmptyBounds    = errors.New("display reports empty bounds")
	errUnknownMonitor = errors.New("unknown monitor")
)

// grabber is the slice of the pixel-copy primitive the backend relies on.
type grabber interface {
	NumActiveDisplays() int
	GetDisplayBounds(displayIndex int) image.Rectangle
	CaptureRect(rect image.Rectangle) (*image.RGBA, error)
}

type kbinaniGrabber struct{}

func (kbinaniGrabber) NumActiveDisplays() int { return screenshot.NumActiveDisplays() }

func (kbinaniGrabber) GetDisplayBounds(displayIndex int) image.Rectangle {
	return screenshot.GetDisplayBounds(displayIndex)
}

func (kbinaniGrabber) CaptureRect(rect image.Rectangle) (*image.RGBA, error) {
	return screenshot.CaptureRect(rect)
}

func init() {
	if err := driver.Register(platform.Windows, New); err != nil {
		panic(err)
	}
}

type screen struct {
	grab     grabber
	platform platform.Platform
	log      logging.LeveledLogger
}

// New builds the native backend.
func New(cfg driver.Config) (driver.Backend, error) {
	return newScreen(kbinaniGrabber{}, platform.Windows, cfg), nil
}

func newScreen(g grabber, p platform.Platform, cfg driver.Config) *screen {
	return &screen{
		grab:     g,
		platform: p,
		log:      ilogging.NewLoggerFrom(cfg.LoggerFactory, "driver/screen"),
	}
}

func (s *screen) Platform() platform.Platform {
	return s.platform
}

func (s *screen) Enumerate() (display.Layout, error) {
	n := s.grab.NumActiveDisplays()
	if n <= 0 {
		return display.Layout{}, &driver.EnumerationError{Platform: s.platform, Err: errNoDisplay}
	}

	monitors := make([]display.Geometry, 0, n)
	primary := -1
	for i := 0; i < n; i++ {
		bounds := s.grab.GetDisplayBounds(i)
		if bounds.Empty() {
			return display.Layout{}, &driver.EnumerationError{Platform: s.platform, Err: errEmptyBounds}
		}
		g := display.FromRect(strconv.Itoa(i), bounds)
		// The primary monitor anchors the desktop origin.
		if primary < 0 && bounds.Min == (image.Point{}) {
			primary = i
		}
		monitors = append(monitors, g)
	}
	if primary < 0 {
		primary = 0
	}
	monitors[primary].Primary = true

	s.log.Debugf("enumerated %d monitor(s): %v", len(monitors), monitors)
	return display.Layout{Monitors: monitors, Arranged: true}, nil
}

func (s *screen) CapturePrimary() (*image.RGBA, error) {
	layout, err := s.Enumerate()
	if err != nil {
		return nil, err
	}
	g, _ := layout.Primary()
	return s.CaptureRegion(g)
}

func (s *screen) CaptureRegion(g display.Geometry) (*image.RGBA, error) {
	img, err := s.grab.CaptureRect(g.Rect())
	if err != nil {
		return nil, &driver.CaptureError{Platform: s.platform, MonitorID: g.ID, Err: err}
	}
	// Images are addressed from the origin no matter where the monitor sits.
	img.Rect = img.Rect.Sub(img.Rect.Min)
	return img, nil
}

// CaptureAll copies every monitor into one canvas spanning the virtual
// desktop. A failure on any monitor fails the whole capture.
func (s *screen) CaptureAll(monitors []display.Geometry) (*image.RGBA, error) {
	if len(monitors) == 0 {
		layout, err := s.Enumerate()
		if err != nil {
			return nil, err
		}
		monitors = layout.Monitors
	}

	bounds, err := display.ComputeBounds(monitors)
	if err != nil {
		return nil, &driver.CaptureError{Platform: s.platform, Err: err}
	}
	offsets := display.ComputeOffsets(monitors, bounds)

	captures := make(map[string]*image.RGBA, len(monitors))
	for _, g := range monitors {
		img, err := s.CaptureRegion(g)
		if err != nil {
			return nil, err
		}
		captures[g.ID] = img
	}

	s.log.Debugf("compositing %d monitor(s) into %dx%d", len(monitors), bounds.Width, bounds.Height)
	return display.Composite(bounds, monitors, captures, offsets)
}

func (s *screen) CaptureByID(id string) (*image.RGBA, error) {
	layout, err := s.Enumerate()
	if err != nil {
		return nil, err
	}
	g, ok := layout.Find(id)
	if !ok {
		return nil, &driver.CaptureError{Platform: s.platform, MonitorID: id, Err: errUnknownMonitor}
	}
	return s.CaptureRegion(g)
}
