package cmdsource

import (
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pion/logging"
	ilogging "github.com/pion/screencapture/internal/logging"
	"github.com/pion/screencapture/pkg/codec"
	"github.com/pion/screencapture/pkg/display"
	"github.com/pion/screencapture/pkg/driver"
	"github.com/pion/screencapture/pkg/io/video"
	"github.com/pion/screencapture/pkg/platform"
)

// Default command lines.
const (
	DefaultCaptureCommand     = "screencapture -x"
	DefaultDisplayInfoCommand = "system_profiler SPDisplaysDataType -json"
)

// selector for the main monitor
const mainMonitorID = "main"

func init() {
	if err := driver.Register(platform.Darwin, New); err != nil {
		panic(err)
	}
}

type cmdSource struct {
	platform    platform.Platform
	capture     command
	displayInfo command
	tempDir     string
	run         Runner
	log         logging.LeveledLogger
}

// New builds the external process backend.
func New(cfg driver.Config) (driver.Backend, error) {
	return newCmdSource(cfg, execRunner)
}

func newCmdSource(cfg driver.Config, run Runner) (*cmdSource, error) {
	if cfg.CaptureCommand == "" {
		cfg.CaptureCommand = DefaultCaptureCommand
	}
	if cfg.DisplayInfoCommand == "" {
		cfg.DisplayInfoCommand = DefaultDisplayInfoCommand
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}

	capture, err := parseCommand(cfg.CaptureCommand)
	if err != nil {
		return nil, err
	}
	displayInfo, err := parseCommand(cfg.DisplayInfoCommand)
	if err != nil {
		return nil, err
	}

	return &cmdSource{
		platform:    platform.Darwin,
		capture:     capture,
		displayInfo: displayInfo,
		tempDir:     cfg.TempDir,
		run:         run,
		log:         ilogging.NewLoggerFrom(cfg.LoggerFactory, "driver/cmdsource"),
	}, nil
}

func (c *cmdSource) Platform() platform.Platform {
	return c.platform
}

func (c *cmdSource) CapturePrimary() (*image.RGBA, error) {
	return c.shoot(mainMonitorID, "-m")
}

// CaptureAll lets the tool capture the whole desktop on its own; monitors
// is not needed.
func (c *cmdSource) CaptureAll(_ []display.Geometry) (*image.RGBA, error) {
	return c.shoot("")
}

func (c *cmdSource) CaptureRegion(g display.Geometry) (*image.RGBA, error) {
	if g.Virtual {
		return c.CaptureAll(nil)
	}
	return c.CaptureByID(g.ID)
}

// CaptureByID captures one display. When the tool fails for that display,
// the whole desktop is captured instead, once.
func (c *cmdSource) CaptureByID(id string) (*image.RGBA, error) {
	img, err := c.shoot(id, "-D", id)
	if err == nil || !driver.IsCaptureError(err) {
		return img, err
	}

	c.log.Warnf("capturing display %s failed, falling back to the whole desktop: %v", id, err)
	return c.CaptureAll(nil)
}

// shoot runs the capture tool once with a fresh temporary output file and
// decodes what it wrote. The file is removed on every return path.
func (c *cmdSource) shoot(monitorID string, selector ...string) (*image.RGBA, error) {
	path := filepath.Join(c.tempDir, "screencapture-"+uuid.NewString()+".png")
	defer c.remove(path)

	args := append([]string{"-t", "png"}, selector...)
	args = append(args, path)
	_, stderr, err := c.capture.run(c.run, c.log, args...)
	if err != nil {
		return nil, &driver.CaptureError{
			Platform:  c.platform,
			MonitorID: monitorID,
			Stderr:    string(stderr),
			Err:       err,
		}
	}

	img, err := codec.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return video.ToRGBA(img), nil
}

func (c *cmdSource) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		c.log.Warnf("failed to remove %s: %v", path, err)
	}
}
