package screencapture

import (
	"errors"
	"image"

	"github.com/pion/screencapture/pkg/codec"
	"github.com/pion/screencapture/pkg/display"
	"github.com/pion/screencapture/pkg/io/video"
)

var errNoMonitors = errors.New("no monitors found")

// pipeline is a single run of one Request.
type pipeline struct {
	*Capturer
	req      Request
	state    State
	failedIn State
	result   *Result
}

func (p *pipeline) run() error {
	if err := p.step(StateValidating, p.req.validate); err != nil {
		return err
	}

	var err error
	switch p.req.Mode {
	case ModeSingle:
		err = p.single()
	case ModeAll:
		err = p.all()
	case ModeEach:
		err = p.each()
	}
	if err != nil {
		return err
	}
	return p.step(StateDone, nil)
}

// step moves the pipeline to next and runs f there.
func (p *pipeline) step(next State, f func() error) error {
	err := p.state.Update(next, func() error {
		p.entered(next)
		if f == nil {
			return nil
		}
		return f()
	})
	if err != nil {
		p.failedIn = next
		p.state = StateError
		p.entered(StateError)
	}
	return err
}

func (p *pipeline) entered(s State) {
	p.log.Debugf("%s capture: %s", p.req.Mode, s)
	if p.stateHook != nil {
		p.stateHook(s)
	}
}

func (p *pipeline) single() error {
	var img *image.RGBA
	err := p.step(StateCapturing, func() (err error) {
		img, err = p.backend.CapturePrimary()
		return err
	})
	if err != nil {
		return err
	}
	return p.finish(img, p.req.Destination)
}

func (p *pipeline) all() error {
	layout, err := p.enumerate()
	if err != nil {
		return err
	}

	var img *image.RGBA
	if !layout.Arranged || layout.Degraded {
		// Monitor positions are unknown; the platform captures the whole
		// desktop in one call.
		err = p.step(StateCapturing, func() (err error) {
			img, err = p.backend.CaptureAll(layout.Monitors)
			return err
		})
	} else {
		captures := make(map[string]*image.RGBA, len(layout.Monitors))
		err = p.step(StateCapturing, func() error {
			for _, g := range layout.Monitors {
				capture, err := p.backend.CaptureRegion(g)
				if err != nil {
					return err
				}
				captures[g.ID] = capture
			}
			return nil
		})
		if err == nil {
			err = p.step(StateCompositing, func() error {
				bounds, err := display.ComputeBounds(layout.Monitors)
				if err != nil {
					return err
				}
				offsets := display.ComputeOffsets(layout.Monitors, bounds)
				img, err = display.Composite(bounds, layout.Monitors, captures, offsets)
				return err
			})
		}
	}
	if err != nil {
		return err
	}
	return p.finish(img, p.req.Destination)
}

// each captures, post-processes and writes monitors one at a time. The
// first failure stops the run; files written for earlier monitors stay.
func (p *pipeline) each() error {
	layout, err := p.enumerate()
	if err != nil {
		return err
	}

	for i, g := range layout.Monitors {
		var img *image.RGBA
		err := p.step(StateCapturing, func() (err error) {
			img, err = p.backend.CaptureRegion(g)
			return err
		})
		if err != nil {
			return err
		}
		if err := p.finish(img, expandTemplate(p.req.Destination, i)); err != nil {
			return err
		}
	}
	return nil
}

func (p *pipeline) enumerate() (display.Layout, error) {
	var layout display.Layout
	err := p.step(StateEnumerating, func() (err error) {
		layout, err = p.backend.Enumerate()
		if err == nil && len(layout.Monitors) == 0 {
			err = &EnumerationError{Platform: p.backend.Platform(), Err: errNoMonitors}
		}
		return err
	})
	if err != nil {
		return display.Layout{}, err
	}

	if layout.Degraded {
		p.result.Degraded = true
		p.log.Warnf("%s capture: monitors couldn't be told apart, capturing the whole desktop as one", p.req.Mode)
	}
	return layout, nil
}

// finish rescales img and writes it to path.
func (p *pipeline) finish(img *image.RGBA, path string) error {
	err := p.step(StatePostProcessing, func() (err error) {
		img, err = p.postProcess(img)
		return err
	})
	if err != nil {
		return err
	}

	return p.step(StateEncoding, func() error {
		if err := codec.EncodeFile(path, img, p.req.Quality); err != nil {
			return err
		}
		p.result.Paths = append(p.result.Paths, path)
		p.log.Infof("wrote %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
		return nil
	})
}

func (p *pipeline) postProcess(img *image.RGBA) (*image.RGBA, error) {
	var transforms []video.TransformFunc
	if p.req.Scale != 1 {
		transforms = append(transforms, video.Scale(p.req.Scale, p.scaler))
	}
	transforms = append(transforms, p.transforms...)
	if len(transforms) == 0 {
		return img, nil
	}

	src := video.ReaderFunc(func() (*image.RGBA, error) {
		return img, nil
	})
	return video.Merge(transforms...)(src).Read()
}
