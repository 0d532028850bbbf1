package screencapture

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pion/screencapture/pkg/io/video"
)

// Defaults applied by the Save helpers and the CLI.
const (
	DefaultQuality = 75
	DefaultScale   = 1.0
)

// Mode selects what a capture request covers.
type Mode int

const (
	// ModeSingle captures the primary monitor only.
	ModeSingle Mode = iota
	// ModeAll composites every monitor into one image.
	ModeAll
	// ModeEach writes one image per monitor.
	ModeEach
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeAll:
		return "all"
	case ModeEach:
		return "each"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps the names returned by Mode.String back onto modes.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeSingle, ModeAll, ModeEach} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown capture mode %q", s)
}

// Request describes one capture.
type Request struct {
	Mode Mode
	// Quality is handed to the encoder as is, 0-100.
	Quality int
	// Scale must be greater than 0; 1 keeps the captured size.
	Scale float64
	// Destination is the output path. In ModeEach it is a template holding
	// one %d verb, replaced by the monitor's 0-based ordinal.
	Destination string
}

// Result lists what a capture wrote.
type Result struct {
	Paths []string
	// Degraded is set when the platform couldn't tell monitors apart, so a
	// ModeEach capture produced one image of the whole desktop.
	Degraded bool
}

var ordinalVerb = regexp.MustCompile(`%[-+ #0]*[0-9]*d`)

func (r Request) validate() error {
	if err := video.ValidateScale(r.Scale); err != nil {
		return err
	}
	if r.Destination == "" {
		return ErrInvalidDestination
	}
	if r.Mode == ModeEach {
		return validateTemplate(r.Destination)
	}
	if r.Mode != ModeSingle && r.Mode != ModeAll {
		return fmt.Errorf("unknown capture mode %v", r.Mode)
	}
	return nil
}

func validateTemplate(tmpl string) error {
	rest := strings.ReplaceAll(tmpl, "%%", "")
	if strings.Count(rest, "%") != 1 || len(ordinalVerb.FindAllString(rest, -1)) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidTemplate, tmpl)
	}
	return nil
}

func expandTemplate(tmpl string, ordinal int) string {
	return fmt.Sprintf(tmpl, ordinal)
}
