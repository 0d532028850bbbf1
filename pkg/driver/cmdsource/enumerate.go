package cmdsource

import (
	"regexp"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pion/screencapture/pkg/display"
	"github.com/pion/screencapture/pkg/driver"
)

type profilerReport struct {
	Adapters []struct {
		Name     string           `json:"_name"`
		Displays []profilerScreen `json:"spdisplays_ndrvs"`
	} `json:"SPDisplaysDataType"`
}

type profilerScreen struct {
	Name       string `json:"_name"`
	Pixels     string `json:"_spdisplays_pixels"`
	Resolution string `json:"_spdisplays_resolution"`
	Main       string `json:"spdisplays_main"`
	Online     string `json:"spdisplays_online"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var sizePattern = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)

// Enumerate lists displays in the order the display information tool
// reports them, numbered from 1 like the capture tool's -D selector. The
// tool doesn't tell where displays sit, so X and Y are left at 0. When no
// display can be made out of the output, a single Virtual display standing
// for the whole desktop is returned and the layout is marked Degraded.
func (c *cmdSource) Enumerate() (display.Layout, error) {
	stdout, stderr, err := c.displayInfo.run(c.run, c.log)
	if err != nil {
		return display.Layout{}, &driver.EnumerationError{
			Platform: c.platform,
			Stderr:   string(stderr),
			Err:      err,
		}
	}

	monitors := parseDisplays(stdout)
	if len(monitors) == 0 {
		c.log.Warnf("can't tell displays apart from %s output, using the whole desktop", c.displayInfo.name())
		return display.Layout{
			Monitors: []display.Geometry{{ID: "1", Primary: true, Virtual: true}},
			Degraded: true,
		}, nil
	}

	c.log.Debugf("enumerated %d display(s): %v", len(monitors), monitors)
	return display.Layout{Monitors: monitors}, nil
}

func parseDisplays(out []byte) []display.Geometry {
	var report profilerReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil
	}

	var monitors []display.Geometry
	primary := -1
	for _, adapter := range report.Adapters {
		for _, s := range adapter.Displays {
			if s.Online == "spdisplays_no" {
				continue
			}
			w, h, ok := parseSize(s.Pixels)
			if !ok {
				w, h, ok = parseSize(s.Resolution)
			}
			if !ok {
				continue
			}
			if primary < 0 && s.Main == "spdisplays_yes" {
				primary = len(monitors)
			}
			monitors = append(monitors, display.Geometry{
				ID:     strconv.Itoa(len(monitors) + 1),
				Width:  w,
				Height: h,
			})
		}
	}
	if len(monitors) == 0 {
		return nil
	}
	if primary < 0 {
		primary = 0
	}
	monitors[primary].Primary = true
	return monitors
}

func parseSize(s string) (int, int, bool) {
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	w, errW := strconv.Atoi(m[1])
	h, errH := strconv.Atoi(m[2])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
