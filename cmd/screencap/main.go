// Command screencap captures the screen to an image file.
//
//	screencap -o shot.jpg
//	screencap -mode all -o desktop.png -scale 0.5
//	screencap -mode each -o screen_%d.jpg -quality 60
//	screencap -list
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pion/screencapture"
	"github.com/pion/screencapture/pkg/io/video"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "screencap:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("screencap", flag.ContinueOnError)
	mode := fs.String("mode", screencapture.ModeSingle.String(), "what to capture: single, all or each")
	out := fs.String("o", "screenshot.jpg", "output path; for -mode each, a template with one %d")
	quality := fs.Int("quality", screencapture.DefaultQuality, "JPEG quality, 0-100")
	scale := fs.Float64("scale", screencapture.DefaultScale, "resize factor, greater than 0")
	list := fs.Bool("list", false, "list monitors and exit")
	tempDir := fs.String("tmp", "", "directory for intermediate files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := screencapture.ParseMode(*mode)
	if err != nil {
		return err
	}
	if err := video.ValidateScale(*scale); err != nil {
		return err
	}

	var opts []screencapture.CapturerOption
	if *tempDir != "" {
		opts = append(opts, screencapture.WithTempDir(*tempDir))
	}
	c, err := screencapture.New(opts...)
	if err != nil {
		return err
	}

	if *list {
		layout, err := c.Backend().Enumerate()
		if err != nil {
			return err
		}
		for i, g := range layout.Monitors {
			primary := ""
			if g.Primary {
				primary = " (primary)"
			}
			fmt.Printf("%d: %s%s\n", i, g, primary)
		}
		if layout.Degraded {
			fmt.Println("monitors couldn't be told apart; the list stands for the whole desktop")
		}
		return nil
	}

	res, err := c.Capture(screencapture.Request{
		Mode:        m,
		Quality:     *quality,
		Scale:       *scale,
		Destination: *out,
	})
	if err != nil {
		return err
	}
	for _, p := range res.Paths {
		fmt.Println(p)
	}
	if res.Degraded {
		fmt.Fprintln(os.Stderr, "screencap: monitors couldn't be told apart, captured the whole desktop instead")
	}
	return nil
}
