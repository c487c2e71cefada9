// Command screenshots runs every sample for a few frames and saves the
// last frame of each as a JPEG.
//
// Usage:
//
//	devbox shell
//	go run ./cmd/screenshots/ [-out doc/imgs] [-frames 30] [-v]
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/samples/clear"
	"github.com/go-theft-auto/samples/samples/cube"
	"github.com/go-theft-auto/samples/samples/imgui"
	"github.com/go-theft-auto/samples/samples/texcube"
	"github.com/go-theft-auto/samples/samples/uvwrap"
)

func init() {
	runtime.LockOSThread()
}

// sample is one program to capture.
type sample struct {
	name string
	desc app.Desc
	cb   app.Callbacks
}

func samples() []sample {
	return []sample{
		{"clear", clear.Desc(), clear.New()},
		{"cube", cube.Desc(), cube.New()},
		{"texcube", texcube.Desc(), texcube.New()},
		{"uvwrap", uvwrap.Desc(), uvwrap.New()},
		{"imgui", imgui.Desc(), imgui.New()},
	}
}

func main() {
	out := flag.String("out", "doc/imgs", "output directory")
	frames := flag.Int("frames", 30, "frames to render before capturing")
	verbose := flag.Bool("v", false, "verbose debug logging")
	flag.Parse()

	if err := run(*out, *frames, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outDir string, frames int, verbose bool) error {
	if frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", frames)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	app.SetVerbose(verbose)

	shots := samples()
	for _, s := range shots {
		c := newCapture(s.cb, frames, outputPath(outDir, s.name))
		desc := s.desc
		desc.MaxFrames = frames
		if err := app.Run(desc, c); err != nil {
			return fmt.Errorf("run %s: %w", s.name, err)
		}
		if c.err != nil {
			return fmt.Errorf("capture %s: %w", s.name, c.err)
		}
		if !c.saved {
			return fmt.Errorf("capture %s: window closed before frame %d", s.name, frames)
		}
		fmt.Printf("  %s (%dx%d)\n", c.path, c.width, c.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}
