// Package dbgui is the debug overlay shared by the samples: a main menu
// bar with inspector windows for gfx resources, captured calls and frame
// statistics.
//
//	d, err := dbgui.Setup(ctx, a.SampleCount())
//	...
//	ctx.BeginDefaultPass(&action, a.Width(), a.Height())
//	d.Draw(a)
//	ctx.EndPass()
package dbgui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/ui"
	"github.com/go-theft-auto/samples/ui/backend"
)

var dbguiLogLevel = new(slog.LevelVar)

var dbguiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: dbguiLogLevel}))

// SetVerbose enables or disables debug logging for the overlay.
func SetVerbose(v bool) {
	if v {
		dbguiLogLevel.Set(slog.LevelDebug)
	} else {
		dbguiLogLevel.Set(slog.LevelInfo)
	}
}

func init() {
	app.OnVerbose(SetVerbose)
}

// Window identifies one inspector window.
type Window int

const (
	WindowBuffers Window = iota
	WindowImages
	WindowShaders
	WindowPipelines
	WindowCalls
	WindowCapabilities
	WindowFrameStats
	windowCount
)

var windowTitles = [windowCount]string{
	WindowBuffers:      "Buffers",
	WindowImages:       "Images",
	WindowShaders:      "Shaders",
	WindowPipelines:    "Pipelines",
	WindowCalls:        "Calls",
	WindowCapabilities: "Capabilities",
	WindowFrameStats:   "Frame Stats",
}

func (w Window) String() string {
	if w < 0 || w >= windowCount {
		return fmt.Sprintf("Window(%d)", int(w))
	}
	return windowTitles[w]
}

// maxVertices sizes the stream buffers for windows listing every
// resource and captured call.
const maxVertices = 1 << 17

// DebugUI owns the overlay's UI, renderer and input state.
type DebugUI struct {
	gfx      *gfx.Context
	renderer *backend.Renderer
	ui       *ui.UI
	input    *ui.InputState
	open     [windowCount]bool
	selImage gfx.Image
	history  statsHistory

	// callScroll is the Calls window's scroll offset in pixels.
	callScroll float32
}

// Setup creates the overlay's gfx resources. sampleCount must match the
// default framebuffer.
func Setup(ctx *gfx.Context, sampleCount int) (*DebugUI, error) {
	r, err := backend.NewRenderer(ctx, backend.Desc{
		SampleCount: sampleCount,
		MaxVertices: maxVertices,
		MaxIndices:  3 * maxVertices,
	})
	if err != nil {
		return nil, fmt.Errorf("dbgui setup: %w", err)
	}
	d := &DebugUI{
		gfx:      ctx,
		renderer: r,
		input:    ui.NewInputState(),
	}
	d.ui = ui.New(r, ui.WithFont(r.Font()))
	dbguiLogger.Debug("dbgui setup", "samples", sampleCount)
	return d, nil
}

// SetOpen shows or hides an inspector window.
func (d *DebugUI) SetOpen(w Window, open bool) {
	if w >= 0 && w < windowCount {
		d.open[w] = open
	}
}

// IsOpen reports whether an inspector window is shown.
func (d *DebugUI) IsOpen(w Window) bool {
	return w >= 0 && w < windowCount && d.open[w]
}

// WantCaptureMouse reports whether the overlay used the mouse last frame.
func (d *DebugUI) WantCaptureMouse() bool {
	return d != nil && d.ui != nil && d.ui.Context().WantCaptureMouse
}

// Draw builds and renders one overlay frame. It must be called inside
// an open pass. Render failures are logged, not returned, since the
// overlay must never stop a sample.
func (d *DebugUI) Draw(a *app.App) {
	if d == nil || d.ui == nil {
		return
	}
	w, h := a.Width(), a.Height()
	dt := float32(a.FrameDuration().Seconds())
	d.ui.Resize(w, h)
	d.history.push(d.gfx.Stats(), dt)
	d.gfx.SetCapture(d.open[WindowCalls])

	c := d.ui.Begin(d.input, ui.Vec2{X: float32(w), Y: float32(h)}, dt)
	d.drawMenu(c)
	for win := range windowCount {
		if d.open[win] {
			d.drawWindow(c, win)
		}
	}
	if err := d.ui.End(); err != nil {
		dbguiLogger.Warn("dbgui render failed", "frame", a.FrameCount(), "err", err)
	}
}

// Event forwards a shell event to the overlay's input.
func (d *DebugUI) Event(ev *app.Event) {
	if d == nil || d.ui == nil {
		return
	}
	backend.HandleEvent(d.input, ev)
}

// Shutdown releases the overlay's gfx resources. Draw and Event are
// no-ops afterwards.
func (d *DebugUI) Shutdown() {
	if d == nil || d.ui == nil {
		return
	}
	d.gfx.SetCapture(false)
	d.renderer.Destroy()
	d.ui = nil
	dbguiLogger.Debug("dbgui shutdown")
}
