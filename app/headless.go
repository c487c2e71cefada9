package app

import (
	"time"

	"github.com/go-theft-auto/samples/gfx"
)

// Headless drives Callbacks without a window, for tests and batch runs.
// The framebuffer has a fixed size and every frame lasts 1/60 s unless
// FrameDuration is changed.
type Headless struct {
	App *App
	cb  Callbacks
}

// NewHeadless returns a driver whose App reports backend and desc.
func NewHeadless(desc Desc, backend gfx.Backend, cb Callbacks) *Headless {
	return &Headless{App: newApp(desc, backend), cb: cb}
}

// Init runs the Init callback.
func (h *Headless) Init() error { return h.App.init(h.cb) }

// Frame runs one Frame callback.
func (h *Headless) Frame() error { return h.App.frame(h.cb) }

// Send dispatches ev to the Event callback.
func (h *Headless) Send(ev Event) { h.App.event(h.cb, &ev) }

// Resize changes the framebuffer size and sends a resized event.
func (h *Headless) Resize(width, height int) {
	h.App.width, h.App.height = width, height
	h.App.windowWidth, h.App.windowHeight = width, height
	h.Send(Event{Type: EventResized, MouseButton: MouseButtonInvalid})
}

// SetFrameDuration changes the duration reported for following frames.
func (h *Headless) SetFrameDuration(d time.Duration) { h.App.frameDuration = d }

// Cleanup runs the Cleanup callback once.
func (h *Headless) Cleanup() { h.App.cleanup(h.cb) }

// Run initializes, renders frames (or until Quit) and cleans up.
// Cleanup also runs when a frame fails.
func (h *Headless) Run(frames int) error {
	if err := h.Init(); err != nil {
		return err
	}
	defer h.Cleanup()
	for i := 0; i < frames && !h.App.quit; i++ {
		if err := h.Frame(); err != nil {
			return err
		}
	}
	return nil
}
