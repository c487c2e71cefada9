// Package app is the application shell: it owns the window and GL
// context, translates input into Events and drives a four-callback
// lifecycle (Init, Frame, Cleanup, Event).
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-theft-auto/samples/gfx"
)

var appLogLevel = new(slog.LevelVar)

var appLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: appLogLevel}))

var verboseHooks []func(bool)

// OnVerbose registers a function that Main calls with the -v setting.
// Packages with their own log level register their SetVerbose here.
func OnVerbose(fn func(bool)) {
	verboseHooks = append(verboseHooks, fn)
}

// SetVerbose sets debug logging for the shell and every registered package.
func SetVerbose(v bool) {
	if v {
		appLogLevel.Set(slog.LevelDebug)
	} else {
		appLogLevel.Set(slog.LevelInfo)
	}
	for _, fn := range verboseHooks {
		fn(v)
	}
}

// ErrLifecycle is returned when callbacks are driven out of order.
var ErrLifecycle = errors.New("app: lifecycle violation")

// Desc is the static window configuration of a program.
type Desc struct {
	Width                    int
	Height                   int
	SampleCount              int
	WindowTitle              string
	GLForceGLES2             bool
	IOSKeyboardResizesCanvas bool
	// SwapInterval is the number of refreshes per buffer swap. Nil means
	// DefaultSwapInterval; zero disables vsync.
	SwapInterval *int
	// TimeScaledAnimation asks animated programs to scale per-frame
	// steps by the frame duration instead of advancing a fixed step.
	TimeScaledAnimation bool
	// MaxFrames stops the frame loop after that many frames when > 0.
	MaxFrames int
}

// Default window parameters applied to zero fields.
const (
	DefaultWidth        = 640
	DefaultHeight       = 480
	DefaultTitle        = "sample"
	DefaultSwapInterval = 1
)

func (d Desc) withDefaults() Desc {
	if d.Width <= 0 {
		d.Width = DefaultWidth
	}
	if d.Height <= 0 {
		d.Height = DefaultHeight
	}
	if d.SampleCount <= 0 {
		d.SampleCount = 1
	}
	if d.WindowTitle == "" {
		d.WindowTitle = DefaultTitle
	}
	if d.SwapInterval == nil || *d.SwapInterval < 0 {
		v := DefaultSwapInterval
		d.SwapInterval = &v
	}
	return d
}

// Callbacks is implemented by every program driven by the shell.
type Callbacks interface {
	// Init runs once before the first frame. An error aborts the program.
	Init(a *App) error
	// Frame runs once per display refresh. An error stops the loop.
	Frame(a *App) error
	// Cleanup runs once at shutdown if Init succeeded.
	Cleanup(a *App)
	// Event receives every input and window event.
	Event(a *App, ev *Event)
}

type lifecycle int

const (
	stateUninit lifecycle = iota
	stateRunning
	stateShutdown
)

// App is the per-run shell state handed to every callback.
type App struct {
	desc          Desc
	backend       gfx.Backend
	width         int
	height        int
	windowWidth   int
	windowHeight  int
	frameCount    uint64
	frameDuration time.Duration
	quit          bool
	state         lifecycle
}

func newApp(desc Desc, backend gfx.Backend) *App {
	desc = desc.withDefaults()
	return &App{
		desc:          desc,
		backend:       backend,
		width:         desc.Width,
		height:        desc.Height,
		windowWidth:   desc.Width,
		windowHeight:  desc.Height,
		frameDuration: time.Second / 60,
	}
}

// Width returns the current framebuffer width in pixels.
func (a *App) Width() int { return a.width }

// Height returns the current framebuffer height in pixels.
func (a *App) Height() int { return a.height }

// FrameCount returns the number of completed frames.
func (a *App) FrameCount() uint64 { return a.frameCount }

// FrameDuration returns the duration of the previous frame.
func (a *App) FrameDuration() time.Duration { return a.frameDuration }

// GLES2 reports whether the program asked for the GLES2 feature level.
func (a *App) GLES2() bool { return a.desc.GLForceGLES2 }

// SampleCount returns the MSAA sample count of the default framebuffer.
func (a *App) SampleCount() int { return a.desc.SampleCount }

// Backend returns the gfx device backend for gfx.Setup.
func (a *App) Backend() gfx.Backend { return a.backend }

// Desc returns the effective window configuration after overrides and defaults.
func (a *App) Desc() Desc { return a.desc }

// Quit asks the shell to stop after the current frame.
func (a *App) Quit() { a.quit = true }

// Quitting reports whether Quit was called.
func (a *App) Quitting() bool { return a.quit }

func (a *App) init(cb Callbacks) error {
	if a.state != stateUninit {
		return fmt.Errorf("init in state %d: %w", a.state, ErrLifecycle)
	}
	appLogger.Debug("init", "title", a.desc.WindowTitle, "w", a.width, "h", a.height,
		"samples", a.desc.SampleCount, "gles2", a.desc.GLForceGLES2)
	if err := cb.Init(a); err != nil {
		a.state = stateShutdown
		return fmt.Errorf("init: %w", err)
	}
	a.state = stateRunning
	return nil
}

func (a *App) frame(cb Callbacks) error {
	if a.state != stateRunning {
		return fmt.Errorf("frame in state %d: %w", a.state, ErrLifecycle)
	}
	if err := cb.Frame(a); err != nil {
		return fmt.Errorf("frame %d: %w", a.frameCount, err)
	}
	a.frameCount++
	if a.desc.MaxFrames > 0 && a.frameCount >= uint64(a.desc.MaxFrames) {
		a.quit = true
	}
	return nil
}

func (a *App) event(cb Callbacks, ev *Event) {
	if a.state != stateRunning {
		return
	}
	ev.FrameCount = a.frameCount
	ev.WindowWidth, ev.WindowHeight = a.windowWidth, a.windowHeight
	ev.FramebufferWidth, ev.FramebufferHeight = a.width, a.height
	cb.Event(a, ev)
}

func (a *App) cleanup(cb Callbacks) {
	if a.state != stateRunning {
		return
	}
	cb.Cleanup(a)
	a.state = stateShutdown
	appLogger.Debug("cleanup", "frames", a.frameCount)
}
