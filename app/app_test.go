package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/gfx/gfxtest"
)

// recordingCallbacks logs each callback it receives.
type recordingCallbacks struct {
	log       []string
	events    []app.Event
	initErr   error
	frameErr  error
	failAfter uint64
}

func (r *recordingCallbacks) Init(a *app.App) error {
	r.log = append(r.log, "init")
	return r.initErr
}

func (r *recordingCallbacks) Frame(a *app.App) error {
	r.log = append(r.log, "frame")
	if r.frameErr != nil && a.FrameCount() >= r.failAfter {
		return r.frameErr
	}
	return nil
}

func (r *recordingCallbacks) Cleanup(a *app.App) {
	r.log = append(r.log, "cleanup")
}

func (r *recordingCallbacks) Event(a *app.App, ev *app.Event) {
	r.log = append(r.log, "event")
	r.events = append(r.events, *ev)
}

func TestHeadlessLifecycleOrder(t *testing.T) {
	cb := &recordingCallbacks{}
	h := app.NewHeadless(app.Desc{}, gfxtest.New(), cb)

	if err := h.Frame(); !errors.Is(err, app.ErrLifecycle) {
		t.Fatalf("Frame before Init: got %v, want ErrLifecycle", err)
	}
	h.Send(app.Event{Type: app.EventKeyDown, Key: app.KeyA})
	if len(cb.log) != 0 {
		t.Fatalf("callbacks before Init: %v", cb.log)
	}

	if err := h.Run(3); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"init", "frame", "frame", "frame", "cleanup"}
	if len(cb.log) != len(want) {
		t.Fatalf("log = %v, want %v", cb.log, want)
	}
	for i := range want {
		if cb.log[i] != want[i] {
			t.Fatalf("log = %v, want %v", cb.log, want)
		}
	}
	if got := h.App.FrameCount(); got != 3 {
		t.Errorf("FrameCount = %d, want 3", got)
	}

	if err := h.Init(); !errors.Is(err, app.ErrLifecycle) {
		t.Errorf("second Init: got %v, want ErrLifecycle", err)
	}
	h.Cleanup()
	if n := len(cb.log); n != len(want) {
		t.Errorf("Cleanup ran twice: %v", cb.log)
	}
}

func TestHeadlessInitFailureSkipsCleanup(t *testing.T) {
	boom := errors.New("boom")
	cb := &recordingCallbacks{initErr: boom}
	h := app.NewHeadless(app.Desc{}, gfxtest.New(), cb)
	if err := h.Run(5); !errors.Is(err, boom) {
		t.Fatalf("Run: got %v, want %v", err, boom)
	}
	if len(cb.log) != 1 || cb.log[0] != "init" {
		t.Errorf("log = %v, want [init]", cb.log)
	}
}

func TestHeadlessFrameErrorRunsCleanup(t *testing.T) {
	boom := errors.New("boom")
	cb := &recordingCallbacks{frameErr: boom, failAfter: 2}
	h := app.NewHeadless(app.Desc{}, gfxtest.New(), cb)
	if err := h.Run(10); !errors.Is(err, boom) {
		t.Fatalf("Run: got %v, want %v", err, boom)
	}
	if got := cb.log[len(cb.log)-1]; got != "cleanup" {
		t.Errorf("last callback = %q, want cleanup", got)
	}
	if got := h.App.FrameCount(); got != 2 {
		t.Errorf("FrameCount = %d, want 2", got)
	}
}

func TestMaxFramesQuits(t *testing.T) {
	cb := &recordingCallbacks{}
	h := app.NewHeadless(app.Desc{MaxFrames: 4}, gfxtest.New(), cb)
	if err := h.Run(100); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := h.App.FrameCount(); got != 4 {
		t.Errorf("FrameCount = %d, want 4", got)
	}
	if !h.App.Quitting() {
		t.Error("Quitting() = false after MaxFrames")
	}
}

func TestDescDefaults(t *testing.T) {
	h := app.NewHeadless(app.Desc{}, gfxtest.New(), &recordingCallbacks{})
	d := h.App.Desc()
	if d.Width != app.DefaultWidth || d.Height != app.DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", d.Width, d.Height, app.DefaultWidth, app.DefaultHeight)
	}
	if d.SampleCount != 1 || h.App.SampleCount() != 1 {
		t.Errorf("SampleCount = %d, want 1", d.SampleCount)
	}
	if d.WindowTitle != app.DefaultTitle {
		t.Errorf("WindowTitle = %q", d.WindowTitle)
	}
	if d.SwapInterval == nil || *d.SwapInterval != app.DefaultSwapInterval {
		t.Errorf("SwapInterval = %v, want %d", d.SwapInterval, app.DefaultSwapInterval)
	}
	if h.App.FrameDuration() != time.Second/60 {
		t.Errorf("FrameDuration = %v", h.App.FrameDuration())
	}
}

func TestEventsCarrySizes(t *testing.T) {
	cb := &recordingCallbacks{}
	h := app.NewHeadless(app.Desc{Width: 400, Height: 300}, gfxtest.New(), cb)
	if err := h.Init(); err != nil {
		t.Fatal(err)
	}
	if err := h.Frame(); err != nil {
		t.Fatal(err)
	}
	h.Send(app.Event{Type: app.EventMouseMove, MouseX: 10, MouseY: 20})
	h.Resize(800, 600)

	if len(cb.events) != 2 {
		t.Fatalf("got %d events, want 2", len(cb.events))
	}
	mv := cb.events[0]
	if mv.FramebufferWidth != 400 || mv.FramebufferHeight != 300 || mv.FrameCount != 1 {
		t.Errorf("move event = %+v", mv)
	}
	rs := cb.events[1]
	if rs.Type != app.EventResized || rs.FramebufferWidth != 800 || rs.WindowHeight != 600 {
		t.Errorf("resize event = %+v", rs)
	}
	if h.App.Width() != 800 || h.App.Height() != 600 {
		t.Errorf("app size = %dx%d", h.App.Width(), h.App.Height())
	}
}

func TestEventTypeString(t *testing.T) {
	if got := app.EventQuitRequested.String(); got != "quit_requested" {
		t.Errorf("String = %q", got)
	}
	if got := app.EventType(99).String(); got == "" {
		t.Error("unknown event type has empty name")
	}
}

func TestParseConfig(t *testing.T) {
	c, err := app.ParseConfig([]byte(`
width = 1280
height = 720
sample_count = 4
window_title = "big"
gl_force_gles2 = false
time_scaled_animation = true
max_frames = 10
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	d := c.Apply(app.Desc{Width: 640, Height: 480, GLForceGLES2: true, WindowTitle: "small"})
	if d.Width != 1280 || d.Height != 720 || d.SampleCount != 4 {
		t.Errorf("size/samples = %dx%d/%d", d.Width, d.Height, d.SampleCount)
	}
	if d.WindowTitle != "big" || d.GLForceGLES2 || !d.TimeScaledAnimation || d.MaxFrames != 10 {
		t.Errorf("applied desc = %+v", d)
	}
}

func TestParseConfigUnsetKeepsDesc(t *testing.T) {
	c, err := app.ParseConfig([]byte(`verbose = true`))
	if err != nil {
		t.Fatal(err)
	}
	in := app.Desc{Width: 400, Height: 300, GLForceGLES2: true, WindowTitle: "Clear"}
	if got := c.Apply(in); got != in {
		t.Errorf("Apply changed desc: %+v", got)
	}
	if !c.Verbose {
		t.Error("Verbose not decoded")
	}
}

func TestSwapIntervalZeroDisablesVSync(t *testing.T) {
	c, err := app.ParseConfig([]byte("swap_interval = 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	d := c.Apply(app.Desc{})
	if d.SwapInterval == nil || *d.SwapInterval != 0 {
		t.Fatalf("applied SwapInterval = %v, want 0", d.SwapInterval)
	}
	h := app.NewHeadless(d, gfxtest.New(), &recordingCallbacks{})
	if got := h.App.Desc().SwapInterval; got == nil || *got != 0 {
		t.Errorf("SwapInterval after defaults = %v, want 0", got)
	}

	t.Setenv(app.EnvSwapInterval, "0")
	c, err = app.EnvConfig()
	if err != nil {
		t.Fatal(err)
	}
	if c.SwapInterval == nil || *c.SwapInterval != 0 {
		t.Errorf("env SwapInterval = %v, want 0", c.SwapInterval)
	}
}

func TestParseConfigUnknownKey(t *testing.T) {
	if _, err := app.ParseConfig([]byte("widht = 3\n")); err == nil {
		t.Fatal("unknown key accepted")
	}
	if _, err := app.ParseConfig([]byte("width = \"wide\"\n")); err == nil {
		t.Fatal("wrong type accepted")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := app.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want ErrNotExist", err)
	}
}

func TestEnvConfig(t *testing.T) {
	t.Setenv(app.EnvWidth, "320")
	t.Setenv(app.EnvGLForceGLES2, "true")
	t.Setenv(app.EnvWindowTitle, "from env")
	c, err := app.EnvConfig()
	if err != nil {
		t.Fatal(err)
	}
	d := c.Apply(app.Desc{Width: 640, Height: 480})
	if d.Width != 320 || d.Height != 480 || !d.GLForceGLES2 || d.WindowTitle != "from env" {
		t.Errorf("applied desc = %+v", d)
	}

	t.Setenv(app.EnvSampleCount, "many")
	if _, err := app.EnvConfig(); err == nil {
		t.Error("bad integer accepted")
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := app.LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(app.EnvHeight+"=200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// t.Setenv restores the variable; godotenv does not override set ones.
	t.Setenv(app.EnvHeight, "")
	os.Unsetenv(app.EnvHeight)
	if err := app.LoadEnvFile(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv(app.EnvHeight); got != "200" {
		t.Errorf("%s = %q, want 200", app.EnvHeight, got)
	}
}
