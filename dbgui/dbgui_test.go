package dbgui_test

import (
	"testing"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/dbgui"
	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/gfx/gfxtest"
)

type nopCallbacks struct{}

func (nopCallbacks) Init(*app.App) error        { return nil }
func (nopCallbacks) Frame(*app.App) error       { return nil }
func (nopCallbacks) Cleanup(*app.App)           {}
func (nopCallbacks) Event(*app.App, *app.Event) {}

type fixture struct {
	rec *gfxtest.Recorder
	gfx *gfx.Context
	app *app.App
	dbg *dbgui.DebugUI
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := gfxtest.New()
	ctx, err := gfx.Setup(gfx.Desc{Backend: rec})
	if err != nil {
		t.Fatalf("gfx.Setup: %v", err)
	}
	d, err := dbgui.Setup(ctx, 1)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	h := app.NewHeadless(app.Desc{Width: 640, Height: 480}, rec, nopCallbacks{})
	return &fixture{rec: rec, gfx: ctx, app: h.App, dbg: d}
}

func (f *fixture) frame(t *testing.T) {
	t.Helper()
	f.gfx.BeginDefaultPass(nil, 640, 480)
	f.dbg.Draw(f.app)
	f.gfx.EndPass()
	if err := f.gfx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
}

func (f *fixture) mouse(typ app.EventType, x, y float32) {
	f.dbg.Event(&app.Event{Type: typ, MouseX: x, MouseY: y, MouseButton: app.MouseButtonLeft})
}

func TestSetupCreatesResources(t *testing.T) {
	f := newFixture(t)
	if len(f.rec.Images) != 1 || len(f.rec.Pipelines) != 1 || len(f.rec.Buffers) != 2 {
		t.Errorf("created %d images, %d pipelines, %d buffers",
			len(f.rec.Images), len(f.rec.Pipelines), len(f.rec.Buffers))
	}
}

func TestDrawMenuBar(t *testing.T) {
	f := newFixture(t)
	f.frame(t)
	if len(f.rec.Filter(gfxtest.OpDraw)) == 0 {
		t.Error("the menu bar should be drawn")
	}
}

func TestMenuOpensWindow(t *testing.T) {
	f := newFixture(t)
	f.frame(t)

	// "gfx" spans x 8..45 of the bar.
	f.mouse(app.EventMouseDown, 20, 10)
	f.frame(t)
	f.mouse(app.EventMouseUp, 20, 10)
	f.frame(t)

	// Menu rows start at y 27 and are 17 apart; Images is the second.
	f.mouse(app.EventMouseMove, 30, 27+17+5)
	f.mouse(app.EventMouseDown, 30, 27+17+5)
	f.frame(t)
	if !f.dbg.IsOpen(dbgui.WindowImages) {
		t.Fatal("clicking Images should open the window")
	}
	if f.dbg.IsOpen(dbgui.WindowBuffers) {
		t.Error("other windows stay closed")
	}
	f.mouse(app.EventMouseUp, 30, 27+17+5)
	f.frame(t)
}

func TestAllWindowsRender(t *testing.T) {
	f := newFixture(t)
	for w := dbgui.WindowBuffers; w <= dbgui.WindowFrameStats; w++ {
		f.dbg.SetOpen(w, true)
	}
	for range 3 {
		f.frame(t)
	}
	if !f.gfx.Capturing() {
		t.Error("an open Calls window should capture gfx calls")
	}
	if len(f.gfx.CapturedCalls()) == 0 {
		t.Error("expected captured calls")
	}

	f.dbg.SetOpen(dbgui.WindowCalls, false)
	f.frame(t)
	if f.gfx.Capturing() {
		t.Error("closing Calls should stop capturing")
	}
}

func TestImagePreview(t *testing.T) {
	f := newFixture(t)
	img, err := f.gfx.MakeImage(gfx.ImageDesc{Width: 2, Height: 1, Data: make([]byte, 8), Label: "probe"})
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}
	f.dbg.SetOpen(dbgui.WindowImages, true)
	f.frame(t)
	f.frame(t)

	// The Images window is at (44, 64); rows start below the count and
	// the separator: font image first, probe second.
	y := float32(64 + 19 + 8 + 13 + 4 + 1 + 4 + 13 + 4 + 5)
	f.mouse(app.EventMouseMove, 60, y)
	f.mouse(app.EventMouseDown, 60, y)
	f.frame(t)
	f.mouse(app.EventMouseUp, 60, y)
	f.rec.Reset()
	f.frame(t)

	found := false
	for _, c := range f.rec.Filter(gfxtest.OpApplyBindings) {
		if c.Bindings.FSImages[0] == img {
			found = true
		}
	}
	if !found {
		t.Error("selected image should be previewed")
	}
}

func TestShutdown(t *testing.T) {
	f := newFixture(t)
	f.frame(t)
	f.dbg.Shutdown()
	if len(f.rec.Images)+len(f.rec.Buffers)+len(f.rec.Pipelines)+len(f.rec.Shaders) != 0 {
		t.Error("Shutdown should release the overlay resources")
	}
	f.rec.Reset()
	f.frame(t)
	if len(f.rec.Filter(gfxtest.OpDraw)) != 0 {
		t.Error("Draw after Shutdown should do nothing")
	}
	f.dbg.Event(&app.Event{Type: app.EventMouseMove})
	f.dbg.Shutdown()
}

func TestWindowString(t *testing.T) {
	if got := dbgui.WindowFrameStats.String(); got != "Frame Stats" {
		t.Errorf("String() = %q", got)
	}
	if got := dbgui.Window(99).String(); got != "Window(99)" {
		t.Errorf("String() = %q", got)
	}
}
