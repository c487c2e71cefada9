package ui_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/samples/ui"
)

// mockRenderer records the draw lists it is handed.
type mockRenderer struct {
	renderCalls int
	vertices    []int
	err         error
}

func (m *mockRenderer) Render(dl *ui.DrawList) error {
	m.renderCalls++
	m.vertices = append(m.vertices, len(dl.VtxBuffer))
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 { return 1 }

func (m *mockRenderer) Resize(width, height int) {}

var display = ui.Vec2{X: 800, Y: 600}

// frame runs one UI frame with draw as the body.
func frame(t *testing.T, u *ui.UI, input *ui.InputState, draw func(ctx *ui.Context)) {
	t.Helper()
	ctx := u.Begin(input, display, 1.0/60)
	draw(ctx)
	if err := u.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}

func TestBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	u := ui.New(renderer)
	input := ui.NewInputState()

	ctx := u.Begin(input, display, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	ctx.Text("Hello World")
	ctx.TextColored("Colored", ui.ColorYellow)
	if err := u.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if ctx.FontTextureID != 1 {
		t.Errorf("FontTextureID = %d, want 1", ctx.FontTextureID)
	}
}

func TestEmptyDebugWindowIsNotRendered(t *testing.T) {
	renderer := &mockRenderer{}
	u := ui.New(renderer)
	frame(t, u, ui.NewInputState(), func(ctx *ui.Context) {})
	if renderer.renderCalls != 0 {
		t.Errorf("expected no render calls for an empty frame, got %d", renderer.renderCalls)
	}
}

func TestEndReturnsRendererError(t *testing.T) {
	renderer := &mockRenderer{err: errors.New("boom")}
	u := ui.New(renderer)
	ctx := u.Begin(ui.NewInputState(), display, 0.016)
	ctx.Text("x")
	if err := u.End(); err == nil {
		t.Fatal("expected renderer error")
	}
}

func TestEndWithoutBegin(t *testing.T) {
	u := ui.New(&mockRenderer{})
	if err := u.End(); err != nil {
		t.Fatalf("End() without Begin returned %v", err)
	}
}

func TestButtonClick(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()

	// The Debug window content starts at (68, 87).
	frame(t, u, input, func(ctx *ui.Context) {
		if ctx.Button("OK") {
			t.Error("button should not be clicked without mouse input")
		}
	})

	input.SetMousePos(75, 95)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, func(ctx *ui.Context) {
		if !ctx.Button("OK") {
			t.Error("expected button press")
		}
		if !ctx.WantCaptureMouse {
			t.Error("expected WantCaptureMouse over a window")
		}
	})

	frame(t, u, input, func(ctx *ui.Context) {
		if ctx.Button("OK") {
			t.Error("holding the button must not report another press")
		}
		if !ctx.IsAnyItemActive() {
			t.Error("held button should be active")
		}
	})

	input.SetMouseButton(ui.MouseButtonLeft, false)
	frame(t, u, input, func(ctx *ui.Context) {
		ctx.Button("OK")
	})
	frame(t, u, input, func(ctx *ui.Context) {
		if ctx.IsAnyItemActive() {
			t.Error("released button should not stay active")
		}
	})
}

func TestCheckboxToggle(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()
	var v bool

	frame(t, u, input, func(ctx *ui.Context) { ctx.Checkbox("check", &v) })

	input.SetMousePos(70, 90)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, func(ctx *ui.Context) {
		if !ctx.Checkbox("check", &v) {
			t.Error("expected checkbox change")
		}
	})
	if !v {
		t.Fatal("checkbox should be checked after click")
	}

	input.SetMouseButton(ui.MouseButtonLeft, false)
	frame(t, u, input, func(ctx *ui.Context) {
		if ctx.Checkbox("check", &v) {
			t.Error("no change expected without a click")
		}
	})
	if !v {
		t.Error("checkbox should stay checked")
	}
}

func TestSliderDrag(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()
	v := float32(0)

	// Frame width is 0.65 of the 384 pixel content width, floored: 249.
	frame(t, u, input, func(ctx *ui.Context) { ctx.SliderFloat("f", &v, 0, 10) })

	input.SetMousePos(68+5+(249-10)/2.0, 95)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, func(ctx *ui.Context) {
		if !ctx.SliderFloat("f", &v, 0, 10) {
			t.Error("expected slider change on press")
		}
	})
	if v < 4.99 || v > 5.01 {
		t.Errorf("v = %f, want 5", v)
	}

	// Dragging past the end clamps, even outside the frame.
	input.SetMousePos(700, 300)
	frame(t, u, input, func(ctx *ui.Context) { ctx.SliderFloat("f", &v, 0, 10) })
	if v != 10 {
		t.Errorf("v = %f, want 10", v)
	}

	input.SetMouseButton(ui.MouseButtonLeft, false)
	input.SetMousePos(70, 95)
	frame(t, u, input, func(ctx *ui.Context) {
		if ctx.SliderFloat("f", &v, 0, 10) {
			t.Error("released slider must not change")
		}
	})
	if v != 10 {
		t.Errorf("v = %f after release, want 10", v)
	}
}

func TestSliderIntSnaps(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()
	n := 0

	frame(t, u, input, func(ctx *ui.Context) { ctx.SliderInt("n", &n, 0, 4) })
	input.SetMousePos(68+5+239*0.6, 95)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, func(ctx *ui.Context) { ctx.SliderInt("n", &n, 0, 4) })
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
}

func TestWindowDrag(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()

	frame(t, u, input, func(ctx *ui.Context) { ctx.Text("x") })

	input.SetMousePos(100, 65)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, func(ctx *ui.Context) { ctx.Text("x") })

	input.SetMousePos(150, 115)
	frame(t, u, input, func(ctx *ui.Context) {
		if got := ctx.WindowPos(); got != (ui.Vec2{X: 110, Y: 110}) {
			t.Errorf("WindowPos() = %v, want {110 110}", got)
		}
		if !ctx.WantCaptureMouse {
			t.Error("expected WantCaptureMouse while dragging")
		}
		ctx.Text("x")
	})

	input.SetMouseButton(ui.MouseButtonLeft, false)
	input.SetMousePos(400, 400)
	frame(t, u, input, func(ctx *ui.Context) { ctx.Text("x") })
	frame(t, u, input, func(ctx *ui.Context) {
		if got := ctx.WindowPos(); got != (ui.Vec2{X: 110, Y: 110}) {
			t.Errorf("window moved after release: %v", got)
		}
	})
}

func TestWindowCollapse(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()
	win := func(ctx *ui.Context) bool {
		open := ctx.Begin("Win", nil, ui.WithPos(100, 100, ui.CondAlways), ui.WithSize(200, 150, ui.CondAlways))
		if open {
			ctx.Text("content")
		}
		ctx.End()
		return open
	}

	frame(t, u, input, func(ctx *ui.Context) {
		if !win(ctx) {
			t.Error("window should start expanded")
		}
	})

	input.SetMousePos(106, 108)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, func(ctx *ui.Context) {
		if win(ctx) {
			t.Error("Begin should return false once collapsed")
		}
	})
	input.SetMouseButton(ui.MouseButtonLeft, false)
	frame(t, u, input, func(ctx *ui.Context) {
		if win(ctx) {
			t.Error("window should stay collapsed")
		}
	})
}

func TestWindowClose(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()
	open := true
	win := func(ctx *ui.Context) {
		ctx.Begin("Closable", &open, ui.WithPos(100, 100, ui.CondAlways), ui.WithSize(200, 150, ui.CondAlways))
		ctx.Text("content")
		ctx.End()
	}

	frame(t, u, input, win)
	// Close button: right edge 300, minus padding 4 and size 13.
	input.SetMousePos(290, 108)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, win)
	if open {
		t.Fatal("close button should clear open")
	}

	renderer := &mockRenderer{}
	u2 := ui.New(renderer)
	frame(t, u2, ui.NewInputState(), win)
	if renderer.renderCalls != 0 {
		t.Errorf("closed window rendered %d lists", renderer.renderCalls)
	}
}

func TestTopmostWindowReceivesClick(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()
	var a, b bool
	draw := func(ctx *ui.Context) {
		ctx.Begin("A", nil, ui.WithPos(100, 100, ui.CondAlways), ui.WithSize(200, 200, ui.CondAlways))
		a = ctx.Button("Press")
		ctx.End()
		ctx.Begin("B", nil, ui.WithPos(100, 100, ui.CondAlways), ui.WithSize(200, 200, ui.CondAlways))
		b = ctx.Button("Press")
		ctx.End()
	}

	frame(t, u, input, draw)
	input.SetMousePos(112, 130)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, draw)
	if a {
		t.Error("covered window must not receive the click")
	}
	if !b {
		t.Error("topmost window should receive the click")
	}
}

func TestMainMenu(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()
	var quit, opened bool
	show := true
	menu := func(ctx *ui.Context) {
		opened = false
		if ctx.BeginMainMenuBar() {
			if ctx.BeginMenu("File") {
				opened = true
				ctx.MenuItem("Show", "", &show)
				if ctx.MenuItem("Quit", "Ctrl+Q", nil) {
					quit = true
				}
				ctx.EndMenu()
			}
			ctx.EndMainMenuBar()
		}
	}

	frame(t, u, input, menu)
	if opened {
		t.Fatal("menu should start closed")
	}

	// "File" spans x 8..52 in the bar.
	input.SetMousePos(20, 10)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, func(ctx *ui.Context) {
		menu(ctx)
		if !ctx.IsMenuOpen() {
			t.Error("expected an open menu")
		}
	})
	if !opened {
		t.Fatal("clicking the title should open the menu")
	}

	input.SetMouseButton(ui.MouseButtonLeft, false)
	frame(t, u, input, func(ctx *ui.Context) {
		if !ctx.WantCaptureKeyboard {
			t.Error("open menus capture the keyboard")
		}
		menu(ctx)
	})
	if !opened {
		t.Fatal("menu should stay open after release")
	}

	// The popup starts at (8, 19) with items from (16, 27); Quit is the
	// second row.
	input.SetMousePos(30, 27+13+4+5)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, menu)
	if !quit {
		t.Fatal("expected Quit to be selected")
	}
	if !show {
		t.Error("Show must not toggle when Quit is clicked")
	}

	input.SetMouseButton(ui.MouseButtonLeft, false)
	frame(t, u, input, menu)
	if opened {
		t.Error("menu should close after selecting an item")
	}
}

func TestMenuClosesOnOutsideClick(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()
	var opened bool
	menu := func(ctx *ui.Context) {
		opened = false
		if ctx.BeginMainMenuBar() {
			if ctx.BeginMenu("View") {
				opened = true
				ctx.MenuItem("Item", "", nil)
				ctx.EndMenu()
			}
			ctx.EndMainMenuBar()
		}
	}
	frame(t, u, input, menu)
	input.SetMousePos(20, 10)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, menu)
	input.SetMouseButton(ui.MouseButtonLeft, false)
	frame(t, u, input, menu)
	if !opened {
		t.Fatal("menu should be open")
	}

	input.SetMousePos(600, 500)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, menu)
	if opened {
		t.Error("clicking outside should close the menu")
	}
}

func TestCollapsingHeaderState(t *testing.T) {
	u := ui.New(&mockRenderer{})
	input := ui.NewInputState()
	var open bool

	frame(t, u, input, func(ctx *ui.Context) { open = ctx.CollapsingHeader("Section") })
	if open {
		t.Fatal("header should start closed")
	}
	input.SetMousePos(200, 95)
	input.SetMouseButton(ui.MouseButtonLeft, true)
	frame(t, u, input, func(ctx *ui.Context) { open = ctx.CollapsingHeader("Section") })
	if !open {
		t.Fatal("click should open the header")
	}
	input.SetMouseButton(ui.MouseButtonLeft, false)
	frame(t, u, input, func(ctx *ui.Context) { open = ctx.CollapsingHeader("Section") })
	if !open {
		t.Error("header should stay open")
	}
	frame(t, u, input, func(ctx *ui.Context) {
		if !ctx.CollapsingHeader("Other", ui.DefaultOpen()) {
			t.Error("DefaultOpen header should start open")
		}
	})
}

func TestAutoFitWindowHiddenFirstFrame(t *testing.T) {
	renderer := &mockRenderer{}
	u := ui.New(renderer)
	input := ui.NewInputState()
	draw := func(ctx *ui.Context) {
		ctx.Begin("Fit", nil)
		ctx.Text("0123456789")
		ctx.End()
	}
	frame(t, u, input, draw)
	if renderer.renderCalls != 0 {
		t.Fatalf("auto-fit window rendered on its first frame")
	}
	frame(t, u, input, func(ctx *ui.Context) {
		ctx.Begin("Fit", nil)
		size := ctx.WindowSize()
		ctx.Text("0123456789")
		ctx.End()
		// Text width plus padding; title bar, one line and padding.
		if size.X != 70+16 || size.Y != 19+13+16 {
			t.Errorf("fitted size = %v", size)
		}
	})
	if renderer.renderCalls != 1 {
		t.Errorf("expected the window on the second frame, got %d renders", renderer.renderCalls)
	}
}

func TestDemoWindow(t *testing.T) {
	renderer := &mockRenderer{}
	u := ui.New(renderer)
	input := ui.NewInputState()
	open := true
	for range 3 {
		frame(t, u, input, func(ctx *ui.Context) {
			ctx.ShowDemoWindow(&open, ui.WithPos(460, 20, ui.CondFirstUseEver))
		})
	}
	if renderer.renderCalls == 0 {
		t.Error("demo window should render")
	}
	if len(renderer.vertices) == 0 || renderer.vertices[len(renderer.vertices)-1] == 0 {
		t.Error("demo window should produce vertices")
	}
}

func TestStateStore(t *testing.T) {
	store := make(ui.MapStateStore)
	u := ui.New(&mockRenderer{}, ui.WithStateStore(store))
	ctx := u.Begin(ui.NewInputState(), display, 0.016)
	id := ctx.GetID("counter")
	if got := ui.GetState(ctx, id, 7); got != 7 {
		t.Errorf("GetState default = %d, want 7", got)
	}
	ui.SetState(ctx, id, 3)
	if got := ui.GetState(ctx, id, 7); got != 3 {
		t.Errorf("GetState = %d, want 3", got)
	}
	p := ui.StatePtr(ctx, ctx.GetID("ptr"), func() float32 { return 1.5 })
	*p = 2.5
	if q := ui.StatePtr[float32](ctx, ctx.GetID("ptr"), nil); *q != 2.5 {
		t.Errorf("StatePtr did not persist: %f", *q)
	}
	ui.DeleteState(ctx, id)
	if _, ok := store.Get(id); ok {
		t.Error("DeleteState left the value")
	}
	_ = u.End()
}

func TestIDs(t *testing.T) {
	u := ui.New(&mockRenderer{})
	ctx := u.Begin(ui.NewInputState(), display, 0.016)
	defer u.End()

	if ctx.GetID("OK##a") == ctx.GetID("OK##b") {
		t.Error("## suffixes should give distinct IDs")
	}
	if ctx.GetID("x") != ctx.GetID("x") {
		t.Error("IDs should be stable")
	}
	outer := ctx.GetID("x")
	ctx.PushIDInt(1)
	inner := ctx.GetID("x")
	ctx.PopID()
	if inner == outer {
		t.Error("PushID should open a new scope")
	}
	if ctx.GetID("x") != outer {
		t.Error("PopID should restore the scope")
	}
}

func TestColors(t *testing.T) {
	if c := ui.RGBA(255, 0, 0, 255); c != ui.ColorRed {
		t.Errorf("RGBA red = %#x", c)
	}
	if c := ui.RGBAf(0, 0, 1, 1); c != ui.ColorBlue {
		t.Errorf("RGBAf blue = %#x", c)
	}
	r, g, b, a := ui.UnpackRGBA(ui.RGBA(1, 2, 3, 4))
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("UnpackRGBA = %d %d %d %d", r, g, b, a)
	}
}

func TestStyleStack(t *testing.T) {
	u := ui.New(&mockRenderer{})
	ctx := u.Begin(ui.NewInputState(), display, 0.016)
	defer u.End()
	base := ctx.Style().ButtonColor
	ctx.PushStyleColor(ui.StyleColorButton, ui.ColorRed)
	if ctx.Style().ButtonColor != ui.ColorRed {
		t.Error("PushStyleColor did not apply")
	}
	ctx.PopStyle()
	if ctx.Style().ButtonColor != base {
		t.Error("PopStyle did not restore")
	}
}
