// Package imgui is a UI-only program: the implicit Debug window with a
// few widgets, an optional second window and the widget demo window.
package imgui

import (
	"fmt"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/ui"
	"github.com/go-theft-auto/samples/ui/backend"
)

// Desc returns the window configuration.
func Desc() app.Desc {
	return app.Desc{
		Width:        1024,
		Height:       768,
		GLForceGLES2: true,
		WindowTitle:  "cimgui (sokol-app)",
	}
}

// Sample holds the per-run state.
type Sample struct {
	gfx      *gfx.Context
	renderer *backend.Renderer
	ui       *ui.UI
	input    *ui.InputState
	action   gfx.PassAction

	f           float32
	clearColor  [3]float32
	showTest    bool
	showAnother bool
}

// New returns an uninitialized sample with the demo window shown.
func New() *Sample {
	return &Sample{
		clearColor: [3]float32{0.7, 0.5, 0.0},
		showTest:   true,
	}
}

// Init sets up gfx and the UI renderer.
func (s *Sample) Init(a *app.App) error {
	ctx, err := gfx.Setup(gfx.Desc{Backend: a.Backend(), GLForceGLES2: a.GLES2()})
	if err != nil {
		return err
	}
	s.gfx = ctx
	s.renderer, err = backend.NewRenderer(ctx, backend.Desc{
		SampleCount: a.SampleCount(),
		Width:       a.Width(),
		Height:      a.Height(),
	})
	if err != nil {
		ctx.Shutdown()
		return fmt.Errorf("imgui: %w", err)
	}
	s.ui = ui.New(s.renderer, ui.WithFont(s.renderer.Font()))
	s.input = ui.NewInputState()
	return nil
}

// Frame builds the UI, then clears with the edited color and renders it.
func (s *Sample) Frame(a *app.App) error {
	w, h := a.Width(), a.Height()
	s.ui.Resize(w, h)
	c := s.ui.Begin(s.input, ui.Vec2{X: float32(w), Y: float32(h)}, float32(a.FrameDuration().Seconds()))

	// Widgets outside Begin/End land in the implicit Debug window.
	c.Text("Hello, world!")
	c.SliderFloat("float", &s.f, 0, 1)
	c.ColorEdit3("clear color", &s.clearColor)
	if c.Button("Test Window") {
		s.showTest = !s.showTest
	}
	if c.Button("Another Window") {
		s.showAnother = !s.showAnother
	}
	fps := c.Framerate()
	var ms float32
	if fps > 0 {
		ms = 1000 / fps
	}
	c.Textf("Application average %.3f ms/frame (%.1f FPS)", ms, fps)

	if s.showAnother {
		c.Begin("Another Window", &s.showAnother, ui.WithSize(200, 100, ui.CondFirstUseEver))
		c.Text("Hello")
		c.End()
	}
	if s.showTest {
		c.ShowDemoWindow(nil, ui.WithPos(460, 20, ui.CondFirstUseEver))
	}

	s.action.Colors[0] = gfx.ColorAttachmentAction{
		Action: gfx.ActionClear,
		Value:  gfx.Color{R: s.clearColor[0], G: s.clearColor[1], B: s.clearColor[2], A: 1},
	}
	s.gfx.BeginDefaultPass(&s.action, w, h)
	err := s.ui.End()
	s.gfx.EndPass()
	if cerr := s.gfx.Commit(); err == nil {
		err = cerr
	}
	return err
}

// ShowTestWindow reports whether the demo window is shown.
func (s *Sample) ShowTestWindow() bool { return s.showTest }

// ShowAnotherWindow reports whether the second window is shown.
func (s *Sample) ShowAnotherWindow() bool { return s.showAnother }

// Cleanup releases the renderer and gfx.
func (s *Sample) Cleanup(*app.App) {
	s.renderer.Destroy()
	s.gfx.Shutdown()
}

// Event forwards input to the UI.
func (s *Sample) Event(_ *app.App, ev *app.Event) {
	backend.HandleEvent(s.input, ev)
}
