// Package clear animates the default framebuffer's clear color. It draws
// nothing but the debug overlay.
package clear

import (
	"fmt"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/dbgui"
	"github.com/go-theft-auto/samples/gfx"
)

// GreenStep is added to the clear color's green channel every frame.
const GreenStep float32 = 0.01

// Desc returns the window configuration.
func Desc() app.Desc {
	return app.Desc{
		Width:        400,
		Height:       300,
		GLForceGLES2: true,
		WindowTitle:  "Clear (sokol app)",
	}
}

// Sample holds the per-run state.
type Sample struct {
	gfx    *gfx.Context
	dbg    *dbgui.DebugUI
	action gfx.PassAction
}

// New returns an uninitialized sample.
func New() *Sample { return &Sample{} }

// Init sets up gfx and the overlay and starts from opaque red.
func (s *Sample) Init(a *app.App) error {
	ctx, err := gfx.Setup(gfx.Desc{Backend: a.Backend(), GLForceGLES2: a.GLES2()})
	if err != nil {
		return err
	}
	s.gfx = ctx
	s.action.Colors[0] = gfx.ColorAttachmentAction{
		Action: gfx.ActionClear,
		Value:  gfx.Color{R: 1, G: 0, B: 0, A: 1},
	}
	s.dbg, err = dbgui.Setup(ctx, a.SampleCount())
	if err != nil {
		ctx.Shutdown()
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

// Frame steps the green channel and clears.
func (s *Sample) Frame(a *app.App) error {
	c := &s.action.Colors[0].Value
	c.G = nextGreen(c.G)
	s.gfx.BeginDefaultPass(&s.action, a.Width(), a.Height())
	s.dbg.Draw(a)
	s.gfx.EndPass()
	return s.gfx.Commit()
}

// ClearColor returns the clear color of the next pass.
func (s *Sample) ClearColor() gfx.Color { return s.action.Colors[0].Value }

// Cleanup releases the overlay and gfx.
func (s *Sample) Cleanup(*app.App) {
	s.dbg.Shutdown()
	s.gfx.Shutdown()
}

// Event forwards input to the overlay.
func (s *Sample) Event(_ *app.App, ev *app.Event) {
	s.dbg.Event(ev)
}

func nextGreen(g float32) float32 {
	g += GreenStep
	if g > 1 {
		return 0
	}
	return g
}
