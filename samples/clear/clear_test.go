package clear

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/gfx/gfxtest"
)

func TestNextGreenWraps(t *testing.T) {
	if g := nextGreen(0.5); !mgl32.FloatEqualThreshold(g, 0.51, 1e-6) {
		t.Errorf("nextGreen(0.5) = %f", g)
	}
	if g := nextGreen(0.995); g != 0 {
		t.Errorf("nextGreen(0.995) = %f, want 0", g)
	}
	if g := nextGreen(0.99); g > 1 {
		t.Errorf("nextGreen(0.99) = %f exceeds 1", g)
	}
}

func TestFramesAnimateClearColor(t *testing.T) {
	rec := gfxtest.New()
	s := New()
	h := app.NewHeadless(Desc(), rec, s)
	if err := h.Run(3); err != nil {
		t.Fatalf("Run: %v", err)
	}

	passes := rec.Filter(gfxtest.OpBeginPass)
	if len(passes) != 3 {
		t.Fatalf("passes = %d, want 3", len(passes))
	}
	for i, p := range passes {
		c := p.Action.Colors[0].Value
		want := float32(i+1) * GreenStep
		if c.R != 1 || c.B != 0 || c.A != 1 || !mgl32.FloatEqualThreshold(c.G, want, 1e-5) {
			t.Errorf("frame %d clear = %+v, want green %f", i, c, want)
		}
		if p.Width != 400 || p.Height != 300 {
			t.Errorf("frame %d pass size = %dx%d", i, p.Width, p.Height)
		}
	}
	if rec.Shutdowns != 1 {
		t.Errorf("Shutdowns = %d, want 1", rec.Shutdowns)
	}
	if len(rec.Buffers)+len(rec.Images)+len(rec.Pipelines)+len(rec.Shaders) != 0 {
		t.Error("resources left after cleanup")
	}
}

func TestGreenStaysInRange(t *testing.T) {
	s := New()
	h := app.NewHeadless(Desc(), gfxtest.New(), s)
	if err := h.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer h.Cleanup()
	wrapped := false
	prev := s.ClearColor().G
	for range 150 {
		if err := h.Frame(); err != nil {
			t.Fatalf("Frame: %v", err)
		}
		g := s.ClearColor().G
		if g < 0 || g > 1 {
			t.Fatalf("green = %f out of range", g)
		}
		if g < prev {
			wrapped = true
		}
		prev = g
	}
	if !wrapped {
		t.Error("green never wrapped in 150 frames")
	}
}
