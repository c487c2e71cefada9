package texcube_test

import (
	"bytes"
	"testing"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/dbgui"
	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/gfx/gfxtest"
	"github.com/go-theft-auto/samples/samples/texcube"
	"github.com/go-theft-auto/samples/scene"
)

func start(t *testing.T) (*gfxtest.Recorder, *texcube.Sample, *app.Headless) {
	t.Helper()
	rec := gfxtest.New()
	s := texcube.New()
	h := app.NewHeadless(texcube.Desc(), rec, s)
	if err := h.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return rec, s, h
}

// cubeTexture returns the id of the 4x4 checkerboard.
func cubeTexture(t *testing.T, rec *gfxtest.Recorder) uint32 {
	t.Helper()
	for id, d := range rec.Images {
		if d.Label == "cube-texture" {
			return id
		}
	}
	t.Fatal("no cube texture")
	return 0
}

func TestInitCreatesTextureAndPipeline(t *testing.T) {
	rec, _, h := start(t)
	defer h.Cleanup()

	img := rec.Images[cubeTexture(t, rec)]
	if img.Width != 4 || img.Height != 4 || len(img.Data) != 64 {
		t.Errorf("texture %dx%d with %d bytes", img.Width, img.Height, len(img.Data))
	}
	if !bytes.Equal(img.Data, gfx.SliceBytes(scene.Checkerboard(4, 4))) {
		t.Error("texture is not the checkerboard")
	}
	var found bool
	for _, p := range rec.Pipelines {
		if p.Label != "cube-pipeline" {
			continue
		}
		found = true
		if p.Layout.Buffers[0].Stride != 20 {
			t.Errorf("stride = %d, want 20", p.Layout.Buffers[0].Stride)
		}
		if p.Layout.Attrs[1].Offset != 12 || p.Layout.Attrs[2].Offset != 16 {
			t.Errorf("packed offsets = %d, %d", p.Layout.Attrs[1].Offset, p.Layout.Attrs[2].Offset)
		}
		if p.Rasterizer.SampleCount != 4 {
			t.Errorf("sample count = %d", p.Rasterizer.SampleCount)
		}
	}
	if !found {
		t.Fatal("no cube pipeline")
	}
}

func TestFrameDrawsTexturedCube(t *testing.T) {
	rec, s, h := start(t)
	defer h.Cleanup()
	tex := cubeTexture(t, rec)

	for i, want := range []scene.Rotation{{X: 1, Y: 2}, {X: 2, Y: 4}} {
		rec.Reset()
		if err := h.Frame(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if got := s.Rotation(); got != want {
			t.Errorf("frame %d rotation = %+v", i, got)
		}
		pass := rec.Filter(gfxtest.OpBeginPass)
		if c := pass[0].Action.Colors[0].Value; c != (gfx.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}) {
			t.Errorf("clear color = %+v", c)
		}
		draws := rec.Filter(gfxtest.OpDraw)
		if len(draws) < 2 {
			t.Fatalf("frame %d draws = %d, want cube plus overlay", i, len(draws))
		}
		if draws[0].Base != 0 || draws[0].Count != 36 {
			t.Errorf("cube draw = %+v", draws[0])
		}
		if b := rec.Filter(gfxtest.OpApplyBindings)[0].Bindings; b.FSImages[0].ID != tex {
			t.Errorf("cube bound image %d, want %d", b.FSImages[0].ID, tex)
		}
		vp := scene.ViewProjection(scene.DefaultCamera, scene.Aspect(800, 600))
		mvp := scene.MVP(vp, want)
		if u := rec.Filter(gfxtest.OpApplyUniforms)[0]; !bytes.Equal(u.Data, gfx.AsBytes(&mvp)) {
			t.Errorf("frame %d mvp mismatch", i)
		}
	}
}

func TestProjectionFollowsResize(t *testing.T) {
	rec, _, h := start(t)
	defer h.Cleanup()
	h.Resize(600, 600)
	if err := h.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	vp := scene.ViewProjection(scene.DefaultCamera, 1)
	mvp := scene.MVP(vp, scene.Rotation{X: 1, Y: 2})
	if u := rec.Filter(gfxtest.OpApplyUniforms)[0]; !bytes.Equal(u.Data, gfx.AsBytes(&mvp)) {
		t.Error("mvp should use the resized aspect ratio")
	}
}

func TestOverlayEvents(t *testing.T) {
	_, s, h := start(t)
	defer h.Cleanup()
	if err := h.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	// Open the gfx menu, then pick its first entry.
	click := func(x, y float32) {
		h.Send(app.Event{Type: app.EventMouseMove, MouseX: x, MouseY: y, MouseButton: app.MouseButtonInvalid})
		h.Send(app.Event{Type: app.EventMouseDown, MouseX: x, MouseY: y, MouseButton: app.MouseButtonLeft})
		if err := h.Frame(); err != nil {
			t.Fatalf("Frame: %v", err)
		}
		h.Send(app.Event{Type: app.EventMouseUp, MouseX: x, MouseY: y, MouseButton: app.MouseButtonLeft})
		if err := h.Frame(); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}
	click(20, 10)
	click(30, 32)
	if !s.Overlay().IsOpen(dbgui.WindowBuffers) {
		t.Error("Buffers window should open from the menu")
	}
}

func TestCleanupReleasesEverything(t *testing.T) {
	rec, _, h := start(t)
	if err := h.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	h.Cleanup()
	if rec.Shutdowns != 1 {
		t.Errorf("Shutdowns = %d", rec.Shutdowns)
	}
	if n := len(rec.Buffers) + len(rec.Images) + len(rec.Shaders) + len(rec.Pipelines); n != 0 {
		t.Errorf("%d resources left", n)
	}
}
