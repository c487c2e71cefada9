package cube_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/gfx/gfxtest"
	"github.com/go-theft-auto/samples/samples/cube"
	"github.com/go-theft-auto/samples/scene"
)

func TestInitCreatesResources(t *testing.T) {
	rec := gfxtest.New()
	h := app.NewHeadless(cube.Desc(), rec, cube.New())
	if err := h.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer h.Cleanup()

	if len(rec.Buffers) != 2 || len(rec.Shaders) != 1 || len(rec.Pipelines) != 1 {
		t.Fatalf("created %d buffers, %d shaders, %d pipelines",
			len(rec.Buffers), len(rec.Shaders), len(rec.Pipelines))
	}
	for _, p := range rec.Pipelines {
		if p.Layout.Buffers[0].Stride != 28 {
			t.Errorf("stride = %d, want 28", p.Layout.Buffers[0].Stride)
		}
		if p.Layout.Attrs[1].Offset != 12 || p.Layout.Attrs[1].Format != gfx.VertexFormatFloat4 {
			t.Errorf("color attr = %+v", p.Layout.Attrs[1])
		}
		if p.DepthStencil.DepthCompareFunc != gfx.CompareFuncLessEqual || !p.DepthStencil.DepthWriteEnabled {
			t.Errorf("depth state = %+v", p.DepthStencil)
		}
		if p.Rasterizer.CullMode != gfx.CullModeBack || p.IndexType != gfx.IndexTypeUint16 {
			t.Errorf("cull %v, index type %v", p.Rasterizer.CullMode, p.IndexType)
		}
	}
}

func TestFramesUpdateMVP(t *testing.T) {
	rec := gfxtest.New()
	s := cube.New()
	h := app.NewHeadless(cube.Desc(), rec, s)
	if err := h.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	vp := scene.ViewProjection(scene.DefaultCamera, scene.Aspect(640, 480))

	for i, want := range []scene.Rotation{{X: 1, Y: 2}, {X: 2, Y: 4}} {
		rec.Reset()
		if err := h.Frame(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if got := s.Rotation(); got != want {
			t.Errorf("frame %d rotation = %+v, want %+v", i, got, want)
		}
		draws := rec.Filter(gfxtest.OpDraw)
		if len(draws) != 1 || draws[0].Base != 0 || draws[0].Count != 36 || draws[0].Inst != 1 {
			t.Fatalf("frame %d draws = %+v", i, draws)
		}
		unis := rec.Filter(gfxtest.OpApplyUniforms)
		if len(unis) != 1 {
			t.Fatalf("frame %d uniform updates = %d", i, len(unis))
		}
		mvp := scene.MVP(vp, want)
		if !bytes.Equal(unis[0].Data, gfx.AsBytes(&mvp)) {
			t.Errorf("frame %d mvp mismatch", i)
		}
	}

	h.Cleanup()
	if rec.Shutdowns != 1 || len(rec.Buffers)+len(rec.Shaders)+len(rec.Pipelines) != 0 {
		t.Errorf("cleanup left %d shutdowns, resources %d/%d/%d",
			rec.Shutdowns, len(rec.Buffers), len(rec.Shaders), len(rec.Pipelines))
	}
}

func TestViewProjectionFixedAtInit(t *testing.T) {
	rec := gfxtest.New()
	h := app.NewHeadless(cube.Desc(), rec, cube.New())
	if err := h.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer h.Cleanup()
	h.Resize(320, 480)
	if err := h.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	vp := scene.ViewProjection(scene.DefaultCamera, scene.Aspect(640, 480))
	mvp := scene.MVP(vp, scene.Rotation{X: 1, Y: 2})
	if unis := rec.Filter(gfxtest.OpApplyUniforms); !bytes.Equal(unis[0].Data, gfx.AsBytes(&mvp)) {
		t.Error("mvp should use the initial aspect ratio after a resize")
	}
}

func TestTimeScaledAnimation(t *testing.T) {
	desc := cube.Desc()
	desc.TimeScaledAnimation = true
	s := cube.New()
	h := app.NewHeadless(desc, gfxtest.New(), s)
	if err := h.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer h.Cleanup()
	h.SetFrameDuration(0)
	if err := h.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if r := s.Rotation(); r != (scene.Rotation{}) {
		t.Errorf("zero frame time rotated to %+v", r)
	}
	h.SetFrameDuration(time.Second / 60)
	if err := h.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if r := s.Rotation(); r.X <= 0 || r.Y <= r.X {
		t.Errorf("rotation after a 60 Hz frame = %+v", r)
	}
}
