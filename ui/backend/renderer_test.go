package backend_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/gfx/gfxtest"
	"github.com/go-theft-auto/samples/ui"
	"github.com/go-theft-auto/samples/ui/backend"
)

func setup(t *testing.T, desc backend.Desc) (*gfxtest.Recorder, *gfx.Context, *backend.Renderer) {
	t.Helper()
	rec := gfxtest.New()
	ctx, err := gfx.Setup(gfx.Desc{Backend: rec})
	if err != nil {
		t.Fatalf("gfx.Setup: %v", err)
	}
	if desc.Width == 0 {
		desc.Width, desc.Height = 640, 480
	}
	r, err := backend.NewRenderer(ctx, desc)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return rec, ctx, r
}

func rectList(r *backend.Renderer, rects int) *ui.DrawList {
	dl := ui.AcquireDrawList()
	dl.WhiteUV = r.Font().WhiteUV()
	for i := range rects {
		dl.AddRect(float32(i*10), 0, 8, 8, ui.ColorWhite)
	}
	dl.Finalize()
	return dl
}

func TestNewRendererResources(t *testing.T) {
	rec, _, r := setup(t, backend.Desc{SampleCount: 4})

	img, ok := rec.Images[r.FontImage().ID]
	if !ok {
		t.Fatal("font image not created")
	}
	if img.Width != ui.AtlasSize || img.Height != ui.AtlasSize || img.PixelFormat != gfx.PixelFormatRGBA8 {
		t.Errorf("font image %dx%d %v", img.Width, img.Height, img.PixelFormat)
	}
	if r.FontTextureID() != r.FontImage().ID {
		t.Error("FontTextureID should be the font image id")
	}
	if len(rec.Pipelines) != 1 || len(rec.Shaders) != 1 || len(rec.Buffers) != 2 {
		t.Fatalf("created %d pipelines, %d shaders, %d buffers", len(rec.Pipelines), len(rec.Shaders), len(rec.Buffers))
	}
	for _, pd := range rec.Pipelines {
		if pd.Layout.Buffers[0].Stride != 20 {
			t.Errorf("vertex stride %d, want 20", pd.Layout.Buffers[0].Stride)
		}
		if !pd.Blend.Enabled || pd.Blend.SrcFactorRGB != gfx.BlendFactorSrcAlpha {
			t.Error("pipeline should alpha blend")
		}
		if pd.DepthStencil.DepthWriteEnabled || pd.Rasterizer.CullMode != gfx.CullModeNone {
			t.Error("pipeline should neither write depth nor cull")
		}
		if pd.IndexType != gfx.IndexTypeUint16 || pd.Rasterizer.SampleCount != 4 {
			t.Errorf("index type %v, sample count %d", pd.IndexType, pd.Rasterizer.SampleCount)
		}
	}
	for _, bd := range rec.Buffers {
		if bd.Usage != gfx.UsageStream {
			t.Errorf("buffer %q usage %v, want stream", bd.Label, bd.Usage)
		}
	}
}

func TestRendererDestroy(t *testing.T) {
	rec, _, r := setup(t, backend.Desc{})
	r.Destroy()
	if len(rec.Images)+len(rec.Shaders)+len(rec.Pipelines)+len(rec.Buffers) != 0 {
		t.Error("Destroy should release every resource")
	}
	r.Destroy()
}

func TestRenderDrawsEveryCommand(t *testing.T) {
	rec, ctx, r := setup(t, backend.Desc{})
	ctx.BeginDefaultPass(nil, 640, 480)

	dl := ui.AcquireDrawList()
	defer ui.ReleaseDrawList(dl)
	dl.WhiteUV = r.Font().WhiteUV()
	dl.PushClipRect(10, 20, 110, 70)
	dl.AddRect(0, 0, 50, 50, ui.ColorWhite)
	dl.PopClipRect()
	dl.AddRect(0, 0, 50, 50, ui.ColorWhite)
	dl.Finalize()

	if err := r.Render(dl); err != nil {
		t.Fatalf("Render: %v", err)
	}
	ctx.EndPass()
	if err := ctx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	draws := rec.Filter(gfxtest.OpDraw)
	if len(draws) != 2 {
		t.Fatalf("expected 2 draws, got %d", len(draws))
	}
	if draws[0].Base != 0 || draws[0].Count != 6 || draws[1].Base != 6 || draws[1].Count != 6 {
		t.Errorf("draws %+v %+v", draws[0], draws[1])
	}
	sc := rec.Filter(gfxtest.OpScissor)
	if len(sc) < 2 || sc[0].Rect != [4]int{10, 20, 100, 50} {
		t.Fatalf("scissors %v", sc)
	}
	if sc[1].Rect != [4]int{0, 0, 640, 480} {
		t.Errorf("unclipped command scissor %v", sc[1].Rect)
	}
	// Each command has its own vertex base.
	binds := rec.Filter(gfxtest.OpApplyBindings)
	if len(binds) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(binds))
	}
	if binds[1].Bindings.VertexBufferOffsets[0] != 4*20 {
		t.Errorf("second command vertex offset %d", binds[1].Bindings.VertexBufferOffsets[0])
	}
	if binds[0].Bindings.FSImages[0] != r.FontImage() {
		t.Error("texture 0 should sample the font image")
	}
	if len(rec.Filter(gfxtest.OpApplyUniforms)) != 1 {
		t.Error("projection should be applied once per draw list")
	}
}

func TestRenderImageTexture(t *testing.T) {
	rec, ctx, r := setup(t, backend.Desc{})
	img, err := ctx.MakeImage(gfx.ImageDesc{Width: 1, Height: 1, Data: []byte{255, 0, 0, 255}})
	if err != nil {
		t.Fatalf("MakeImage: %v", err)
	}
	ctx.BeginDefaultPass(nil, 640, 480)
	dl := ui.AcquireDrawList()
	defer ui.ReleaseDrawList(dl)
	dl.AddImage(img.ID, 0, 0, 32, 32, ui.Vec2{}, ui.Vec2{X: 1, Y: 1}, ui.ColorWhite)
	dl.Finalize()
	if err := r.Render(dl); err != nil {
		t.Fatalf("Render: %v", err)
	}
	ctx.EndPass()
	if err := ctx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	binds := rec.Filter(gfxtest.OpApplyBindings)
	if len(binds) != 1 || binds[0].Bindings.FSImages[0] != img {
		t.Errorf("bindings %v, want image %d", binds, img.ID)
	}
}

func TestRenderAppendsWithinFrame(t *testing.T) {
	rec, ctx, r := setup(t, backend.Desc{})
	for frame := range 2 {
		rec.Reset()
		ctx.BeginDefaultPass(nil, 640, 480)
		for range 2 {
			dl := rectList(r, 1)
			if err := r.Render(dl); err != nil {
				t.Fatalf("frame %d: Render: %v", frame, err)
			}
			ui.ReleaseDrawList(dl)
		}
		ctx.EndPass()
		if err := ctx.Commit(); err != nil {
			t.Fatalf("frame %d: Commit: %v", frame, err)
		}
		binds := rec.Filter(gfxtest.OpApplyBindings)
		if len(binds) != 2 {
			t.Fatalf("frame %d: %d bindings", frame, len(binds))
		}
		if binds[0].Bindings.VertexBufferOffsets[0] != 0 || binds[1].Bindings.VertexBufferOffsets[0] != 4*20 {
			t.Errorf("frame %d: vertex offsets %d, %d", frame,
				binds[0].Bindings.VertexBufferOffsets[0], binds[1].Bindings.VertexBufferOffsets[0])
		}
		if binds[1].Bindings.IndexBufferOffset != 12 {
			t.Errorf("frame %d: index offset %d, want 12", frame, binds[1].Bindings.IndexBufferOffset)
		}
	}
}

func TestRenderBufferFull(t *testing.T) {
	_, ctx, r := setup(t, backend.Desc{MaxVertices: 4})
	ctx.BeginDefaultPass(nil, 640, 480)
	dl := rectList(r, 2)
	defer ui.ReleaseDrawList(dl)
	if err := r.Render(dl); !errors.Is(err, backend.ErrBufferFull) {
		t.Errorf("Render = %v, want ErrBufferFull", err)
	}
	ctx.EndPass()
	if err := ctx.Commit(); err != nil {
		t.Errorf("a rejected draw list should not reach gfx: %v", err)
	}
}

func TestRenderWithUI(t *testing.T) {
	rec, ctx, r := setup(t, backend.Desc{})
	u := ui.New(r, ui.WithFont(r.Font()))

	ctx.BeginDefaultPass(nil, 640, 480)
	c := u.Begin(nil, ui.Vec2{X: 640, Y: 480}, 1.0/60)
	c.Text("Hello, world!")
	c.Button("OK")
	if err := u.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	ctx.EndPass()
	if err := ctx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(rec.Filter(gfxtest.OpDraw)) == 0 {
		t.Error("UI frame should draw")
	}
	if ctx.Stats().BufferAppends < 2 {
		t.Errorf("expected vertex and index appends, got %d", ctx.Stats().BufferAppends)
	}
}
