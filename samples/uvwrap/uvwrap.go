// Package uvwrap shows the texture coordinate wrap modes side by side:
// the same small texture sampled past its edges on four quads.
package uvwrap

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/dbgui"
	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/scene"
)

const sampleCount = 4

// textureSize is the test texture's width and height in texels.
const textureSize = 8

// Texture coordinates span [uvMin, uvMax] so each quad samples a 3x3
// tiling of the texture region.
const (
	uvMin float32 = -1
	uvMax float32 = 2
)

// Modes lists the wrap mode of each quad, in grid order: top-left,
// top-right, bottom-left, bottom-right.
var Modes = [4]gfx.Wrap{
	gfx.WrapRepeat,
	gfx.WrapClampToEdge,
	gfx.WrapClampToBorder,
	gfx.WrapMirroredRepeat,
}

// quadOffsets places the quads in a 2x2 grid in clip space.
var quadOffsets = [4]mgl32.Vec2{
	{-0.5, 0.5},
	{0.5, 0.5},
	{-0.5, -0.5},
	{0.5, -0.5},
}

const vertexShaderSource = `#version 410 core
uniform vec2 offset;
uniform vec2 scale;
in vec2 position;
in vec2 texcoord0;
out vec2 uv;
void main() {
    gl_Position = vec4(position * scale + offset, 0.5, 1.0);
    uv = texcoord0;
}
`

const fragmentShaderSource = `#version 410 core
uniform sampler2D tex;
in vec2 uv;
out vec4 frag_color;
void main() {
    frag_color = texture(tex, uv);
}
`

type vsParams struct {
	Offset mgl32.Vec2
	Scale  mgl32.Vec2
}

// Desc returns the window configuration.
func Desc() app.Desc {
	return app.Desc{
		Width:       800,
		Height:      600,
		SampleCount: sampleCount,
		WindowTitle: "UV Wrap Modes",
	}
}

// Sample holds the per-run state.
type Sample struct {
	gfx      *gfx.Context
	dbg      *dbgui.DebugUI
	pipeline gfx.Pipeline
	vbuf     gfx.Buffer
	ibuf     gfx.Buffer
	images   [len(Modes)]gfx.Image
	action   gfx.PassAction
}

// New returns an uninitialized sample.
func New() *Sample {
	s := &Sample{}
	s.action.Colors[0] = gfx.ColorAttachmentAction{
		Action: gfx.ActionClear,
		Value:  gfx.Color{R: 0, G: 0.5, B: 0.7, A: 1},
	}
	return s
}

// Init sets gfx up at the GLES2 feature level, which has no clamp-to-border
// sampling, so that quad shows the fallback.
func (s *Sample) Init(a *app.App) error {
	ctx, err := gfx.Setup(gfx.Desc{Backend: a.Backend(), GLForceGLES2: true})
	if err != nil {
		return err
	}
	s.gfx = ctx
	if s.dbg, err = dbgui.Setup(ctx, a.SampleCount()); err != nil {
		ctx.Shutdown()
		return fmt.Errorf("uvwrap: %w", err)
	}
	if err := s.create(a.SampleCount()); err != nil {
		s.dbg.Shutdown()
		ctx.Shutdown()
		return fmt.Errorf("uvwrap: %w", err)
	}
	return nil
}

func (s *Sample) create(samples int) error {
	var err error
	s.vbuf, err = s.gfx.MakeBuffer(gfx.BufferDesc{
		Data:  gfx.SliceBytes(scene.QuadVertices(uvMin, uvMax)),
		Label: "quad-vertices",
	})
	if err != nil {
		return err
	}
	s.ibuf, err = s.gfx.MakeBuffer(gfx.BufferDesc{
		Type:  gfx.BufferTypeIndexBuffer,
		Data:  gfx.SliceBytes(scene.QuadIndices()),
		Label: "quad-indices",
	})
	if err != nil {
		return err
	}
	pixels := gfx.SliceBytes(WrapPattern())
	for i, mode := range Modes {
		s.images[i], err = s.gfx.MakeImage(gfx.ImageDesc{
			Width:       textureSize,
			Height:      textureSize,
			WrapU:       mode,
			WrapV:       mode,
			BorderColor: gfx.BorderColorOpaqueBlack,
			Data:        pixels,
			Label:       "uvwrap-" + mode.String(),
		})
		if err != nil {
			return err
		}
	}
	shd, err := s.gfx.MakeShader(gfx.ShaderDesc{
		Attrs: []gfx.ShaderAttrDesc{{Name: "position"}, {Name: "texcoord0"}},
		VS: gfx.ShaderStageDesc{
			Source: vertexShaderSource,
			UniformBlocks: []gfx.ShaderUniformBlockDesc{{
				Size: int(unsafe.Sizeof(vsParams{})),
				Uniforms: []gfx.ShaderUniformDesc{
					{Name: "offset", Type: gfx.UniformTypeFloat2},
					{Name: "scale", Type: gfx.UniformTypeFloat2},
				},
			}},
		},
		FS: gfx.ShaderStageDesc{
			Source: fragmentShaderSource,
			Images: []gfx.ShaderImageDesc{{Name: "tex"}},
		},
		Label: "quad-shader",
	})
	if err != nil {
		return err
	}
	var layout gfx.LayoutDesc
	layout.Attrs[0].Format = gfx.VertexFormatFloat2
	layout.Attrs[1].Format = gfx.VertexFormatFloat2
	s.pipeline, err = s.gfx.MakePipeline(gfx.PipelineDesc{
		Layout:     layout,
		Shader:     shd,
		IndexType:  gfx.IndexTypeUint16,
		Rasterizer: gfx.RasterizerState{SampleCount: samples},
		Label:      "quad-pipeline",
	})
	return err
}

// WrapPattern returns the 8x8 RGBA8 texture: a one-texel gray frame
// around a white and red checkerboard, so edge texels are easy to spot.
func WrapPattern() []uint32 {
	const (
		frame = 0xFF888888
		white = 0xFFFFFFFF
		red   = 0xFF0000FF
	)
	px := make([]uint32, textureSize*textureSize)
	for y := range textureSize {
		for x := range textureSize {
			switch {
			case x == 0 || y == 0 || x == textureSize-1 || y == textureSize-1:
				px[y*textureSize+x] = frame
			case (x+y)%2 == 0:
				px[y*textureSize+x] = white
			default:
				px[y*textureSize+x] = red
			}
		}
	}
	return px
}

// quadScale keeps the quads square at any aspect ratio.
func quadScale(w, h int) mgl32.Vec2 {
	const size = 0.9
	if w <= 0 || h <= 0 {
		return mgl32.Vec2{size, size}
	}
	if w > h {
		return mgl32.Vec2{size * float32(h) / float32(w), size}
	}
	return mgl32.Vec2{size, size * float32(w) / float32(h)}
}

// Frame draws one quad per wrap mode, then the overlay.
func (s *Sample) Frame(a *app.App) error {
	w, h := a.Width(), a.Height()
	s.gfx.BeginDefaultPass(&s.action, w, h)
	s.gfx.ApplyPipeline(s.pipeline)
	scale := quadScale(w, h)
	for i, img := range s.images {
		bind := gfx.Bindings{IndexBuffer: s.ibuf}
		bind.VertexBuffers[0] = s.vbuf
		bind.FSImages[0] = img
		s.gfx.ApplyBindings(&bind)
		params := vsParams{Offset: quadOffsets[i], Scale: scale}
		s.gfx.ApplyUniforms(gfx.ShaderStageVS, 0, gfx.AsBytes(&params))
		s.gfx.Draw(0, len(scene.QuadIndices()), 1)
	}
	s.dbg.Draw(a)
	s.gfx.EndPass()
	return s.gfx.Commit()
}

// Images returns the texture of each quad, in Modes order.
func (s *Sample) Images() [len(Modes)]gfx.Image { return s.images }

// Cleanup releases the overlay and gfx.
func (s *Sample) Cleanup(*app.App) {
	s.dbg.Shutdown()
	s.gfx.Shutdown()
}

// Event forwards input to the overlay.
func (s *Sample) Event(_ *app.App, ev *app.Event) {
	s.dbg.Event(ev)
}
