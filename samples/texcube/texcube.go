// Package texcube draws a rotating cube with packed vertex colors and a
// checkerboard texture, under the debug overlay.
package texcube

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/dbgui"
	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/scene"
)

// sampleCount is the MSAA sample count of the window and every pipeline.
const sampleCount = 4

// textureSize is the checkerboard's width and height in texels.
const textureSize = 4

const vertexShaderSource = `#version 410 core
uniform mat4 mvp;
in vec4 position;
in vec4 color0;
in vec2 texcoord0;
out vec4 color;
out vec2 uv;
void main() {
    gl_Position = mvp * position;
    color = color0;
    uv = texcoord0 * 5.0;
}
`

const fragmentShaderSource = `#version 410 core
uniform sampler2D tex;
in vec4 color;
in vec2 uv;
out vec4 frag_color;
void main() {
    frag_color = texture(tex, uv) * color;
}
`

type vsParams struct {
	MVP mgl32.Mat4
}

// Desc returns the window configuration.
func Desc() app.Desc {
	return app.Desc{
		Width:        800,
		Height:       600,
		SampleCount:  sampleCount,
		GLForceGLES2: true,
		WindowTitle:  "Textured Cube (sokol-app)",
	}
}

// Sample holds the per-run state.
type Sample struct {
	gfx      *gfx.Context
	dbg      *dbgui.DebugUI
	pipeline gfx.Pipeline
	bind     gfx.Bindings
	action   gfx.PassAction
	spinner  *scene.Spinner
	params   vsParams
}

// New returns an uninitialized sample.
func New() *Sample {
	s := &Sample{}
	s.action.Colors[0] = gfx.ColorAttachmentAction{
		Action: gfx.ActionClear,
		Value:  gfx.Color{R: 0.25, G: 0.5, B: 0.75, A: 1},
	}
	return s
}

// Init creates the overlay, the cube geometry, the texture and the pipeline.
func (s *Sample) Init(a *app.App) error {
	ctx, err := gfx.Setup(gfx.Desc{Backend: a.Backend(), GLForceGLES2: a.GLES2()})
	if err != nil {
		return err
	}
	s.gfx = ctx
	if s.dbg, err = dbgui.Setup(ctx, a.SampleCount()); err != nil {
		ctx.Shutdown()
		return fmt.Errorf("texcube: %w", err)
	}
	if err := s.create(a.SampleCount()); err != nil {
		s.dbg.Shutdown()
		ctx.Shutdown()
		return fmt.Errorf("texcube: %w", err)
	}
	mode := scene.FixedStep
	if a.Desc().TimeScaledAnimation {
		mode = scene.TimeScaled
	}
	s.spinner = scene.NewSpinner(mode)
	return nil
}

func (s *Sample) create(samples int) error {
	var err error
	s.bind.VertexBuffers[0], err = s.gfx.MakeBuffer(gfx.BufferDesc{
		Data:  gfx.SliceBytes(scene.TexturedCubeVertices()),
		Label: "cube-vertices",
	})
	if err != nil {
		return err
	}
	s.bind.IndexBuffer, err = s.gfx.MakeBuffer(gfx.BufferDesc{
		Type:  gfx.BufferTypeIndexBuffer,
		Data:  gfx.SliceBytes(scene.CubeIndices()),
		Label: "cube-indices",
	})
	if err != nil {
		return err
	}
	s.bind.FSImages[0], err = s.gfx.MakeImage(gfx.ImageDesc{
		Width:  textureSize,
		Height: textureSize,
		Data:   gfx.SliceBytes(scene.Checkerboard(textureSize, textureSize)),
		Label:  "cube-texture",
	})
	if err != nil {
		return err
	}
	shd, err := s.gfx.MakeShader(gfx.ShaderDesc{
		Attrs: []gfx.ShaderAttrDesc{{Name: "position"}, {Name: "color0"}, {Name: "texcoord0"}},
		VS: gfx.ShaderStageDesc{
			Source: vertexShaderSource,
			UniformBlocks: []gfx.ShaderUniformBlockDesc{{
				Size:     int(unsafe.Sizeof(vsParams{})),
				Uniforms: []gfx.ShaderUniformDesc{{Name: "mvp", Type: gfx.UniformTypeMat4}},
			}},
		},
		FS: gfx.ShaderStageDesc{
			Source: fragmentShaderSource,
			Images: []gfx.ShaderImageDesc{{Name: "tex"}},
		},
		Label: "cube-shader",
	})
	if err != nil {
		return err
	}
	// Offsets and stride are derived from the formats.
	var layout gfx.LayoutDesc
	layout.Attrs[0].Format = gfx.VertexFormatFloat3
	layout.Attrs[1].Format = gfx.VertexFormatUByte4N
	layout.Attrs[2].Format = gfx.VertexFormatShort2N
	s.pipeline, err = s.gfx.MakePipeline(gfx.PipelineDesc{
		Layout:    layout,
		Shader:    shd,
		IndexType: gfx.IndexTypeUint16,
		DepthStencil: gfx.DepthStencilState{
			DepthCompareFunc:  gfx.CompareFuncLessEqual,
			DepthWriteEnabled: true,
		},
		Rasterizer: gfx.RasterizerState{CullMode: gfx.CullModeBack, SampleCount: samples},
		Label:      "cube-pipeline",
	})
	return err
}

// Frame advances the rotation and draws the cube and the overlay. The
// projection follows the current framebuffer size.
func (s *Sample) Frame(a *app.App) error {
	w, h := a.Width(), a.Height()
	viewProj := scene.ViewProjection(scene.DefaultCamera, scene.Aspect(w, h))
	s.params.MVP = s.spinner.Step(viewProj, a.FrameDuration())

	s.gfx.BeginDefaultPass(&s.action, w, h)
	s.gfx.ApplyPipeline(s.pipeline)
	s.gfx.ApplyBindings(&s.bind)
	s.gfx.ApplyUniforms(gfx.ShaderStageVS, 0, gfx.AsBytes(&s.params))
	s.gfx.Draw(0, scene.CubeIndexCount, 1)
	s.dbg.Draw(a)
	s.gfx.EndPass()
	return s.gfx.Commit()
}

// Rotation returns the current cube rotation.
func (s *Sample) Rotation() scene.Rotation { return s.spinner.Rotation() }

// Overlay returns the debug overlay.
func (s *Sample) Overlay() *dbgui.DebugUI { return s.dbg }

// Cleanup releases the overlay and gfx.
func (s *Sample) Cleanup(*app.App) {
	s.dbg.Shutdown()
	s.gfx.Shutdown()
}

// Event forwards input to the overlay.
func (s *Sample) Event(_ *app.App, ev *app.Event) {
	s.dbg.Event(ev)
}
