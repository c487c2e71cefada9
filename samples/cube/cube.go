// Package cube draws a rotating cube with one solid color per face,
// updating the model-view-projection uniform every frame.
package cube

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/scene"
)

const vertexShaderSource = `#version 410 core
uniform mat4 mvp;
in vec4 position;
in vec4 color0;
out vec4 color;
void main() {
    gl_Position = mvp * position;
    color = color0;
}
`

const fragmentShaderSource = `#version 410 core
in vec4 color;
out vec4 frag_color;
void main() {
    frag_color = color;
}
`

type vsParams struct {
	MVP mgl32.Mat4
}

// Desc returns the window configuration.
func Desc() app.Desc {
	return app.Desc{
		Width:       640,
		Height:      480,
		WindowTitle: "Cube",
	}
}

// Sample holds the per-run state.
type Sample struct {
	gfx      *gfx.Context
	pipeline gfx.Pipeline
	bind     gfx.Bindings
	action   gfx.PassAction
	viewProj mgl32.Mat4
	spinner  *scene.Spinner
	params   vsParams
}

// New returns an uninitialized sample.
func New() *Sample { return &Sample{} }

// Init creates the cube geometry, shader and pipeline. The view-projection
// matrix is fixed for the run, taken from the initial framebuffer size.
func (s *Sample) Init(a *app.App) error {
	ctx, err := gfx.Setup(gfx.Desc{Backend: a.Backend(), GLForceGLES2: a.GLES2()})
	if err != nil {
		return err
	}
	s.gfx = ctx
	if err := s.create(); err != nil {
		ctx.Shutdown()
		return fmt.Errorf("cube: %w", err)
	}
	s.viewProj = scene.ViewProjection(scene.DefaultCamera, scene.Aspect(a.Width(), a.Height()))
	mode := scene.FixedStep
	if a.Desc().TimeScaledAnimation {
		mode = scene.TimeScaled
	}
	s.spinner = scene.NewSpinner(mode)
	return nil
}

func (s *Sample) create() error {
	vbuf, err := s.gfx.MakeBuffer(gfx.BufferDesc{
		Data:  gfx.SliceBytes(scene.ColoredCubeVertices()),
		Label: "cube-vertices",
	})
	if err != nil {
		return err
	}
	ibuf, err := s.gfx.MakeBuffer(gfx.BufferDesc{
		Type:  gfx.BufferTypeIndexBuffer,
		Data:  gfx.SliceBytes(scene.CubeIndices()),
		Label: "cube-indices",
	})
	if err != nil {
		return err
	}
	shd, err := s.gfx.MakeShader(gfx.ShaderDesc{
		Attrs: []gfx.ShaderAttrDesc{{Name: "position"}, {Name: "color0"}},
		VS: gfx.ShaderStageDesc{
			Source: vertexShaderSource,
			UniformBlocks: []gfx.ShaderUniformBlockDesc{{
				Size:     int(unsafe.Sizeof(vsParams{})),
				Uniforms: []gfx.ShaderUniformDesc{{Name: "mvp", Type: gfx.UniformTypeMat4}},
			}},
		},
		FS:    gfx.ShaderStageDesc{Source: fragmentShaderSource},
		Label: "cube-shader",
	})
	if err != nil {
		return err
	}
	var layout gfx.LayoutDesc
	layout.Buffers[0].Stride = int(unsafe.Sizeof(scene.ColoredVertex{}))
	layout.Attrs[0] = gfx.VertexAttrDesc{Offset: 0, Format: gfx.VertexFormatFloat3}
	layout.Attrs[1] = gfx.VertexAttrDesc{Offset: 12, Format: gfx.VertexFormatFloat4}
	s.pipeline, err = s.gfx.MakePipeline(gfx.PipelineDesc{
		Layout:    layout,
		Shader:    shd,
		IndexType: gfx.IndexTypeUint16,
		DepthStencil: gfx.DepthStencilState{
			DepthCompareFunc:  gfx.CompareFuncLessEqual,
			DepthWriteEnabled: true,
		},
		Rasterizer: gfx.RasterizerState{CullMode: gfx.CullModeBack},
		Label:      "cube-pipeline",
	})
	if err != nil {
		return err
	}
	s.bind.VertexBuffers[0] = vbuf
	s.bind.IndexBuffer = ibuf
	return nil
}

// Frame advances the rotation and draws the cube.
func (s *Sample) Frame(a *app.App) error {
	s.params.MVP = s.spinner.Step(s.viewProj, a.FrameDuration())
	s.gfx.BeginDefaultPass(&s.action, a.Width(), a.Height())
	s.gfx.ApplyPipeline(s.pipeline)
	s.gfx.ApplyBindings(&s.bind)
	s.gfx.ApplyUniforms(gfx.ShaderStageVS, 0, gfx.AsBytes(&s.params))
	s.gfx.Draw(0, scene.CubeIndexCount, 1)
	s.gfx.EndPass()
	return s.gfx.Commit()
}

// Rotation returns the current cube rotation.
func (s *Sample) Rotation() scene.Rotation { return s.spinner.Rotation() }

// Cleanup shuts gfx down, releasing every resource.
func (s *Sample) Cleanup(*app.App) {
	s.gfx.Shutdown()
}

// Event is unused.
func (s *Sample) Event(*app.App, *app.Event) {}
