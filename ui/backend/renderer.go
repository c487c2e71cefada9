// Package backend draws ui draw lists through gfx and feeds app events
// into ui input.
package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/ui"
)

var backendLogLevel = new(slog.LevelVar)

var backendLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: backendLogLevel}))

// SetVerbose enables or disables debug logging for the renderer.
func SetVerbose(v bool) {
	if v {
		backendLogLevel.Set(slog.LevelDebug)
	} else {
		backendLogLevel.Set(slog.LevelInfo)
	}
}

func init() {
	app.OnVerbose(ui.SetVerbose)
	app.OnVerbose(SetVerbose)
}

// Default stream buffer capacities.
const (
	DefaultMaxVertices = 1 << 16
	DefaultMaxIndices  = 3 * DefaultMaxVertices
)

// ErrBufferFull is returned by Render when a frame's draw lists exceed
// the stream buffers.
var ErrBufferFull = errors.New("ui backend: stream buffer full")

var vertexStride = int(unsafe.Sizeof(ui.Vertex{}))

const vertexShaderSource = `#version 410 core
uniform mat4 proj;
in vec2 position;
in vec2 texcoord0;
in vec4 color0;
out vec2 uv;
out vec4 color;
void main() {
    gl_Position = proj * vec4(position, 0.0, 1.0);
    uv = texcoord0;
    color = color0;
}
`

const fragmentShaderSource = `#version 410 core
uniform sampler2D tex;
in vec2 uv;
in vec4 color;
out vec4 frag_color;
void main() {
    frag_color = texture(tex, uv) * color;
}
`

type vsParams struct {
	Proj mgl32.Mat4
}

// Desc configures NewRenderer. Zero fields select the defaults.
type Desc struct {
	SampleCount int
	MaxVertices int
	MaxIndices  int
	Width       int
	Height      int
}

// Renderer implements ui.Renderer on a gfx.Context. Render must be called
// inside an open pass.
type Renderer struct {
	gfx      *gfx.Context
	font     *ui.Font
	fontImg  gfx.Image
	shader   gfx.Shader
	pipeline gfx.Pipeline
	vbuf     gfx.Buffer
	ibuf     gfx.Buffer
	maxVerts int
	maxIdx   int
	width    int
	height   int

	// Per-frame fill levels, reset when the gfx frame changes.
	frame     uint64
	vertsUsed int
	idxUsed   int
}

var _ ui.Renderer = (*Renderer)(nil)

// NewRenderer creates the font image, shader, pipeline and stream buffers.
// On error everything created so far is destroyed.
func NewRenderer(ctx *gfx.Context, desc Desc) (*Renderer, error) {
	if desc.SampleCount <= 0 {
		desc.SampleCount = 1
	}
	if desc.MaxVertices <= 0 {
		desc.MaxVertices = DefaultMaxVertices
	}
	if desc.MaxIndices <= 0 {
		desc.MaxIndices = DefaultMaxIndices
	}
	r := &Renderer{
		gfx:      ctx,
		font:     ui.NewFont(),
		maxVerts: desc.MaxVertices,
		maxIdx:   desc.MaxIndices,
		width:    desc.Width,
		height:   desc.Height,
	}
	if err := r.create(desc.SampleCount); err != nil {
		r.Destroy()
		return nil, err
	}
	backendLogger.Debug("ui renderer created",
		"maxVertices", r.maxVerts, "maxIndices", r.maxIdx, "samples", desc.SampleCount)
	return r, nil
}

func (r *Renderer) create(sampleCount int) error {
	var err error
	r.fontImg, err = r.gfx.MakeImage(gfx.ImageDesc{
		Width:       ui.AtlasSize,
		Height:      ui.AtlasSize,
		PixelFormat: gfx.PixelFormatRGBA8,
		MinFilter:   gfx.FilterNearest,
		MagFilter:   gfx.FilterNearest,
		WrapU:       gfx.WrapClampToEdge,
		WrapV:       gfx.WrapClampToEdge,
		Data:        r.font.Pixels,
		Label:       "ui-font",
	})
	if err != nil {
		return fmt.Errorf("ui font image: %w", err)
	}
	r.shader, err = r.gfx.MakeShader(gfx.ShaderDesc{
		Attrs: []gfx.ShaderAttrDesc{{Name: "position"}, {Name: "texcoord0"}, {Name: "color0"}},
		VS: gfx.ShaderStageDesc{
			Source: vertexShaderSource,
			UniformBlocks: []gfx.ShaderUniformBlockDesc{{
				Size:     int(unsafe.Sizeof(vsParams{})),
				Uniforms: []gfx.ShaderUniformDesc{{Name: "proj", Type: gfx.UniformTypeMat4}},
			}},
		},
		FS: gfx.ShaderStageDesc{
			Source: fragmentShaderSource,
			Images: []gfx.ShaderImageDesc{{Name: "tex"}},
		},
		Label: "ui-shader",
	})
	if err != nil {
		return fmt.Errorf("ui shader: %w", err)
	}
	var layout gfx.LayoutDesc
	layout.Buffers[0].Stride = vertexStride
	layout.Attrs[0] = gfx.VertexAttrDesc{Format: gfx.VertexFormatFloat2}
	layout.Attrs[1] = gfx.VertexAttrDesc{Format: gfx.VertexFormatFloat2}
	layout.Attrs[2] = gfx.VertexAttrDesc{Format: gfx.VertexFormatUByte4N}
	r.pipeline, err = r.gfx.MakePipeline(gfx.PipelineDesc{
		Layout:    layout,
		Shader:    r.shader,
		IndexType: gfx.IndexTypeUint16,
		Blend: gfx.BlendState{
			Enabled:        true,
			SrcFactorRGB:   gfx.BlendFactorSrcAlpha,
			DstFactorRGB:   gfx.BlendFactorOneMinusSrcAlpha,
			SrcFactorAlpha: gfx.BlendFactorOne,
			DstFactorAlpha: gfx.BlendFactorOneMinusSrcAlpha,
			ColorWriteMask: gfx.ColorMaskRGB,
		},
		Rasterizer: gfx.RasterizerState{CullMode: gfx.CullModeNone, SampleCount: sampleCount},
		Label:      "ui-pipeline",
	})
	if err != nil {
		return fmt.Errorf("ui pipeline: %w", err)
	}
	r.vbuf, err = r.gfx.MakeBuffer(gfx.BufferDesc{
		Size:  r.maxVerts * vertexStride,
		Type:  gfx.BufferTypeVertexBuffer,
		Usage: gfx.UsageStream,
		Label: "ui-vertices",
	})
	if err != nil {
		return fmt.Errorf("ui vertex buffer: %w", err)
	}
	r.ibuf, err = r.gfx.MakeBuffer(gfx.BufferDesc{
		Size:  r.maxIdx * 2,
		Type:  gfx.BufferTypeIndexBuffer,
		Usage: gfx.UsageStream,
		Label: "ui-indices",
	})
	if err != nil {
		return fmt.Errorf("ui index buffer: %w", err)
	}
	return nil
}

// Destroy releases the gfx resources. Handles left at zero are skipped.
func (r *Renderer) Destroy() {
	if !r.gfx.IsValid() {
		return
	}
	if r.pipeline.ID != 0 {
		r.gfx.DestroyPipeline(r.pipeline)
	}
	if r.shader.ID != 0 {
		r.gfx.DestroyShader(r.shader)
	}
	if r.fontImg.ID != 0 {
		r.gfx.DestroyImage(r.fontImg)
	}
	if r.vbuf.ID != 0 {
		r.gfx.DestroyBuffer(r.vbuf)
	}
	if r.ibuf.ID != 0 {
		r.gfx.DestroyBuffer(r.ibuf)
	}
	*r = Renderer{gfx: r.gfx, font: r.font}
}

// Font returns the atlas uploaded as the font image, for ui.WithFont.
func (r *Renderer) Font() *ui.Font { return r.font }

// FontImage returns the gfx image holding the font atlas.
func (r *Renderer) FontImage() gfx.Image { return r.fontImg }

// FontTextureID returns the id of the font image. Draw commands with
// texture 0 sample it as well.
func (r *Renderer) FontTextureID() uint32 { return r.fontImg.ID }

// Resize sets the framebuffer size used for projection and scissors.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render appends the draw list to the stream buffers and issues one draw
// per command. Non-zero texture ids are gfx image ids.
func (r *Renderer) Render(dl *ui.DrawList) error {
	if dl == nil || dl.Empty() {
		return nil
	}
	if f := r.gfx.Frame(); f != r.frame {
		r.frame = f
		r.vertsUsed, r.idxUsed = 0, 0
	}
	nv, ni := len(dl.VtxBuffer), len(dl.IdxBuffer)
	// Appends are padded to 4 bytes.
	idxSlots := (ni + 1) &^ 1
	if r.vertsUsed+nv > r.maxVerts || r.idxUsed+idxSlots > r.maxIdx {
		return fmt.Errorf("%d vertices, %d indices on top of %d, %d: %w",
			nv, ni, r.vertsUsed, r.idxUsed, ErrBufferFull)
	}
	r.vertsUsed += nv
	r.idxUsed += idxSlots

	vtxOff := r.gfx.AppendBuffer(r.vbuf, gfx.SliceBytes(dl.VtxBuffer))
	idxOff := r.gfx.AppendBuffer(r.ibuf, gfx.SliceBytes(dl.IdxBuffer))

	w, h := float32(r.width), float32(r.height)
	params := vsParams{Proj: mgl32.Ortho(0, w, h, 0, -1, 1)}
	r.gfx.ApplyViewport(0, 0, r.width, r.height, true)
	r.gfx.ApplyPipeline(r.pipeline)
	r.gfx.ApplyUniforms(gfx.ShaderStageVS, 0, gfx.AsBytes(&params))

	var bind gfx.Bindings
	bind.VertexBuffers[0] = r.vbuf
	bind.IndexBuffer = r.ibuf
	bind.IndexBufferOffset = idxOff
	lastTex := ^uint32(0)
	lastVtx := -1
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, cw, ch, ok := r.scissor(cmd.ClipRect)
		if !ok {
			continue
		}
		vo := vtxOff + int(cmd.VertexOffset)*vertexStride
		if cmd.TextureID != lastTex || vo != lastVtx {
			img := r.fontImg
			if cmd.TextureID != 0 {
				img = gfx.Image{ID: cmd.TextureID}
			}
			bind.FSImages[0] = img
			bind.VertexBufferOffsets[0] = vo
			r.gfx.ApplyBindings(&bind)
			lastTex, lastVtx = cmd.TextureID, vo
		}
		r.gfx.ApplyScissorRect(x, y, cw, ch, true)
		r.gfx.Draw(int(cmd.IndexOffset), int(cmd.ElemCount), 1)
	}
	r.gfx.ApplyScissorRect(0, 0, r.width, r.height, true)
	return nil
}

// scissor converts a clip rectangle into a framebuffer rectangle, false
// when nothing is visible.
func (r *Renderer) scissor(clip [4]float32) (x, y, w, h int, ok bool) {
	x1 := max(int(clip[0]), 0)
	y1 := max(int(clip[1]), 0)
	x2 := min(int(clip[2]+0.5), r.width)
	y2 := min(int(clip[3]+0.5), r.height)
	if x2 <= x1 || y2 <= y1 {
		return 0, 0, 0, 0, false
	}
	return x1, y1, x2 - x1, y2 - y1, true
}
