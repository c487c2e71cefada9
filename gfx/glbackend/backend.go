// Package glbackend implements gfx.Backend on OpenGL 4.1 core.
//
// The backend needs a current GL context with function pointers loaded
// (gl.Init) before gfx.Setup is called; the app package does both.
package glbackend

import (
	"fmt"
	"log/slog"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/samples/gfx"
)

var glLogLevel = new(slog.LevelVar)

// SetVerbose enables GL error checks after every pass call and debug logging.
func SetVerbose(v bool) {
	if v {
		glLogLevel.Set(slog.LevelDebug)
	} else {
		glLogLevel.Set(slog.LevelInfo)
	}
}

func glVerbose() bool {
	return glLogLevel.Level() <= slog.LevelDebug
}

var glLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: glLogLevel}))

type glBuffer struct {
	name   uint32
	target uint32
}

type glImage struct {
	name uint32
}

type glPipeline struct {
	desc   gfx.PipelineDesc
	shader *glShader
}

// Backend is the OpenGL implementation of gfx.Backend.
type Backend struct {
	vao        uint32
	buffers    map[uint32]*glBuffer
	images     map[uint32]*glImage
	shaders    map[uint32]*glShader
	pipelines  map[uint32]*glPipeline
	passHeight int

	// Per-draw state set by ApplyPipeline and ApplyBindings.
	cur          *glPipeline
	indexOffset  int
	enabledAttrs int
}

var _ gfx.Backend = (*Backend)(nil)

// New returns an uninitialized backend for gfx.Setup.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) Init(desc *gfx.Desc) (gfx.Features, error) {
	if gl.GetString(gl.VERSION) == nil {
		return gfx.Features{}, fmt.Errorf("glbackend: no current GL context")
	}
	b.buffers = make(map[uint32]*glBuffer)
	b.images = make(map[uint32]*glImage)
	b.shaders = make(map[uint32]*glShader)
	b.pipelines = make(map[uint32]*glPipeline)

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	var maxTex int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTex)

	glLogger.Debug("GL backend init",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"maxTexture", maxTex)

	return gfx.Features{
		Instancing:         true,
		ImageClampToBorder: true,
		MSAA:               true,
		GLES2:              desc.GLForceGLES2,
		MaxImageSize:       int(maxTex),
	}, nil
}

func (b *Backend) Shutdown() {
	if b.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}

func (b *Backend) CreateBuffer(h gfx.Buffer, desc *gfx.BufferDesc) error {
	buf := &glBuffer{target: bufferTarget(desc.Type)}
	gl.GenBuffers(1, &buf.name)
	gl.BindBuffer(buf.target, buf.name)
	var ptr unsafe.Pointer
	if len(desc.Data) > 0 {
		ptr = gl.Ptr(desc.Data)
	}
	gl.BufferData(buf.target, desc.Size, ptr, bufferUsage(desc.Usage))
	if err := checkError("create buffer"); err != nil {
		gl.DeleteBuffers(1, &buf.name)
		return err
	}
	b.buffers[h.ID] = buf
	return nil
}

func (b *Backend) DestroyBuffer(h gfx.Buffer) {
	if buf, ok := b.buffers[h.ID]; ok {
		gl.DeleteBuffers(1, &buf.name)
		delete(b.buffers, h.ID)
	}
}

func (b *Backend) UpdateBuffer(h gfx.Buffer, offset int, data []byte) {
	buf, ok := b.buffers[h.ID]
	if !ok || len(data) == 0 {
		return
	}
	gl.BindBuffer(buf.target, buf.name)
	gl.BufferSubData(buf.target, offset, len(data), gl.Ptr(data))
}

func (b *Backend) CreateImage(h gfx.Image, desc *gfx.ImageDesc) error {
	img := &glImage{}
	gl.GenTextures(1, &img.name)
	gl.BindTexture(gl.TEXTURE_2D, img.name)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap(desc.WrapV))
	if desc.WrapU == gfx.WrapClampToBorder || desc.WrapV == gfx.WrapClampToBorder {
		border := borderColor(desc.BorderColor)
		gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)
	internal, format, typ := pixelFormat(desc.PixelFormat)
	var ptr unsafe.Pointer
	if len(desc.Data) > 0 {
		ptr = gl.Ptr(desc.Data)
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(desc.Width), int32(desc.Height), 0, format, typ, ptr)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if err := checkError("create image"); err != nil {
		gl.DeleteTextures(1, &img.name)
		return err
	}
	b.images[h.ID] = img
	return nil
}

func (b *Backend) DestroyImage(h gfx.Image) {
	if img, ok := b.images[h.ID]; ok {
		gl.DeleteTextures(1, &img.name)
		delete(b.images, h.ID)
	}
}

func (b *Backend) CreatePipeline(h gfx.Pipeline, desc *gfx.PipelineDesc) error {
	s, ok := b.shaders[desc.Shader.ID]
	if !ok {
		return fmt.Errorf("pipeline %q: shader %d not created", desc.Label, desc.Shader.ID)
	}
	b.pipelines[h.ID] = &glPipeline{desc: *desc, shader: s}
	return nil
}

func (b *Backend) DestroyPipeline(h gfx.Pipeline) {
	if p, ok := b.pipelines[h.ID]; ok {
		if b.cur == p {
			b.cur = nil
		}
		delete(b.pipelines, h.ID)
	}
}

// TextureName returns the GL texture name behind an image handle, for
// interop with code that binds textures directly.
func (b *Backend) TextureName(h gfx.Image) uint32 {
	if img, ok := b.images[h.ID]; ok {
		return img.name
	}
	return 0
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glbackend: %s: GL error 0x%04X", op, code)
	}
	return nil
}
