// Package gfx is a thin GPU abstraction with pooled resource handles,
// immutable pipeline state objects and a validated render-pass call order.
//
// A frame is one pass:
//
//	ctx.BeginDefaultPass(&action, w, h)
//	ctx.ApplyPipeline(pip)
//	ctx.ApplyBindings(&bind)
//	ctx.ApplyUniforms(gfx.ShaderStageVS, 0, gfx.AsBytes(&params))
//	ctx.Draw(0, 36, 1)
//	ctx.EndPass()
//	err := ctx.Commit()
//
// Per-frame calls do not return errors. A call made out of order or with
// bad arguments is logged and skipped, and Commit reports the first such
// problem of the frame.
package gfx

import (
	"fmt"
)

// Desc configures Setup. Zero pool sizes select the defaults.
type Desc struct {
	Backend          Backend
	GLForceGLES2     bool
	BufferPoolSize   int
	ImagePoolSize    int
	ShaderPoolSize   int
	PipelinePoolSize int
}

type buffer struct {
	desc           BufferDesc
	updateFrame    uint64
	appendFrame    uint64
	appendPos      int
	appendOverflow bool
}

type image struct {
	desc ImageDesc
}

type shader struct {
	desc ShaderDesc
}

type pipeline struct {
	desc PipelineDesc
}

// Call is one captured gfx call, for inspection tools.
type Call struct {
	Op   string
	Args string
}

func (c Call) String() string {
	if c.Args == "" {
		return c.Op
	}
	return c.Op + "(" + c.Args + ")"
}

// PoolInfo reports the occupancy of one resource pool.
type PoolInfo struct {
	Name string
	Used int
	Size int
}

// Context owns the resource pools, pass state and frame statistics of one
// GPU backend.
type Context struct {
	desc     Desc
	backend  Backend
	features Features
	valid    bool

	buffers   *pool[buffer]
	images    *pool[image]
	shaders   *pool[shader]
	pipelines *pool[pipeline]

	// frame starts at 1 so zero means "never" in per-buffer frame stamps.
	frame      uint64
	inPass     bool
	passWidth  int
	passHeight int
	pip        Pipeline
	drawValid  bool
	bound      bool
	frameErr   error

	stats     FrameStats
	lastStats FrameStats

	capture   bool
	calls     []Call
	lastCalls []Call
}

// Setup initializes the backend and returns a valid context.
func Setup(desc Desc) (*Context, error) {
	if desc.Backend == nil {
		return nil, fmt.Errorf("gfx setup: no backend: %w", ErrValidation)
	}
	if desc.BufferPoolSize <= 0 {
		desc.BufferPoolSize = DefaultBufferPoolSize
	}
	if desc.ImagePoolSize <= 0 {
		desc.ImagePoolSize = DefaultImagePoolSize
	}
	if desc.ShaderPoolSize <= 0 {
		desc.ShaderPoolSize = DefaultShaderPoolSize
	}
	if desc.PipelinePoolSize <= 0 {
		desc.PipelinePoolSize = DefaultPipelinePoolSize
	}

	features, err := desc.Backend.Init(&desc)
	if err != nil {
		return nil, fmt.Errorf("gfx setup: %w", err)
	}
	if desc.GLForceGLES2 {
		features.GLES2 = true
		features.Instancing = false
		features.ImageClampToBorder = false
	}

	c := &Context{
		desc:      desc,
		backend:   desc.Backend,
		features:  features,
		valid:     true,
		buffers:   newPool[buffer]("buffer", desc.BufferPoolSize),
		images:    newPool[image]("image", desc.ImagePoolSize),
		shaders:   newPool[shader]("shader", desc.ShaderPoolSize),
		pipelines: newPool[pipeline]("pipeline", desc.PipelinePoolSize),
		frame:     1,
	}
	gfxLogger.Debug("gfx setup",
		"gles2", features.GLES2,
		"instancing", features.Instancing,
		"clampToBorder", features.ImageClampToBorder,
		"msaa", features.MSAA)
	return c, nil
}

// IsValid reports whether the context is set up and not shut down.
func (c *Context) IsValid() bool { return c != nil && c.valid }

// Features returns the capabilities in effect, after GLES2 forcing.
func (c *Context) Features() Features { return c.features }

// Frame returns the index of the frame currently being recorded, starting at 1.
func (c *Context) Frame() uint64 { return c.frame }

// Shutdown destroys every live resource and shuts the backend down.
// Calling it again is a no-op.
func (c *Context) Shutdown() {
	if !c.IsValid() {
		return
	}
	for _, id := range c.pipelines.live() {
		c.DestroyPipeline(Pipeline{id})
	}
	for _, id := range c.shaders.live() {
		c.DestroyShader(Shader{id})
	}
	for _, id := range c.images.live() {
		c.DestroyImage(Image{id})
	}
	for _, id := range c.buffers.live() {
		c.DestroyBuffer(Buffer{id})
	}
	c.backend.Shutdown()
	c.valid = false
	gfxLogger.Debug("gfx shutdown", "frames", c.frame-1)
}

// Pools reports the occupancy of each resource pool.
func (c *Context) Pools() []PoolInfo {
	return []PoolInfo{
		{Name: "buffers", Used: c.buffers.used(), Size: c.buffers.size()},
		{Name: "images", Used: c.images.used(), Size: c.images.size()},
		{Name: "shaders", Used: c.shaders.used(), Size: c.shaders.size()},
		{Name: "pipelines", Used: c.pipelines.used(), Size: c.pipelines.size()},
	}
}

// MakeBuffer creates a buffer. On a validation or backend failure the
// returned handle is in the failed state and must still be destroyed.
func (c *Context) MakeBuffer(desc BufferDesc) (Buffer, error) {
	if !c.IsValid() {
		return Buffer{}, ErrNotValid
	}
	id, err := c.buffers.alloc()
	if err != nil {
		return Buffer{}, fmt.Errorf("make buffer %q: %w", desc.Label, err)
	}
	h := Buffer{id}
	s := c.buffers.lookup(id)
	d := bufferDefaults(desc)
	if err := validateBuffer(&d); err != nil {
		s.state = ResourceStateFailed
		return h, fmt.Errorf("make buffer: %w", err)
	}
	if err := c.backend.CreateBuffer(h, &d); err != nil {
		s.state = ResourceStateFailed
		return h, fmt.Errorf("make buffer %q: %w", d.Label, err)
	}
	d.Data = nil
	s.res = buffer{desc: d}
	s.state = ResourceStateValid
	gfxLogger.Debug("buffer created", "id", id, "label", d.Label, "size", d.Size, "type", d.Type, "usage", d.Usage)
	return h, nil
}

// MakeImage creates a 2D texture.
func (c *Context) MakeImage(desc ImageDesc) (Image, error) {
	if !c.IsValid() {
		return Image{}, ErrNotValid
	}
	id, err := c.images.alloc()
	if err != nil {
		return Image{}, fmt.Errorf("make image %q: %w", desc.Label, err)
	}
	h := Image{id}
	s := c.images.lookup(id)
	d := imageDefaults(desc, c.features)
	if err := validateImage(&d, c.features); err != nil {
		s.state = ResourceStateFailed
		return h, fmt.Errorf("make image: %w", err)
	}
	if err := c.backend.CreateImage(h, &d); err != nil {
		s.state = ResourceStateFailed
		return h, fmt.Errorf("make image %q: %w", d.Label, err)
	}
	d.Data = nil
	s.res = image{desc: d}
	s.state = ResourceStateValid
	gfxLogger.Debug("image created", "id", id, "label", d.Label, "w", d.Width, "h", d.Height, "wrapU", d.WrapU, "wrapV", d.WrapV)
	return h, nil
}

// MakeShader compiles and links a shader program.
func (c *Context) MakeShader(desc ShaderDesc) (Shader, error) {
	if !c.IsValid() {
		return Shader{}, ErrNotValid
	}
	id, err := c.shaders.alloc()
	if err != nil {
		return Shader{}, fmt.Errorf("make shader %q: %w", desc.Label, err)
	}
	h := Shader{id}
	s := c.shaders.lookup(id)
	d := shaderDefaults(desc)
	if err := validateShader(&d); err != nil {
		s.state = ResourceStateFailed
		return h, fmt.Errorf("make shader: %w", err)
	}
	if err := c.backend.CreateShader(h, &d); err != nil {
		s.state = ResourceStateFailed
		return h, fmt.Errorf("make shader %q: %w", d.Label, err)
	}
	s.res = shader{desc: d}
	s.state = ResourceStateValid
	gfxLogger.Debug("shader created", "id", id, "label", d.Label, "attrs", len(d.Attrs))
	return h, nil
}

// MakePipeline creates a pipeline state object. The shader must be valid.
func (c *Context) MakePipeline(desc PipelineDesc) (Pipeline, error) {
	if !c.IsValid() {
		return Pipeline{}, ErrNotValid
	}
	id, err := c.pipelines.alloc()
	if err != nil {
		return Pipeline{}, fmt.Errorf("make pipeline %q: %w", desc.Label, err)
	}
	h := Pipeline{id}
	s := c.pipelines.lookup(id)
	d := pipelineDefaults(desc)
	var shd *ShaderDesc
	if ss := c.shaders.lookup(d.Shader.ID); ss != nil && ss.state == ResourceStateValid {
		shd = &ss.res.desc
	}
	if err := validatePipeline(&d, shd, c.features); err != nil {
		s.state = ResourceStateFailed
		return h, fmt.Errorf("make pipeline: %w", err)
	}
	if err := c.backend.CreatePipeline(h, &d); err != nil {
		s.state = ResourceStateFailed
		return h, fmt.Errorf("make pipeline %q: %w", d.Label, err)
	}
	s.res = pipeline{desc: d}
	s.state = ResourceStateValid
	gfxLogger.Debug("pipeline created", "id", id, "label", d.Label, "stride0", d.Layout.Buffers[0].Stride,
		"index", d.IndexType, "cull", d.Rasterizer.CullMode, "depth", d.DepthStencil.DepthCompareFunc)
	return h, nil
}

// DestroyBuffer releases a buffer. Stale or zero handles are ignored.
func (c *Context) DestroyBuffer(h Buffer) {
	if !c.IsValid() {
		return
	}
	if c.buffers.state(h.ID) == ResourceStateValid {
		c.backend.DestroyBuffer(h)
	}
	c.buffers.release(h.ID)
}

// DestroyImage releases an image. Stale or zero handles are ignored.
func (c *Context) DestroyImage(h Image) {
	if !c.IsValid() {
		return
	}
	if c.images.state(h.ID) == ResourceStateValid {
		c.backend.DestroyImage(h)
	}
	c.images.release(h.ID)
}

// DestroyShader releases a shader. Stale or zero handles are ignored.
func (c *Context) DestroyShader(h Shader) {
	if !c.IsValid() {
		return
	}
	if c.shaders.state(h.ID) == ResourceStateValid {
		c.backend.DestroyShader(h)
	}
	c.shaders.release(h.ID)
}

// DestroyPipeline releases a pipeline. Stale or zero handles are ignored.
func (c *Context) DestroyPipeline(h Pipeline) {
	if !c.IsValid() {
		return
	}
	if c.pipelines.state(h.ID) == ResourceStateValid {
		c.backend.DestroyPipeline(h)
	}
	c.pipelines.release(h.ID)
}

func (c *Context) QueryBufferState(h Buffer) ResourceState     { return c.buffers.state(h.ID) }
func (c *Context) QueryImageState(h Image) ResourceState       { return c.images.state(h.ID) }
func (c *Context) QueryShaderState(h Shader) ResourceState     { return c.shaders.state(h.ID) }
func (c *Context) QueryPipelineState(h Pipeline) ResourceState { return c.pipelines.state(h.ID) }

// BufferDesc returns the defaults-filled descriptor of a live buffer.
// Initial data is not retained.
func (c *Context) BufferDesc(h Buffer) (BufferDesc, bool) {
	if s := c.buffers.lookup(h.ID); s != nil {
		return s.res.desc, true
	}
	return BufferDesc{}, false
}

// ImageDesc returns the defaults-filled descriptor of a live image.
func (c *Context) ImageDesc(h Image) (ImageDesc, bool) {
	if s := c.images.lookup(h.ID); s != nil {
		return s.res.desc, true
	}
	return ImageDesc{}, false
}

// ShaderDesc returns the descriptor of a live shader.
func (c *Context) ShaderDesc(h Shader) (ShaderDesc, bool) {
	if s := c.shaders.lookup(h.ID); s != nil {
		return s.res.desc, true
	}
	return ShaderDesc{}, false
}

// PipelineDesc returns the defaults-filled descriptor of a live pipeline,
// including computed attribute offsets and strides.
func (c *Context) PipelineDesc(h Pipeline) (PipelineDesc, bool) {
	if s := c.pipelines.lookup(h.ID); s != nil {
		return s.res.desc, true
	}
	return PipelineDesc{}, false
}

// Buffers lists live buffer handles in slot order.
func (c *Context) Buffers() []Buffer {
	ids := c.buffers.live()
	out := make([]Buffer, len(ids))
	for i, id := range ids {
		out[i] = Buffer{id}
	}
	return out
}

// Images lists live image handles in slot order.
func (c *Context) Images() []Image {
	ids := c.images.live()
	out := make([]Image, len(ids))
	for i, id := range ids {
		out[i] = Image{id}
	}
	return out
}

// Shaders lists live shader handles in slot order.
func (c *Context) Shaders() []Shader {
	ids := c.shaders.live()
	out := make([]Shader, len(ids))
	for i, id := range ids {
		out[i] = Shader{id}
	}
	return out
}

// Pipelines lists live pipeline handles in slot order.
func (c *Context) Pipelines() []Pipeline {
	ids := c.pipelines.live()
	out := make([]Pipeline, len(ids))
	for i, id := range ids {
		out[i] = Pipeline{id}
	}
	return out
}

// SetCapture turns call capture on or off for following frames.
func (c *Context) SetCapture(on bool) {
	c.capture = on
	if !on {
		c.calls = nil
	}
}

// Capturing reports whether call capture is on.
func (c *Context) Capturing() bool { return c.capture }

// CapturedCalls returns the calls of the previously committed frame.
// The slice is owned by the context and replaced by the next Commit.
func (c *Context) CapturedCalls() []Call { return c.lastCalls }

// Stats returns the counters of the previously committed frame.
func (c *Context) Stats() FrameStats { return c.lastStats }

func (c *Context) record(op, format string, args ...any) {
	if !c.capture {
		return
	}
	c.calls = append(c.calls, Call{Op: op, Args: fmt.Sprintf(format, args...)})
}

// fail records a per-frame error. Only the first error of a frame is
// logged at Warn and returned from Commit.
func (c *Context) fail(op string, err error) {
	c.stats.ValidationErrs++
	if c.frameErr == nil {
		c.frameErr = fmt.Errorf("%s: %w", op, err)
		gfxLogger.Warn("gfx call skipped", "op", op, "frame", c.frame, "err", err)
		return
	}
	gfxLogger.Debug("gfx call skipped", "op", op, "frame", c.frame, "err", err)
}
