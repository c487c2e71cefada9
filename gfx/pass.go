package gfx

import "fmt"

func passActionDefaults(a *PassAction) PassAction {
	var out PassAction
	if a != nil {
		out = *a
	}
	for i := range out.Colors {
		if out.Colors[i].Action == ActionDefault {
			out.Colors[i] = ColorAttachmentAction{Action: ActionClear, Value: DefaultClearColor}
		}
	}
	if out.Depth.Action == ActionDefault {
		out.Depth = DepthAttachmentAction{Action: ActionClear, Value: 1}
	}
	if out.Stencil.Action == ActionDefault {
		out.Stencil = StencilAttachmentAction{Action: ActionClear}
	}
	return out
}

// BeginDefaultPass starts rendering into the window framebuffer.
// A nil action clears to DefaultClearColor.
func (c *Context) BeginDefaultPass(action *PassAction, width, height int) {
	if !c.IsValid() {
		return
	}
	if c.inPass {
		c.fail("begin_default_pass", fmt.Errorf("pass already open: %w", ErrPassOrder))
		return
	}
	a := passActionDefaults(action)
	c.inPass = true
	c.passWidth, c.passHeight = width, height
	c.pip = Pipeline{}
	c.drawValid = false
	c.bound = false
	c.stats.Passes++
	c.record("begin_default_pass", "%dx%d", width, height)
	if gfxVerbose() && c.frame == 1 {
		gfxLogger.Debug("first pass", "w", width, "h", height, "clear", a.Colors[0].Value)
	}
	c.backend.BeginPass(&a, width, height)
}

// PassSize returns the framebuffer size of the open pass.
func (c *Context) PassSize() (width, height int) { return c.passWidth, c.passHeight }

// ApplyViewport sets the viewport rectangle inside the open pass.
func (c *Context) ApplyViewport(x, y, width, height int, originTopLeft bool) {
	if !c.IsValid() {
		return
	}
	if !c.inPass {
		c.fail("apply_viewport", fmt.Errorf("no pass open: %w", ErrPassOrder))
		return
	}
	c.record("apply_viewport", "%d, %d, %d, %d", x, y, width, height)
	c.backend.ApplyViewport(x, y, width, height, originTopLeft)
}

// ApplyScissorRect sets the scissor rectangle inside the open pass.
func (c *Context) ApplyScissorRect(x, y, width, height int, originTopLeft bool) {
	if !c.IsValid() {
		return
	}
	if !c.inPass {
		c.fail("apply_scissor_rect", fmt.Errorf("no pass open: %w", ErrPassOrder))
		return
	}
	c.record("apply_scissor_rect", "%d, %d, %d, %d", x, y, width, height)
	c.backend.ApplyScissorRect(x, y, width, height, originTopLeft)
}

// ApplyPipeline makes p current. Bindings must be applied again afterwards.
func (c *Context) ApplyPipeline(p Pipeline) {
	if !c.IsValid() {
		return
	}
	if !c.inPass {
		c.fail("apply_pipeline", fmt.Errorf("no pass open: %w", ErrPassOrder))
		return
	}
	c.pip = p
	c.bound = false
	if _, _, err := c.pipelineShader(); err != nil {
		c.drawValid = false
		c.fail("apply_pipeline", err)
		return
	}
	c.drawValid = true
	c.stats.Pipelines++
	c.record("apply_pipeline", "%d", p.ID)
	c.backend.ApplyPipeline(p)
}

// ApplyBindings binds vertex buffers, index buffer and images for the current pipeline.
func (c *Context) ApplyBindings(b *Bindings) {
	if !c.IsValid() {
		return
	}
	if !c.inPass {
		c.fail("apply_bindings", fmt.Errorf("no pass open: %w", ErrPassOrder))
		return
	}
	if c.pip.ID == 0 {
		c.fail("apply_bindings", fmt.Errorf("no pipeline applied: %w", ErrPassOrder))
		return
	}
	if !c.drawValid {
		return
	}
	if err := c.validateBindings(b); err != nil {
		c.drawValid = false
		c.fail("apply_bindings", err)
		return
	}
	c.bound = true
	c.stats.Bindings++
	c.record("apply_bindings", "vb=%d ib=%d fsimg=%d", b.VertexBuffers[0].ID, b.IndexBuffer.ID, b.FSImages[0].ID)
	c.backend.ApplyBindings(b)
}

func (c *Context) validateBindings(b *Bindings) error {
	if b == nil {
		return fmt.Errorf("nil bindings: %w", ErrValidation)
	}
	pd, shd, err := c.pipelineShader()
	if err != nil {
		return err
	}
	var needed [MaxVertexBuffers]bool
	for _, a := range pd.Layout.Attrs {
		if a.Format == VertexFormatInvalid {
			break
		}
		needed[a.BufferIndex] = true
	}
	for i, need := range needed {
		if !need {
			continue
		}
		s := c.buffers.lookup(b.VertexBuffers[i].ID)
		if s == nil || s.state != ResourceStateValid {
			return fmt.Errorf("vertex buffer slot %d: %w", i, ErrInvalidHandle)
		}
		if s.res.desc.Type != BufferTypeVertexBuffer {
			return fmt.Errorf("vertex buffer slot %d is not a vertex buffer: %w", i, ErrValidation)
		}
		if err := c.checkBufferUse(&s.res, b.VertexBufferOffsets[i]); err != nil {
			return fmt.Errorf("vertex buffer slot %d: %w", i, err)
		}
	}
	if pd.IndexType == IndexTypeNone {
		if b.IndexBuffer.ID != 0 {
			return fmt.Errorf("pipeline has no index type but an index buffer is bound: %w", ErrValidation)
		}
	} else {
		s := c.buffers.lookup(b.IndexBuffer.ID)
		if s == nil || s.state != ResourceStateValid {
			return fmt.Errorf("index buffer: %w", ErrInvalidHandle)
		}
		if s.res.desc.Type != BufferTypeIndexBuffer {
			return fmt.Errorf("index buffer slot holds a vertex buffer: %w", ErrValidation)
		}
		if err := c.checkBufferUse(&s.res, b.IndexBufferOffset); err != nil {
			return fmt.Errorf("index buffer: %w", err)
		}
	}
	for _, st := range []struct {
		stage  ShaderStage
		want   int
		images *[MaxShaderImages]Image
	}{{ShaderStageVS, len(shd.VS.Images), &b.VSImages}, {ShaderStageFS, len(shd.FS.Images), &b.FSImages}} {
		for i := range st.want {
			if c.images.state(st.images[i].ID) != ResourceStateValid {
				return fmt.Errorf("%s image slot %d: %w", st.stage, i, ErrInvalidHandle)
			}
		}
	}
	return nil
}

// pipelineShader resolves the applied pipeline and its shader. Either may
// have been destroyed since ApplyPipeline.
func (c *Context) pipelineShader() (*PipelineDesc, *ShaderDesc, error) {
	ps := c.pipelines.lookup(c.pip.ID)
	if ps == nil || ps.state != ResourceStateValid {
		return nil, nil, fmt.Errorf("pipeline %d: %w", c.pip.ID, ErrInvalidHandle)
	}
	pd := &ps.res.desc
	ss := c.shaders.lookup(pd.Shader.ID)
	if ss == nil || ss.state != ResourceStateValid {
		return nil, nil, fmt.Errorf("shader %d of pipeline %d: %w", pd.Shader.ID, c.pip.ID, ErrInvalidHandle)
	}
	return pd, &ss.res.desc, nil
}

func (c *Context) checkBufferUse(b *buffer, offset int) error {
	if offset < 0 || offset >= b.desc.Size {
		return fmt.Errorf("offset %d outside buffer of size %d: %w", offset, b.desc.Size, ErrValidation)
	}
	if b.appendFrame == c.frame && b.appendOverflow {
		return fmt.Errorf("buffer overflowed by append this frame: %w", ErrValidation)
	}
	return nil
}

// ApplyUniforms uploads one uniform block. data must be exactly the block size.
func (c *Context) ApplyUniforms(stage ShaderStage, slot int, data []byte) {
	if !c.IsValid() {
		return
	}
	if !c.inPass {
		c.fail("apply_uniforms", fmt.Errorf("no pass open: %w", ErrPassOrder))
		return
	}
	if c.pip.ID == 0 {
		c.fail("apply_uniforms", fmt.Errorf("no pipeline applied: %w", ErrPassOrder))
		return
	}
	if !c.drawValid {
		return
	}
	_, shd, err := c.pipelineShader()
	if err != nil {
		c.drawValid = false
		c.fail("apply_uniforms", err)
		return
	}
	blocks := shd.VS.UniformBlocks
	if stage == ShaderStageFS {
		blocks = shd.FS.UniformBlocks
	}
	if slot < 0 || slot >= len(blocks) {
		c.drawValid = false
		c.fail("apply_uniforms", fmt.Errorf("%s has no uniform block %d: %w", stage, slot, ErrValidation))
		return
	}
	if len(data) != blocks[slot].Size {
		c.drawValid = false
		c.fail("apply_uniforms", fmt.Errorf("%s block %d: %d bytes, want %d: %w", stage, slot, len(data), blocks[slot].Size, ErrValidation))
		return
	}
	c.stats.Uniforms++
	c.stats.UniformBytes += len(data)
	c.record("apply_uniforms", "%s, %d, %d bytes", stage, slot, len(data))
	c.backend.ApplyUniforms(stage, slot, data)
}

// Draw issues a draw of numElements vertices or indices starting at baseElement.
// A draw with zero elements or instances does nothing.
func (c *Context) Draw(baseElement, numElements, numInstances int) {
	if !c.IsValid() {
		return
	}
	if !c.inPass {
		c.fail("draw", fmt.Errorf("no pass open: %w", ErrPassOrder))
		return
	}
	if c.pip.ID == 0 {
		c.fail("draw", fmt.Errorf("no pipeline applied: %w", ErrPassOrder))
		return
	}
	if !c.drawValid {
		return
	}
	if !c.bound {
		c.fail("draw", fmt.Errorf("no bindings applied: %w", ErrPassOrder))
		return
	}
	if _, _, err := c.pipelineShader(); err != nil {
		c.drawValid = false
		c.fail("draw", err)
		return
	}
	if baseElement < 0 || numElements < 0 || numInstances < 0 {
		c.fail("draw", fmt.Errorf("negative draw range (%d, %d, %d): %w", baseElement, numElements, numInstances, ErrValidation))
		return
	}
	if numElements == 0 || numInstances == 0 {
		return
	}
	if numInstances > 1 && !c.features.Instancing {
		c.fail("draw", fmt.Errorf("%d instances: %w", numInstances, ErrNotSupported))
		return
	}
	c.stats.Draws++
	c.stats.Elements += numElements * numInstances
	c.record("draw", "%d, %d, %d", baseElement, numElements, numInstances)
	c.backend.Draw(baseElement, numElements, numInstances)
}

// EndPass closes the open pass.
func (c *Context) EndPass() {
	if !c.IsValid() {
		return
	}
	if !c.inPass {
		c.fail("end_pass", fmt.Errorf("no pass open: %w", ErrPassOrder))
		return
	}
	c.inPass = false
	c.pip = Pipeline{}
	c.drawValid = false
	c.bound = false
	c.record("end_pass", "")
	c.backend.EndPass()
}

// Commit finishes the frame and returns the first per-frame error, if any.
func (c *Context) Commit() error {
	if !c.IsValid() {
		return ErrNotValid
	}
	if c.inPass {
		c.fail("commit", fmt.Errorf("pass not ended: %w", ErrPassOrder))
		c.inPass = false
		c.backend.EndPass()
	}
	c.record("commit", "")
	c.backend.Commit()

	err := c.frameErr
	c.stats.Frame = c.frame
	c.lastStats = c.stats
	c.stats = FrameStats{}
	c.lastCalls = c.calls
	c.calls = nil
	c.frameErr = nil
	c.frame++
	return err
}

// UpdateBuffer replaces the content of a dynamic or stream buffer. It may be
// called once per buffer and frame, and not after AppendBuffer in the same frame.
func (c *Context) UpdateBuffer(h Buffer, data []byte) {
	if !c.IsValid() {
		return
	}
	s := c.buffers.lookup(h.ID)
	if s == nil || s.state != ResourceStateValid {
		c.fail("update_buffer", fmt.Errorf("buffer %d: %w", h.ID, ErrInvalidHandle))
		return
	}
	b := &s.res
	switch {
	case b.desc.Usage == UsageImmutable:
		c.fail("update_buffer", fmt.Errorf("buffer %q is immutable: %w", b.desc.Label, ErrValidation))
		return
	case len(data) > b.desc.Size:
		c.fail("update_buffer", fmt.Errorf("buffer %q: %d bytes exceed size %d: %w", b.desc.Label, len(data), b.desc.Size, ErrValidation))
		return
	case b.updateFrame == c.frame:
		c.fail("update_buffer", fmt.Errorf("buffer %q updated twice this frame: %w", b.desc.Label, ErrValidation))
		return
	case b.appendFrame == c.frame:
		c.fail("update_buffer", fmt.Errorf("buffer %q already appended to this frame: %w", b.desc.Label, ErrValidation))
		return
	}
	b.updateFrame = c.frame
	c.stats.BufferUpdates++
	c.record("update_buffer", "%d, %d bytes", h.ID, len(data))
	c.backend.UpdateBuffer(h, 0, data)
}

// AppendBuffer writes data behind previous appends of this frame and
// returns its byte offset. The write position resets every frame.
// On overflow nothing is written and the buffer cannot be bound for the rest of the frame.
func (c *Context) AppendBuffer(h Buffer, data []byte) int {
	if !c.IsValid() {
		return 0
	}
	s := c.buffers.lookup(h.ID)
	if s == nil || s.state != ResourceStateValid {
		c.fail("append_buffer", fmt.Errorf("buffer %d: %w", h.ID, ErrInvalidHandle))
		return 0
	}
	b := &s.res
	if b.desc.Usage == UsageImmutable {
		c.fail("append_buffer", fmt.Errorf("buffer %q is immutable: %w", b.desc.Label, ErrValidation))
		return 0
	}
	if b.updateFrame == c.frame {
		c.fail("append_buffer", fmt.Errorf("buffer %q already updated this frame: %w", b.desc.Label, ErrValidation))
		return 0
	}
	if b.appendFrame != c.frame {
		b.appendFrame = c.frame
		b.appendPos = 0
		b.appendOverflow = false
	}
	offset := b.appendPos
	if offset+len(data) > b.desc.Size {
		b.appendOverflow = true
		c.fail("append_buffer", fmt.Errorf("buffer %q: append of %d bytes at %d overflows size %d: %w",
			b.desc.Label, len(data), offset, b.desc.Size, ErrValidation))
		return offset
	}
	if len(data) > 0 {
		c.backend.UpdateBuffer(h, offset, data)
	}
	b.appendPos += (len(data) + 3) &^ 3
	c.stats.BufferAppends++
	c.record("append_buffer", "%d, %d bytes at %d", h.ID, len(data), offset)
	return offset
}
