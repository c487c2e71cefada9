package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/samples/gfx"
)

func (b *Backend) BeginPass(action *gfx.PassAction, width, height int) {
	b.passHeight = height
	b.cur = nil
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Disable(gl.SCISSOR_TEST)

	var mask uint32
	if c := action.Colors[0]; c.Action == gfx.ActionClear {
		gl.ColorMask(true, true, true, true)
		gl.ClearColor(c.Value.R, c.Value.G, c.Value.B, c.Value.A)
		mask |= gl.COLOR_BUFFER_BIT
	}
	if action.Depth.Action == gfx.ActionClear {
		gl.DepthMask(true)
		gl.ClearDepth(float64(action.Depth.Value))
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if action.Stencil.Action == gfx.ActionClear {
		gl.StencilMask(0xFF)
		gl.ClearStencil(int32(action.Stencil.Value))
		mask |= gl.STENCIL_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(0, 0, int32(width), int32(height))
}

func (b *Backend) flipY(y, h int, originTopLeft bool) int32 {
	if originTopLeft {
		return int32(b.passHeight - (y + h))
	}
	return int32(y)
}

func (b *Backend) ApplyViewport(x, y, width, height int, originTopLeft bool) {
	gl.Viewport(int32(x), b.flipY(y, height, originTopLeft), int32(width), int32(height))
}

func (b *Backend) ApplyScissorRect(x, y, width, height int, originTopLeft bool) {
	gl.Scissor(int32(x), b.flipY(y, height, originTopLeft), int32(width), int32(height))
}

func (b *Backend) ApplyPipeline(h gfx.Pipeline) {
	p, ok := b.pipelines[h.ID]
	if !ok {
		b.cur = nil
		return
	}
	b.cur = p
	d := &p.desc
	gl.UseProgram(p.shader.program)

	ds := &d.DepthStencil
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(compareFunc(ds.DepthCompareFunc))
	gl.DepthMask(ds.DepthWriteEnabled)
	if ds.StencilEnabled {
		gl.Enable(gl.STENCIL_TEST)
		gl.StencilFuncSeparate(gl.FRONT, compareFunc(ds.StencilFront.Compare), int32(ds.StencilRef), uint32(ds.StencilReadMask))
		gl.StencilFuncSeparate(gl.BACK, compareFunc(ds.StencilBack.Compare), int32(ds.StencilRef), uint32(ds.StencilReadMask))
		gl.StencilMask(uint32(ds.StencilWriteMask))
	} else {
		gl.Disable(gl.STENCIL_TEST)
	}

	bs := &d.Blend
	if bs.Enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFuncSeparate(blendFactor(bs.SrcFactorRGB), blendFactor(bs.DstFactorRGB),
			blendFactor(bs.SrcFactorAlpha), blendFactor(bs.DstFactorAlpha))
		gl.BlendEquationSeparate(blendOp(bs.OpRGB), blendOp(bs.OpAlpha))
		gl.BlendColor(bs.BlendColor.R, bs.BlendColor.G, bs.BlendColor.B, bs.BlendColor.A)
	} else {
		gl.Disable(gl.BLEND)
	}
	m := bs.ColorWriteMask
	gl.ColorMask(m&gfx.ColorMaskR != 0, m&gfx.ColorMaskG != 0, m&gfx.ColorMaskB != 0, m&gfx.ColorMaskA != 0)

	rs := &d.Rasterizer
	switch rs.CullMode {
	case gfx.CullModeFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	case gfx.CullModeBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	default:
		gl.Disable(gl.CULL_FACE)
	}
	if rs.FaceWinding == gfx.FaceWindingCCW {
		gl.FrontFace(gl.CCW)
	} else {
		gl.FrontFace(gl.CW)
	}
	if rs.SampleCount > 1 {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}
	if rs.DepthBias != 0 {
		gl.Enable(gl.POLYGON_OFFSET_FILL)
		gl.PolygonOffset(rs.DepthBias, rs.DepthBias)
	} else {
		gl.Disable(gl.POLYGON_OFFSET_FILL)
	}
}

func (b *Backend) ApplyBindings(bind *gfx.Bindings) {
	if b.cur == nil {
		return
	}
	d := &b.cur.desc
	n := 0
	for i, a := range d.Layout.Attrs {
		if a.Format == gfx.VertexFormatInvalid {
			break
		}
		buf, ok := b.buffers[bind.VertexBuffers[a.BufferIndex].ID]
		if !ok {
			continue
		}
		layout := d.Layout.Buffers[a.BufferIndex]
		size, typ, norm := vertexFormat(a.Format)
		offset := uintptr(bind.VertexBufferOffsets[a.BufferIndex] + a.Offset)
		gl.BindBuffer(gl.ARRAY_BUFFER, buf.name)
		gl.VertexAttribPointerWithOffset(uint32(i), size, typ, norm, int32(layout.Stride), offset)
		gl.EnableVertexAttribArray(uint32(i))
		if layout.StepFunc == gfx.VertexStepPerInstance {
			gl.VertexAttribDivisor(uint32(i), uint32(layout.StepRate))
		} else {
			gl.VertexAttribDivisor(uint32(i), 0)
		}
		n = i + 1
	}
	for i := n; i < b.enabledAttrs; i++ {
		gl.DisableVertexAttribArray(uint32(i))
	}
	b.enabledAttrs = n

	if ib, ok := b.buffers[bind.IndexBuffer.ID]; ok {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.name)
		b.indexOffset = bind.IndexBufferOffset
	}

	unit := uint32(0)
	for _, imgs := range [][gfx.MaxShaderImages]gfx.Image{bind.FSImages, bind.VSImages} {
		for _, h := range imgs {
			img, ok := b.images[h.ID]
			if !ok {
				break
			}
			gl.ActiveTexture(gl.TEXTURE0 + unit)
			gl.BindTexture(gl.TEXTURE_2D, img.name)
			unit++
		}
	}
}

func (b *Backend) ApplyUniforms(stage gfx.ShaderStage, slot int, data []byte) {
	if b.cur == nil {
		return
	}
	blocks := b.cur.shader.uniforms[stage]
	if slot >= len(blocks) {
		return
	}
	off := 0
	for _, u := range blocks[slot] {
		size := u.typ.Size() * int(u.count)
		if u.loc >= 0 {
			ptr := (*float32)(unsafe.Pointer(&data[off]))
			switch u.typ {
			case gfx.UniformTypeFloat:
				gl.Uniform1fv(u.loc, u.count, ptr)
			case gfx.UniformTypeFloat2:
				gl.Uniform2fv(u.loc, u.count, ptr)
			case gfx.UniformTypeFloat3:
				gl.Uniform3fv(u.loc, u.count, ptr)
			case gfx.UniformTypeFloat4:
				gl.Uniform4fv(u.loc, u.count, ptr)
			case gfx.UniformTypeMat4:
				gl.UniformMatrix4fv(u.loc, u.count, false, ptr)
			}
		}
		off += size
	}
}

func (b *Backend) Draw(base, count, instances int) {
	if b.cur == nil {
		return
	}
	d := &b.cur.desc
	mode := primitiveType(d.PrimitiveType)
	if d.IndexType == gfx.IndexTypeNone {
		if instances > 1 {
			gl.DrawArraysInstanced(mode, int32(base), int32(count), int32(instances))
		} else {
			gl.DrawArrays(mode, int32(base), int32(count))
		}
		return
	}
	offset := b.indexOffset + base*d.IndexType.Size()
	if instances > 1 {
		gl.DrawElementsInstanced(mode, int32(count), indexType(d.IndexType), gl.PtrOffset(offset), int32(instances))
	} else {
		gl.DrawElementsWithOffset(mode, int32(count), indexType(d.IndexType), uintptr(offset))
	}
}

func (b *Backend) EndPass() {
	b.cur = nil
	if glVerbose() {
		if err := checkError("pass"); err != nil {
			glLogger.Debug("GL error in pass", "err", err)
		}
	}
}

func (b *Backend) Commit() {}
