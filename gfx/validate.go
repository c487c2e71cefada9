package gfx

import "fmt"

func validationErr(what string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(what, args...), ErrValidation)
}

func bufferDefaults(d BufferDesc) BufferDesc {
	if d.Type == BufferTypeDefault {
		d.Type = BufferTypeVertexBuffer
	}
	if d.Usage == UsageDefault {
		d.Usage = UsageImmutable
	}
	if d.Size == 0 {
		d.Size = len(d.Data)
	}
	return d
}

func validateBuffer(d *BufferDesc) error {
	if d.Size <= 0 {
		return validationErr("buffer %q: size must be > 0", d.Label)
	}
	if d.Usage == UsageImmutable {
		if len(d.Data) == 0 {
			return validationErr("buffer %q: immutable buffer needs initial data", d.Label)
		}
		if len(d.Data) != d.Size {
			return validationErr("buffer %q: data size %d != buffer size %d", d.Label, len(d.Data), d.Size)
		}
	} else if d.Data != nil {
		return validationErr("buffer %q: dynamic/stream buffer must not have initial data", d.Label)
	}
	return nil
}

func imageDefaults(d ImageDesc, f Features) ImageDesc {
	if d.PixelFormat == PixelFormatDefault {
		d.PixelFormat = PixelFormatRGBA8
	}
	if d.Usage == UsageDefault {
		d.Usage = UsageImmutable
	}
	if d.MinFilter == FilterDefault {
		d.MinFilter = FilterNearest
	}
	if d.MagFilter == FilterDefault {
		d.MagFilter = FilterNearest
	}
	if d.WrapU == WrapDefault {
		d.WrapU = WrapRepeat
	}
	if d.WrapV == WrapDefault {
		d.WrapV = WrapRepeat
	}
	if d.BorderColor == BorderColorDefault {
		d.BorderColor = BorderColorOpaqueBlack
	}
	if !f.ImageClampToBorder {
		if d.WrapU == WrapClampToBorder {
			d.WrapU = WrapClampToEdge
		}
		if d.WrapV == WrapClampToBorder {
			d.WrapV = WrapClampToEdge
		}
	}
	return d
}

func validateImage(d *ImageDesc, f Features) error {
	if d.Width <= 0 || d.Height <= 0 {
		return validationErr("image %q: size %dx%d must be positive", d.Label, d.Width, d.Height)
	}
	if f.MaxImageSize > 0 && (d.Width > f.MaxImageSize || d.Height > f.MaxImageSize) {
		return validationErr("image %q: size %dx%d exceeds max %d", d.Label, d.Width, d.Height, f.MaxImageSize)
	}
	want := d.Width * d.Height * d.PixelFormat.BytesPerPixel()
	if d.Usage == UsageImmutable {
		if len(d.Data) != want {
			return validationErr("image %q: data size %d, want %d", d.Label, len(d.Data), want)
		}
	} else if d.Data != nil {
		return validationErr("image %q: dynamic/stream image must not have initial data", d.Label)
	}
	return nil
}

func shaderDefaults(d ShaderDesc) ShaderDesc {
	if d.VS.Entry == "" {
		d.VS.Entry = "main"
	}
	if d.FS.Entry == "" {
		d.FS.Entry = "main"
	}
	return d
}

func validateShader(d *ShaderDesc) error {
	if len(d.Attrs) > MaxVertexAttributes {
		return validationErr("shader %q: %d attributes exceeds %d", d.Label, len(d.Attrs), MaxVertexAttributes)
	}
	for i, a := range d.Attrs {
		if a.Name == "" {
			return validationErr("shader %q: attribute %d has no name", d.Label, i)
		}
	}
	for _, st := range []struct {
		stage ShaderStage
		desc  *ShaderStageDesc
	}{{ShaderStageVS, &d.VS}, {ShaderStageFS, &d.FS}} {
		if st.desc.Source == "" {
			return validationErr("shader %q: %s source is empty", d.Label, st.stage)
		}
		if len(st.desc.UniformBlocks) > MaxUniformBlocks {
			return validationErr("shader %q: %s has too many uniform blocks", d.Label, st.stage)
		}
		if len(st.desc.Images) > MaxShaderImages {
			return validationErr("shader %q: %s has too many images", d.Label, st.stage)
		}
		for bi, ub := range st.desc.UniformBlocks {
			if len(ub.Uniforms) == 0 || len(ub.Uniforms) > MaxUniforms {
				return validationErr("shader %q: %s block %d needs 1..%d uniforms", d.Label, st.stage, bi, MaxUniforms)
			}
			sum := 0
			for _, u := range ub.Uniforms {
				if u.Name == "" || u.Type == UniformTypeInvalid {
					return validationErr("shader %q: %s block %d has an unnamed or untyped uniform", d.Label, st.stage, bi)
				}
				sum += u.Type.Size() * max(u.ArrayCount, 1)
			}
			if sum != ub.Size {
				return validationErr("shader %q: %s block %d size %d, uniforms add up to %d", d.Label, st.stage, bi, ub.Size, sum)
			}
		}
		for ii, img := range st.desc.Images {
			if img.Name == "" {
				return validationErr("shader %q: %s image %d has no name", d.Label, st.stage, ii)
			}
		}
	}
	return nil
}

// pipelineDefaults fills unset state and computes attribute offsets and
// buffer strides. Offsets are computed per buffer only when every attribute
// of that buffer leaves its offset at zero.
func pipelineDefaults(d PipelineDesc) PipelineDesc {
	if d.PrimitiveType == PrimitiveTypeDefault {
		d.PrimitiveType = PrimitiveTypeTriangles
	}
	if d.IndexType == IndexTypeDefault {
		d.IndexType = IndexTypeNone
	}
	if d.DepthStencil.DepthCompareFunc == CompareFuncDefault {
		d.DepthStencil.DepthCompareFunc = CompareFuncAlways
	}
	for _, s := range []*StencilState{&d.DepthStencil.StencilFront, &d.DepthStencil.StencilBack} {
		if s.Compare == CompareFuncDefault {
			s.Compare = CompareFuncAlways
		}
	}
	b := &d.Blend
	if b.SrcFactorRGB == BlendFactorDefault {
		b.SrcFactorRGB = BlendFactorOne
	}
	if b.DstFactorRGB == BlendFactorDefault {
		b.DstFactorRGB = BlendFactorZero
	}
	if b.OpRGB == BlendOpDefault {
		b.OpRGB = BlendOpAdd
	}
	if b.SrcFactorAlpha == BlendFactorDefault {
		b.SrcFactorAlpha = b.SrcFactorRGB
	}
	if b.DstFactorAlpha == BlendFactorDefault {
		b.DstFactorAlpha = b.DstFactorRGB
	}
	if b.OpAlpha == BlendOpDefault {
		b.OpAlpha = b.OpRGB
	}
	if b.ColorWriteMask == ColorMaskDefault {
		b.ColorWriteMask = ColorMaskRGBA
	}
	r := &d.Rasterizer
	if r.CullMode == CullModeDefault {
		r.CullMode = CullModeNone
	}
	if r.FaceWinding == FaceWindingDefault {
		r.FaceWinding = FaceWindingCW
	}
	if r.SampleCount == 0 {
		r.SampleCount = 1
	}

	var autoOffset [MaxVertexBuffers]bool
	for i := range autoOffset {
		autoOffset[i] = true
	}
	for _, a := range d.Layout.Attrs {
		if a.Format == VertexFormatInvalid {
			break
		}
		if a.BufferIndex >= 0 && a.BufferIndex < MaxVertexBuffers && a.Offset != 0 {
			autoOffset[a.BufferIndex] = false
		}
	}
	var offsets [MaxVertexBuffers]int
	for i := range d.Layout.Attrs {
		a := &d.Layout.Attrs[i]
		if a.Format == VertexFormatInvalid {
			break
		}
		if a.BufferIndex < 0 || a.BufferIndex >= MaxVertexBuffers {
			continue
		}
		if autoOffset[a.BufferIndex] {
			a.Offset = offsets[a.BufferIndex]
		}
		offsets[a.BufferIndex] += a.Format.Size()
	}
	for i := range d.Layout.Buffers {
		l := &d.Layout.Buffers[i]
		if l.Stride == 0 {
			l.Stride = offsets[i]
		}
		if l.StepFunc == VertexStepDefault {
			l.StepFunc = VertexStepPerVertex
		}
		if l.StepRate == 0 {
			l.StepRate = 1
		}
	}
	return d
}

func validatePipeline(d *PipelineDesc, shader *ShaderDesc, f Features) error {
	if shader == nil {
		return fmt.Errorf("pipeline %q: shader %d: %w", d.Label, d.Shader.ID, ErrInvalidHandle)
	}
	if d.Layout.Attrs[0].Format == VertexFormatInvalid {
		return validationErr("pipeline %q: no vertex attributes", d.Label)
	}
	used := 0
	for i, a := range d.Layout.Attrs {
		if a.Format == VertexFormatInvalid {
			for _, rest := range d.Layout.Attrs[i:] {
				if rest.Format != VertexFormatInvalid {
					return validationErr("pipeline %q: vertex attributes must be contiguous", d.Label)
				}
			}
			break
		}
		if a.BufferIndex < 0 || a.BufferIndex >= MaxVertexBuffers {
			return validationErr("pipeline %q: attribute %d buffer index %d out of range", d.Label, i, a.BufferIndex)
		}
		used++
	}
	if len(shader.Attrs) > 0 && used > len(shader.Attrs) {
		return validationErr("pipeline %q: %d attributes but shader %q names %d", d.Label, used, shader.Label, len(shader.Attrs))
	}
	for i, l := range d.Layout.Buffers {
		if l.StepFunc == VertexStepPerInstance && !f.Instancing {
			return fmt.Errorf("pipeline %q: buffer %d steps per instance: %w", d.Label, i, ErrNotSupported)
		}
	}
	if d.Rasterizer.SampleCount > 1 && !f.MSAA {
		return fmt.Errorf("pipeline %q: sample count %d: %w", d.Label, d.Rasterizer.SampleCount, ErrNotSupported)
	}
	return nil
}
