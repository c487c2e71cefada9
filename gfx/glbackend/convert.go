package glbackend

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/samples/gfx"
)

func bufferTarget(t gfx.BufferType) uint32 {
	if t == gfx.BufferTypeIndexBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func bufferUsage(u gfx.Usage) uint32 {
	switch u {
	case gfx.UsageDynamic:
		return gl.DYNAMIC_DRAW
	case gfx.UsageStream:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

func indexType(t gfx.IndexType) uint32 {
	if t == gfx.IndexTypeUint32 {
		return gl.UNSIGNED_INT
	}
	return gl.UNSIGNED_SHORT
}

func primitiveType(p gfx.PrimitiveType) uint32 {
	switch p {
	case gfx.PrimitiveTypePoints:
		return gl.POINTS
	case gfx.PrimitiveTypeLines:
		return gl.LINES
	case gfx.PrimitiveTypeLineStrip:
		return gl.LINE_STRIP
	case gfx.PrimitiveTypeTriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

// vertexFormat returns component count, component type and normalization.
func vertexFormat(f gfx.VertexFormat) (int32, uint32, bool) {
	switch f {
	case gfx.VertexFormatFloat:
		return 1, gl.FLOAT, false
	case gfx.VertexFormatFloat2:
		return 2, gl.FLOAT, false
	case gfx.VertexFormatFloat3:
		return 3, gl.FLOAT, false
	case gfx.VertexFormatFloat4:
		return 4, gl.FLOAT, false
	case gfx.VertexFormatByte4N:
		return 4, gl.BYTE, true
	case gfx.VertexFormatUByte4N:
		return 4, gl.UNSIGNED_BYTE, true
	case gfx.VertexFormatShort2N:
		return 2, gl.SHORT, true
	case gfx.VertexFormatShort4N:
		return 4, gl.SHORT, true
	default:
		return 0, 0, false
	}
}

// pixelFormat returns internal format, format and component type.
func pixelFormat(f gfx.PixelFormat) (int32, uint32, uint32) {
	if f == gfx.PixelFormatR8 {
		return gl.R8, gl.RED, gl.UNSIGNED_BYTE
	}
	return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
}

func filter(f gfx.Filter) int32 {
	if f == gfx.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrap(w gfx.Wrap) int32 {
	switch w {
	case gfx.WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case gfx.WrapClampToBorder:
		return gl.CLAMP_TO_BORDER
	case gfx.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

func borderColor(b gfx.BorderColor) [4]float32 {
	switch b {
	case gfx.BorderColorTransparentBlack:
		return [4]float32{0, 0, 0, 0}
	case gfx.BorderColorOpaqueWhite:
		return [4]float32{1, 1, 1, 1}
	default:
		return [4]float32{0, 0, 0, 1}
	}
}

func compareFunc(f gfx.CompareFunc) uint32 {
	switch f {
	case gfx.CompareFuncNever:
		return gl.NEVER
	case gfx.CompareFuncLess:
		return gl.LESS
	case gfx.CompareFuncEqual:
		return gl.EQUAL
	case gfx.CompareFuncLessEqual:
		return gl.LEQUAL
	case gfx.CompareFuncGreater:
		return gl.GREATER
	case gfx.CompareFuncNotEqual:
		return gl.NOTEQUAL
	case gfx.CompareFuncGreaterEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}

func blendFactor(f gfx.BlendFactor) uint32 {
	switch f {
	case gfx.BlendFactorZero:
		return gl.ZERO
	case gfx.BlendFactorSrcColor:
		return gl.SRC_COLOR
	case gfx.BlendFactorOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case gfx.BlendFactorSrcAlpha:
		return gl.SRC_ALPHA
	case gfx.BlendFactorOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case gfx.BlendFactorDstColor:
		return gl.DST_COLOR
	case gfx.BlendFactorOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case gfx.BlendFactorDstAlpha:
		return gl.DST_ALPHA
	case gfx.BlendFactorOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	default:
		return gl.ONE
	}
}

func blendOp(o gfx.BlendOp) uint32 {
	switch o {
	case gfx.BlendOpSubtract:
		return gl.FUNC_SUBTRACT
	case gfx.BlendOpReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	default:
		return gl.FUNC_ADD
	}
}
