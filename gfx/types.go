package gfx

// Limits of the binding model.
const (
	MaxVertexAttributes     = 16
	MaxVertexBuffers        = 4
	MaxShaderImages         = 8
	MaxUniformBlocks        = 4
	MaxUniforms             = 16
	MaxColorAttachments     = 4
	DefaultBufferPoolSize   = 128
	DefaultImagePoolSize    = 128
	DefaultShaderPoolSize   = 32
	DefaultPipelinePoolSize = 64
)

// Color is an RGBA color with float components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ResourceState is the lifecycle state of a pooled resource.
type ResourceState int

const (
	ResourceStateInvalid ResourceState = iota
	ResourceStateAlloc
	ResourceStateValid
	ResourceStateFailed
)

func (s ResourceState) String() string {
	switch s {
	case ResourceStateAlloc:
		return "alloc"
	case ResourceStateValid:
		return "valid"
	case ResourceStateFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// BufferType selects what a buffer is bound as.
type BufferType int

const (
	BufferTypeDefault BufferType = iota // VertexBuffer
	BufferTypeVertexBuffer
	BufferTypeIndexBuffer
)

func (t BufferType) String() string {
	switch t {
	case BufferTypeIndexBuffer:
		return "index"
	default:
		return "vertex"
	}
}

// Usage describes how often buffer or image content is updated.
type Usage int

const (
	UsageDefault Usage = iota // Immutable
	UsageImmutable
	UsageDynamic
	UsageStream
)

func (u Usage) String() string {
	switch u {
	case UsageDynamic:
		return "dynamic"
	case UsageStream:
		return "stream"
	default:
		return "immutable"
	}
}

// IndexType is the element type of an index buffer.
type IndexType int

const (
	IndexTypeDefault IndexType = iota // None
	IndexTypeNone
	IndexTypeUint16
	IndexTypeUint32
)

// Size returns the size of one index in bytes.
func (t IndexType) Size() int {
	switch t {
	case IndexTypeUint16:
		return 2
	case IndexTypeUint32:
		return 4
	default:
		return 0
	}
}

func (t IndexType) String() string {
	switch t {
	case IndexTypeUint16:
		return "uint16"
	case IndexTypeUint32:
		return "uint32"
	default:
		return "none"
	}
}

// PrimitiveType is the topology used by Draw.
type PrimitiveType int

const (
	PrimitiveTypeDefault PrimitiveType = iota // Triangles
	PrimitiveTypePoints
	PrimitiveTypeLines
	PrimitiveTypeLineStrip
	PrimitiveTypeTriangles
	PrimitiveTypeTriangleStrip
)

// VertexFormat describes a single vertex attribute.
type VertexFormat int

const (
	VertexFormatInvalid VertexFormat = iota
	VertexFormatFloat
	VertexFormatFloat2
	VertexFormatFloat3
	VertexFormatFloat4
	VertexFormatByte4N
	VertexFormatUByte4N
	VertexFormatShort2N
	VertexFormatShort4N
)

// Size returns the size of the format in bytes.
func (f VertexFormat) Size() int {
	switch f {
	case VertexFormatFloat:
		return 4
	case VertexFormatFloat2:
		return 8
	case VertexFormatFloat3:
		return 12
	case VertexFormatFloat4:
		return 16
	case VertexFormatByte4N, VertexFormatUByte4N, VertexFormatShort2N:
		return 4
	case VertexFormatShort4N:
		return 8
	default:
		return 0
	}
}

func (f VertexFormat) String() string {
	switch f {
	case VertexFormatFloat:
		return "float"
	case VertexFormatFloat2:
		return "float2"
	case VertexFormatFloat3:
		return "float3"
	case VertexFormatFloat4:
		return "float4"
	case VertexFormatByte4N:
		return "byte4n"
	case VertexFormatUByte4N:
		return "ubyte4n"
	case VertexFormatShort2N:
		return "short2n"
	case VertexFormatShort4N:
		return "short4n"
	default:
		return "invalid"
	}
}

// VertexStep selects per-vertex or per-instance attribute fetching.
type VertexStep int

const (
	VertexStepDefault VertexStep = iota // PerVertex
	VertexStepPerVertex
	VertexStepPerInstance
)

// UniformType is the type of a single uniform inside a uniform block.
type UniformType int

const (
	UniformTypeInvalid UniformType = iota
	UniformTypeFloat
	UniformTypeFloat2
	UniformTypeFloat3
	UniformTypeFloat4
	UniformTypeMat4
)

// Size returns the size of the uniform type in bytes.
func (t UniformType) Size() int {
	switch t {
	case UniformTypeFloat:
		return 4
	case UniformTypeFloat2:
		return 8
	case UniformTypeFloat3:
		return 12
	case UniformTypeFloat4:
		return 16
	case UniformTypeMat4:
		return 64
	default:
		return 0
	}
}

func (t UniformType) String() string {
	switch t {
	case UniformTypeFloat:
		return "float"
	case UniformTypeFloat2:
		return "float2"
	case UniformTypeFloat3:
		return "float3"
	case UniformTypeFloat4:
		return "float4"
	case UniformTypeMat4:
		return "mat4"
	default:
		return "invalid"
	}
}

// ShaderStage identifies the vertex or fragment stage.
type ShaderStage int

const (
	ShaderStageVS ShaderStage = iota
	ShaderStageFS
)

func (s ShaderStage) String() string {
	if s == ShaderStageFS {
		return "fs"
	}
	return "vs"
}

// PixelFormat is the texel format of an image.
type PixelFormat int

const (
	PixelFormatDefault PixelFormat = iota // RGBA8
	PixelFormatRGBA8
	PixelFormatR8
)

// BytesPerPixel returns the texel size in bytes.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatR8:
		return 1
	default:
		return 4
	}
}

func (f PixelFormat) String() string {
	if f == PixelFormatR8 {
		return "r8"
	}
	return "rgba8"
}

// Filter is a texture sampling filter.
type Filter int

const (
	FilterDefault Filter = iota // Nearest
	FilterNearest
	FilterLinear
)

func (f Filter) String() string {
	if f == FilterLinear {
		return "linear"
	}
	return "nearest"
}

// Wrap is a texture coordinate wrap mode.
type Wrap int

const (
	WrapDefault Wrap = iota // Repeat
	WrapRepeat
	WrapClampToEdge
	WrapClampToBorder
	WrapMirroredRepeat
)

func (w Wrap) String() string {
	switch w {
	case WrapClampToEdge:
		return "clamp_to_edge"
	case WrapClampToBorder:
		return "clamp_to_border"
	case WrapMirroredRepeat:
		return "mirrored_repeat"
	default:
		return "repeat"
	}
}

// BorderColor is the color sampled outside the image with WrapClampToBorder.
type BorderColor int

const (
	BorderColorDefault BorderColor = iota // OpaqueBlack
	BorderColorTransparentBlack
	BorderColorOpaqueBlack
	BorderColorOpaqueWhite
)

// CompareFunc is a depth or stencil comparison function.
type CompareFunc int

const (
	CompareFuncDefault CompareFunc = iota // Always
	CompareFuncNever
	CompareFuncLess
	CompareFuncEqual
	CompareFuncLessEqual
	CompareFuncGreater
	CompareFuncNotEqual
	CompareFuncGreaterEqual
	CompareFuncAlways
)

func (f CompareFunc) String() string {
	switch f {
	case CompareFuncNever:
		return "never"
	case CompareFuncLess:
		return "less"
	case CompareFuncEqual:
		return "equal"
	case CompareFuncLessEqual:
		return "less_equal"
	case CompareFuncGreater:
		return "greater"
	case CompareFuncNotEqual:
		return "not_equal"
	case CompareFuncGreaterEqual:
		return "greater_equal"
	default:
		return "always"
	}
}

// CullMode selects which triangle faces are discarded.
type CullMode int

const (
	CullModeDefault CullMode = iota // None
	CullModeNone
	CullModeFront
	CullModeBack
)

func (m CullMode) String() string {
	switch m {
	case CullModeFront:
		return "front"
	case CullModeBack:
		return "back"
	default:
		return "none"
	}
}

// FaceWinding selects the winding order of front faces.
type FaceWinding int

const (
	FaceWindingDefault FaceWinding = iota // CW
	FaceWindingCCW
	FaceWindingCW
)

// BlendFactor is a blend equation source or destination factor.
type BlendFactor int

const (
	BlendFactorDefault BlendFactor = iota
	BlendFactorZero
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// BlendOp is a blend equation operator.
type BlendOp int

const (
	BlendOpDefault BlendOp = iota // Add
	BlendOpAdd
	BlendOpSubtract
	BlendOpReverseSubtract
)

// ColorMask selects which color channels are written.
type ColorMask int

const (
	ColorMaskDefault ColorMask = 0 // RGBA
	ColorMaskR       ColorMask = 1 << 0
	ColorMaskG       ColorMask = 1 << 1
	ColorMaskB       ColorMask = 1 << 2
	ColorMaskA       ColorMask = 1 << 3
	ColorMaskNone    ColorMask = 1 << 4
	ColorMaskRGB               = ColorMaskR | ColorMaskG | ColorMaskB
	ColorMaskRGBA              = ColorMaskRGB | ColorMaskA
)

// Action is a render pass load action.
type Action int

const (
	ActionDefault Action = iota // Clear
	ActionClear
	ActionLoad
	ActionDontCare
)

// DefaultClearColor is used when a color attachment action has no value.
var DefaultClearColor = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}

// BufferDesc describes a vertex or index buffer.
// Size defaults to len(Data). Immutable buffers require Data.
type BufferDesc struct {
	Size  int
	Type  BufferType
	Usage Usage
	Data  []byte
	Label string
}

// ImageDesc describes a 2D texture.
type ImageDesc struct {
	Width       int
	Height      int
	PixelFormat PixelFormat
	Usage       Usage
	MinFilter   Filter
	MagFilter   Filter
	WrapU       Wrap
	WrapV       Wrap
	BorderColor BorderColor
	Data        []byte
	Label       string
}

// ShaderUniformDesc describes one uniform inside a uniform block.
type ShaderUniformDesc struct {
	Name       string
	Type       UniformType
	ArrayCount int
}

// ShaderUniformBlockDesc describes a block of uniforms updated with ApplyUniforms.
// Size must match the sum of the uniform sizes.
type ShaderUniformBlockDesc struct {
	Size     int
	Uniforms []ShaderUniformDesc
}

// ShaderImageDesc describes a sampled image slot.
type ShaderImageDesc struct {
	Name string
}

// ShaderStageDesc describes one shader stage.
type ShaderStageDesc struct {
	Source        string
	Entry         string
	UniformBlocks []ShaderUniformBlockDesc
	Images        []ShaderImageDesc
}

// ShaderAttrDesc names a vertex attribute; the slice index is its location.
type ShaderAttrDesc struct {
	Name string
}

// ShaderDesc describes a shader program.
type ShaderDesc struct {
	Attrs []ShaderAttrDesc
	VS    ShaderStageDesc
	FS    ShaderStageDesc
	Label string
}

// BufferLayoutDesc describes the stride and step function of a vertex buffer slot.
// Stride is computed from the attribute formats when zero.
type BufferLayoutDesc struct {
	Stride   int
	StepFunc VertexStep
	StepRate int
}

// VertexAttrDesc describes a vertex attribute. Offset is computed when zero.
type VertexAttrDesc struct {
	BufferIndex int
	Offset      int
	Format      VertexFormat
}

// LayoutDesc describes the vertex input layout of a pipeline.
type LayoutDesc struct {
	Buffers [MaxVertexBuffers]BufferLayoutDesc
	Attrs   [MaxVertexAttributes]VertexAttrDesc
}

// StencilState describes the stencil operations for one face.
type StencilState struct {
	Compare CompareFunc
}

// DepthStencilState describes the depth and stencil test.
type DepthStencilState struct {
	DepthCompareFunc  CompareFunc
	DepthWriteEnabled bool
	StencilEnabled    bool
	StencilFront      StencilState
	StencilBack       StencilState
	StencilReadMask   uint8
	StencilWriteMask  uint8
	StencilRef        uint8
}

// BlendState describes alpha blending.
type BlendState struct {
	Enabled        bool
	SrcFactorRGB   BlendFactor
	DstFactorRGB   BlendFactor
	OpRGB          BlendOp
	SrcFactorAlpha BlendFactor
	DstFactorAlpha BlendFactor
	OpAlpha        BlendOp
	ColorWriteMask ColorMask
	BlendColor     Color
}

// RasterizerState describes culling, winding and multisampling.
type RasterizerState struct {
	CullMode    CullMode
	FaceWinding FaceWinding
	SampleCount int
	DepthBias   float32
}

// PipelineDesc describes an immutable pipeline state object.
type PipelineDesc struct {
	Layout        LayoutDesc
	Shader        Shader
	PrimitiveType PrimitiveType
	IndexType     IndexType
	DepthStencil  DepthStencilState
	Blend         BlendState
	Rasterizer    RasterizerState
	Label         string
}

// ColorAttachmentAction is the load action of one color attachment.
type ColorAttachmentAction struct {
	Action Action
	Value  Color
}

// DepthAttachmentAction is the load action of the depth buffer.
type DepthAttachmentAction struct {
	Action Action
	Value  float32
}

// StencilAttachmentAction is the load action of the stencil buffer.
type StencilAttachmentAction struct {
	Action Action
	Value  uint8
}

// PassAction describes how attachments are initialized at the start of a pass.
type PassAction struct {
	Colors  [MaxColorAttachments]ColorAttachmentAction
	Depth   DepthAttachmentAction
	Stencil StencilAttachmentAction
}

// Bindings are the resources applied before a draw.
type Bindings struct {
	VertexBuffers       [MaxVertexBuffers]Buffer
	VertexBufferOffsets [MaxVertexBuffers]int
	IndexBuffer         Buffer
	IndexBufferOffset   int
	VSImages            [MaxShaderImages]Image
	FSImages            [MaxShaderImages]Image
}

// Features are capabilities reported by the backend.
type Features struct {
	Instancing         bool
	ImageClampToBorder bool
	MSAA               bool
	GLES2              bool
	MaxImageSize       int
}

// FrameStats counts the work submitted in one frame.
type FrameStats struct {
	Frame          uint64
	Passes         int
	Pipelines      int
	Bindings       int
	Uniforms       int
	UniformBytes   int
	Draws          int
	Elements       int
	BufferUpdates  int
	BufferAppends  int
	ValidationErrs int
}
