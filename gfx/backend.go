package gfx

import "errors"

// Sentinel errors. Callers match them with errors.Is.
var (
	ErrInvalidHandle = errors.New("gfx: invalid handle")
	ErrPoolExhausted = errors.New("gfx: pool exhausted")
	ErrValidation    = errors.New("gfx: validation failed")
	ErrPassOrder     = errors.New("gfx: call out of pass order")
	ErrNotSupported  = errors.New("gfx: feature not supported")
	ErrNotValid      = errors.New("gfx: context not valid")
)

// Backend is the device layer below Context. Context validates every call
// and fills descriptor defaults before it reaches the backend, so
// implementations can trust their arguments.
type Backend interface {
	// Init prepares the device and reports its capabilities.
	Init(desc *Desc) (Features, error)
	Shutdown()

	CreateBuffer(h Buffer, desc *BufferDesc) error
	DestroyBuffer(h Buffer)
	UpdateBuffer(h Buffer, offset int, data []byte)

	CreateImage(h Image, desc *ImageDesc) error
	DestroyImage(h Image)

	CreateShader(h Shader, desc *ShaderDesc) error
	DestroyShader(h Shader)

	CreatePipeline(h Pipeline, desc *PipelineDesc) error
	DestroyPipeline(h Pipeline)

	BeginPass(action *PassAction, width, height int)
	ApplyViewport(x, y, width, height int, originTopLeft bool)
	ApplyScissorRect(x, y, width, height int, originTopLeft bool)
	ApplyPipeline(h Pipeline)
	ApplyBindings(b *Bindings)
	ApplyUniforms(stage ShaderStage, slot int, data []byte)
	Draw(baseElement, numElements, numInstances int)
	EndPass()
	Commit()
}
