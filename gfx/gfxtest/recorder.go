// Package gfxtest provides a gfx.Backend that records calls instead of
// touching a GPU, for tests of code built on gfx.
package gfxtest

import (
	"errors"
	"slices"

	"github.com/go-theft-auto/samples/gfx"
)

// Op names a recorded backend call.
type Op string

const (
	OpInit            Op = "init"
	OpShutdown        Op = "shutdown"
	OpCreateBuffer    Op = "create_buffer"
	OpDestroyBuffer   Op = "destroy_buffer"
	OpUpdateBuffer    Op = "update_buffer"
	OpCreateImage     Op = "create_image"
	OpDestroyImage    Op = "destroy_image"
	OpCreateShader    Op = "create_shader"
	OpDestroyShader   Op = "destroy_shader"
	OpCreatePipeline  Op = "create_pipeline"
	OpDestroyPipeline Op = "destroy_pipeline"
	OpBeginPass       Op = "begin_pass"
	OpViewport        Op = "viewport"
	OpScissor         Op = "scissor"
	OpApplyPipeline   Op = "apply_pipeline"
	OpApplyBindings   Op = "apply_bindings"
	OpApplyUniforms   Op = "apply_uniforms"
	OpDraw            Op = "draw"
	OpEndPass         Op = "end_pass"
	OpCommit          Op = "commit"
)

// Call is one recorded backend call. Only the fields relevant to Op are set.
type Call struct {
	Op       Op
	ID       uint32
	Action   gfx.PassAction
	Rect     [4]int
	Bindings gfx.Bindings
	Stage    gfx.ShaderStage
	Slot     int
	Data     []byte
	Offset   int
	Base     int
	Count    int
	Inst     int
	Width    int
	Height   int
}

// ErrInjected is returned by creation calls configured to fail.
var ErrInjected = errors.New("gfxtest: injected failure")

var _ gfx.Backend = (*Recorder)(nil)

// Recorder implements gfx.Backend by appending every call to Calls.
type Recorder struct {
	// Caps is reported from Init.
	Caps gfx.Features
	// FailInit, FailShaders and FailImages make the matching calls fail.
	FailInit    bool
	FailShaders bool
	FailImages  bool

	Calls     []Call
	Buffers   map[uint32]gfx.BufferDesc
	Images    map[uint32]gfx.ImageDesc
	Shaders   map[uint32]gfx.ShaderDesc
	Pipelines map[uint32]gfx.PipelineDesc
	Shutdowns int
}

// New returns a recorder reporting desktop GL capabilities.
func New() *Recorder {
	return &Recorder{
		Caps: gfx.Features{
			Instancing:         true,
			ImageClampToBorder: true,
			MSAA:               true,
			MaxImageSize:       4096,
		},
	}
}

func (r *Recorder) add(c Call) { r.Calls = append(r.Calls, c) }

func (r *Recorder) Init(desc *gfx.Desc) (gfx.Features, error) {
	r.add(Call{Op: OpInit})
	if r.FailInit {
		return gfx.Features{}, ErrInjected
	}
	r.Buffers = map[uint32]gfx.BufferDesc{}
	r.Images = map[uint32]gfx.ImageDesc{}
	r.Shaders = map[uint32]gfx.ShaderDesc{}
	r.Pipelines = map[uint32]gfx.PipelineDesc{}
	return r.Caps, nil
}

func (r *Recorder) Shutdown() {
	r.Shutdowns++
	r.add(Call{Op: OpShutdown})
}

func (r *Recorder) CreateBuffer(h gfx.Buffer, desc *gfx.BufferDesc) error {
	r.add(Call{Op: OpCreateBuffer, ID: h.ID, Data: slices.Clone(desc.Data)})
	r.Buffers[h.ID] = *desc
	return nil
}

func (r *Recorder) DestroyBuffer(h gfx.Buffer) {
	r.add(Call{Op: OpDestroyBuffer, ID: h.ID})
	delete(r.Buffers, h.ID)
}

func (r *Recorder) UpdateBuffer(h gfx.Buffer, offset int, data []byte) {
	r.add(Call{Op: OpUpdateBuffer, ID: h.ID, Offset: offset, Data: slices.Clone(data)})
}

func (r *Recorder) CreateImage(h gfx.Image, desc *gfx.ImageDesc) error {
	r.add(Call{Op: OpCreateImage, ID: h.ID, Data: slices.Clone(desc.Data)})
	if r.FailImages {
		return ErrInjected
	}
	r.Images[h.ID] = *desc
	return nil
}

func (r *Recorder) DestroyImage(h gfx.Image) {
	r.add(Call{Op: OpDestroyImage, ID: h.ID})
	delete(r.Images, h.ID)
}

func (r *Recorder) CreateShader(h gfx.Shader, desc *gfx.ShaderDesc) error {
	r.add(Call{Op: OpCreateShader, ID: h.ID})
	if r.FailShaders {
		return ErrInjected
	}
	r.Shaders[h.ID] = *desc
	return nil
}

func (r *Recorder) DestroyShader(h gfx.Shader) {
	r.add(Call{Op: OpDestroyShader, ID: h.ID})
	delete(r.Shaders, h.ID)
}

func (r *Recorder) CreatePipeline(h gfx.Pipeline, desc *gfx.PipelineDesc) error {
	r.add(Call{Op: OpCreatePipeline, ID: h.ID})
	r.Pipelines[h.ID] = *desc
	return nil
}

func (r *Recorder) DestroyPipeline(h gfx.Pipeline) {
	r.add(Call{Op: OpDestroyPipeline, ID: h.ID})
	delete(r.Pipelines, h.ID)
}

func (r *Recorder) BeginPass(action *gfx.PassAction, width, height int) {
	r.add(Call{Op: OpBeginPass, Action: *action, Width: width, Height: height})
}

func (r *Recorder) ApplyViewport(x, y, width, height int, originTopLeft bool) {
	r.add(Call{Op: OpViewport, Rect: [4]int{x, y, width, height}})
}

func (r *Recorder) ApplyScissorRect(x, y, width, height int, originTopLeft bool) {
	r.add(Call{Op: OpScissor, Rect: [4]int{x, y, width, height}})
}

func (r *Recorder) ApplyPipeline(h gfx.Pipeline) {
	r.add(Call{Op: OpApplyPipeline, ID: h.ID})
}

func (r *Recorder) ApplyBindings(b *gfx.Bindings) {
	r.add(Call{Op: OpApplyBindings, Bindings: *b})
}

func (r *Recorder) ApplyUniforms(stage gfx.ShaderStage, slot int, data []byte) {
	r.add(Call{Op: OpApplyUniforms, Stage: stage, Slot: slot, Data: slices.Clone(data)})
}

func (r *Recorder) Draw(base, count, instances int) {
	r.add(Call{Op: OpDraw, Base: base, Count: count, Inst: instances})
}

func (r *Recorder) EndPass() { r.add(Call{Op: OpEndPass}) }

func (r *Recorder) Commit() { r.add(Call{Op: OpCommit}) }

// Ops returns the op sequence of all recorded calls.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Filter returns the recorded calls with the given op.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// LastFrame returns the calls after the second to last commit, up to and
// including the last one.
func (r *Recorder) LastFrame() []Call {
	last := -1
	prev := -1
	for i, c := range r.Calls {
		if c.Op == OpCommit {
			prev, last = last, i
		}
	}
	if last < 0 {
		return nil
	}
	return r.Calls[prev+1 : last+1]
}

// Reset drops the recorded calls but keeps live resource descriptors.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
