package ui

// Option configures a widget.
type Option func(*options)

type options struct {
	values map[string]any
}

// OptKey is a typed widget option key with a default value.
//
//	var OptGlow = ui.NewOptKey("glow", false)
//	ctx.Button("Go", ui.WithOpt(OptGlow, true))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// WithOpt sets an option through a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// GetOpt returns the option value, or the key default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o.values[key.name]; ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return key.def
}

// HasOpt reports whether the option was set explicitly.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.values[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Built-in widget options.
var (
	OptID          = NewOptKey("id", "")
	OptDisabled    = NewOptKey("disabled", false)
	OptWidth       = NewOptKey[float32]("width", 0)
	OptHeight      = NewOptKey[float32]("height", 0)
	OptFormat      = NewOptKey("format", "")
	OptStep        = NewOptKey[float32]("step", 0)
	OptDefaultOpen = NewOptKey("defaultOpen", false)
	OptOverlay     = NewOptKey("overlay", "")
	OptScaleMin    = NewOptKey[float32]("scaleMin", 0)
	OptScaleMax    = NewOptKey[float32]("scaleMax", 0)
)

// WithID sets an explicit ID instead of hashing the label.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled grays out the widget and ignores input.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets the widget width in pixels.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets the widget height in pixels.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithFormat sets the fmt verb used for the displayed value.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep snaps slider values to multiples of step above the minimum.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// DefaultOpen makes collapsing headers start expanded.
func DefaultOpen() Option { return WithOpt(OptDefaultOpen, true) }

// WithOverlay sets text drawn on top of plots and progress bars.
func WithOverlay(text string) Option { return WithOpt(OptOverlay, text) }

// WithScale fixes the value range of plots instead of fitting the data.
func WithScale(minVal, maxVal float32) Option {
	return func(o *options) {
		WithOpt(OptScaleMin, minVal)(o)
		WithOpt(OptScaleMax, maxVal)(o)
	}
}

// Cond controls when a window position or size option applies.
type Cond int

const (
	// CondAlways applies the value every frame.
	CondAlways Cond = iota
	// CondOnce applies the value the first time it is passed.
	CondOnce
	// CondFirstUseEver applies the value only when the window is created.
	CondFirstUseEver
)

// WindowOption configures a window in Begin.
type WindowOption func(*windowOptions)

type windowOptions struct {
	pos, size         Vec2
	posCond, sizeCond Cond
	hasPos, hasSize   bool
	noTitleBar        bool
	noMove            bool
	noCollapse        bool
	autoResize        bool
}

// WithPos places the window at (x, y).
func WithPos(x, y float32, cond Cond) WindowOption {
	return func(o *windowOptions) {
		o.pos, o.posCond, o.hasPos = Vec2{x, y}, cond, true
	}
}

// WithSize sets the window size.
func WithSize(w, h float32, cond Cond) WindowOption {
	return func(o *windowOptions) {
		o.size, o.sizeCond, o.hasSize = Vec2{w, h}, cond, true
	}
}

// WithNoTitleBar hides the title bar.
func WithNoTitleBar() WindowOption { return func(o *windowOptions) { o.noTitleBar = true } }

// WithNoMove disables dragging by the title bar.
func WithNoMove() WindowOption { return func(o *windowOptions) { o.noMove = true } }

// WithNoCollapse hides the collapse arrow.
func WithNoCollapse() WindowOption { return func(o *windowOptions) { o.noCollapse = true } }

// WithAutoResize fits the window to its content every frame.
func WithAutoResize() WindowOption { return func(o *windowOptions) { o.autoResize = true } }
