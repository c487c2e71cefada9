package ui

// DebugWindowName is the title of the implicit window that receives
// widgets submitted outside any Begin/End pair.
const DebugWindowName = "Debug"

// Renderer draws finished draw lists.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// UI manages the immediate-mode interface across frames.
type UI struct {
	renderer   Renderer
	stateStore StateStore
	style      Style
	font       *Font
	ctx        *Context
	input      *InputState
	lists      []*DrawList
}

// UIOption configures a UI.
type UIOption func(*UI)

// WithStyle sets the style.
func WithStyle(style Style) UIOption {
	return func(u *UI) { u.style = style }
}

// WithStateStore sets a custom state store.
func WithStateStore(store StateStore) UIOption {
	return func(u *UI) { u.stateStore = store }
}

// WithFont uses an existing font atlas, typically the one the renderer
// uploaded.
func WithFont(f *Font) UIOption {
	return func(u *UI) { u.font = f }
}

// New creates a UI drawing through renderer.
func New(renderer Renderer, opts ...UIOption) *UI {
	u := &UI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.font == nil {
		u.font = NewFont()
	}
	u.ctx = newContext(u.font, u.style, u.stateStore)
	return u
}

// Begin starts a frame and returns the context widgets are called on.
// The implicit Debug window is open until End. A nil input behaves as
// an idle mouse and keyboard.
func (u *UI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	if input == nil {
		if u.input == nil {
			u.input = NewInputState()
		}
		input = u.input
	}
	ctx := u.ctx
	ctx.FontTextureID = u.renderer.FontTextureID()
	ctx.beginFrame(input, displaySize, deltaTime)
	ctx.Begin(DebugWindowName, nil,
		WithPos(60, 60, CondFirstUseEver),
		WithSize(400, 400, CondFirstUseEver))
	ctx.current.implicit = true
	return ctx
}

// End closes open windows, renders all draw lists in z-order and clears
// the per-frame input edges. Rendering stops at the first error.
func (u *UI) End() error {
	ctx := u.ctx
	if ctx.ForegroundDrawList == nil {
		return nil
	}
	for len(ctx.stack) > 0 {
		if w := ctx.stack[len(ctx.stack)-1]; !w.implicit {
			uiLogger.Warn("window not ended", "name", w.Name, "frame", ctx.FrameCount)
		}
		ctx.End()
	}
	if ctx.activeID != 0 && !ctx.activeIDAlive {
		ctx.activeID = 0
	}
	if m := ctx.moving; m != nil && (m.lastFrame != ctx.FrameCount || !ctx.Input.MouseDown(MouseButtonLeft)) {
		ctx.moving = nil
	}
	ctx.drawTooltip()

	u.lists = ctx.collectDrawLists(u.lists[:0])
	var err error
	for _, dl := range u.lists {
		if err == nil {
			dl.Finalize()
			if !dl.Empty() {
				err = u.renderer.Render(dl)
			}
		}
		ReleaseDrawList(dl)
	}
	clear(u.lists)
	u.lists = u.lists[:0]
	ctx.Input.Reset()
	return err
}

// Context returns the context of the current frame.
func (u *UI) Context() *Context { return u.ctx }

// Font returns the font atlas.
func (u *UI) Font() *Font { return u.font }

// Style returns the base style.
func (u *UI) Style() Style { return u.style }

// SetStyle replaces the base style from the next frame on.
func (u *UI) SetStyle(style Style) {
	u.style = style
	u.ctx.style = style
	u.ctx.styleStack = u.ctx.styleStack[:0]
}

// Resize forwards a framebuffer size change to the renderer.
func (u *UI) Resize(width, height int) {
	u.renderer.Resize(width, height)
}
