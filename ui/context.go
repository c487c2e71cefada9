package ui

import "github.com/chewxy/math32"

const framerateSamples = 60

// Context holds all state of one UI frame. It is not a context.Context.
type Context struct {
	// DrawList is the target of the current window.
	DrawList *DrawList
	// ForegroundDrawList is drawn after every window and menu.
	ForegroundDrawList *DrawList

	Input       *InputState
	DisplaySize Vec2
	DeltaTime   float32
	FrameCount  uint64

	// FontTextureID is the renderer's handle of the font atlas.
	FontTextureID uint32

	// Capture flags tell the application whether the UI consumes input.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	font       *Font
	style      Style
	styleStack []Style
	stateStore StateStore
	idStack    []ID

	windows  map[ID]*window
	order    []*window // back to front
	overlays []*window // menu bar and popups in submission order
	stack    []*window
	current  *window
	hovered  *window
	moving   *window

	activeID      ID
	activeIDAlive bool

	openMenu ID
	tooltip  string

	textMeasureCache map[string]Vec2

	frameTimes     [framerateSamples]float32
	frameTimeIdx   int
	frameTimeCount int
	frameTimeSum   float32
}

func newContext(font *Font, style Style, store StateStore) *Context {
	return &Context{
		font:             font,
		style:            style,
		stateStore:       store,
		windows:          make(map[ID]*window),
		textMeasureCache: make(map[string]Vec2),
	}
}

// beginFrame resets per-frame state and resolves which window the mouse
// is over, using the rectangles of the previous frame.
func (ctx *Context) beginFrame(input *InputState, displaySize Vec2, dt float32) {
	ctx.FrameCount++
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = dt
	ctx.ForegroundDrawList = ctx.acquireDrawList()
	ctx.DrawList = nil
	ctx.stack = ctx.stack[:0]
	ctx.current = nil
	ctx.activeIDAlive = false
	ctx.tooltip = ""
	if len(ctx.styleStack) > 0 {
		uiLogger.Warn("style stack not empty at frame start", "depth", len(ctx.styleStack))
		ctx.style = ctx.styleStack[0]
		ctx.styleStack = ctx.styleStack[:0]
	}
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:0]
	}
	clear(ctx.textMeasureCache)
	ctx.pushFrameTime(dt)
	input.UpdateKeyRepeat(dt)

	ctx.updateHovered()
	ctx.overlays = ctx.overlays[:0]

	if input.MouseClicked(MouseButtonLeft) {
		if ctx.hovered != nil && !ctx.hovered.isOverlay() {
			ctx.bringToFront(ctx.hovered)
		}
		if ctx.openMenu != 0 && (ctx.hovered == nil || !ctx.hovered.isOverlay()) {
			ctx.openMenu = 0
		}
	}
	if input.KeyPressed(KeyEscape) {
		ctx.openMenu = 0
	}

	ctx.WantCaptureMouse = ctx.hovered != nil || ctx.activeID != 0 || ctx.moving != nil
	ctx.WantCaptureKeyboard = ctx.activeID != 0 || ctx.openMenu != 0
}

func (ctx *Context) updateHovered() {
	ctx.hovered = nil
	in := ctx.Input
	if in == nil || !in.MouseInWindow {
		return
	}
	m := Vec2{in.MouseX, in.MouseY}
	for i := len(ctx.overlays) - 1; i >= 0; i-- {
		if w := ctx.overlays[i]; w.visible && w.rect().Contains(m) {
			ctx.hovered = w
			return
		}
	}
	for i := len(ctx.order) - 1; i >= 0; i-- {
		if w := ctx.order[i]; w.visible && w.rect().Contains(m) {
			ctx.hovered = w
			return
		}
	}
}

func (ctx *Context) bringToFront(w *window) {
	for i, o := range ctx.order {
		if o == w {
			copy(ctx.order[i:], ctx.order[i+1:])
			ctx.order[len(ctx.order)-1] = w
			return
		}
	}
}

func (ctx *Context) acquireDrawList() *DrawList {
	dl := AcquireDrawList()
	dl.WhiteUV = ctx.font.WhiteUV()
	return dl
}

func (ctx *Context) pushFrameTime(dt float32) {
	if dt <= 0 {
		return
	}
	if ctx.frameTimeCount == framerateSamples {
		ctx.frameTimeSum -= ctx.frameTimes[ctx.frameTimeIdx]
	} else {
		ctx.frameTimeCount++
	}
	ctx.frameTimes[ctx.frameTimeIdx] = dt
	ctx.frameTimeSum += dt
	ctx.frameTimeIdx = (ctx.frameTimeIdx + 1) % framerateSamples
}

// Framerate returns frames per second averaged over the last 60 frames.
func (ctx *Context) Framerate() float32 {
	if ctx.frameTimeSum <= 0 {
		return 0
	}
	return float32(ctx.frameTimeCount) / ctx.frameTimeSum
}

// Font returns the font atlas.
func (ctx *Context) Font() *Font { return ctx.font }

// MeasureText returns the size of a single line of text.
func (ctx *Context) MeasureText(text string) Vec2 {
	if s, ok := ctx.textMeasureCache[text]; ok {
		return s
	}
	s := ctx.font.Measure(text)
	ctx.textMeasureCache[text] = s
	return s
}

// LineHeight returns the height of a line of text.
func (ctx *Context) LineHeight() float32 { return ctx.font.LineHeight }

// FrameHeight returns the height of framed widgets such as buttons.
func (ctx *Context) FrameHeight() float32 {
	return ctx.font.LineHeight + 2*ctx.style.FramePadding.Y
}

// IsAnyItemActive reports whether a widget holds the mouse.
func (ctx *Context) IsAnyItemActive() bool { return ctx.activeID != 0 }

// SetTooltip shows text next to the mouse cursor for this frame.
func (ctx *Context) SetTooltip(text string) { ctx.tooltip = text }

func (ctx *Context) drawTooltip() {
	if ctx.tooltip == "" || ctx.Input == nil {
		return
	}
	pad := ctx.style.WindowPadding.Mul(0.5)
	size := ctx.MeasureText(ctx.tooltip).Add(pad.Mul(2))
	x := ctx.Input.MouseX + 16
	y := ctx.Input.MouseY + 8
	if x+size.X > ctx.DisplaySize.X {
		x = math32.Max(0, ctx.DisplaySize.X-size.X)
	}
	if y+size.Y > ctx.DisplaySize.Y {
		y = math32.Max(0, ctx.DisplaySize.Y-size.Y)
	}
	dl := ctx.ForegroundDrawList
	dl.AddRect(x, y, size.X, size.Y, ctx.style.PopupBgColor)
	dl.AddRectOutline(x, y, size.X, size.Y, ctx.style.BorderColor, ctx.style.BorderSize)
	dl.AddText(ctx.font, x+pad.X, y+pad.Y, ctx.tooltip, ctx.style.TextColor)
}

// layout is the cursor of a window's content region.
type layout struct {
	start      Vec2
	cursor     Vec2
	indent     float32
	lineY      float32
	lineH      float32
	lineEndX   float32
	max        Vec2
	last       Rect
	sameLine   bool
	horizontal bool
}

func (l *layout) reset(start Vec2) {
	*l = layout{start: start, cursor: start, max: start, horizontal: l.horizontal}
}

// place reserves size at the cursor and moves the cursor to the next line,
// or along the line for horizontal layouts.
func (l *layout) place(size, spacing Vec2) Rect {
	pos := l.cursor
	h := size.Y
	if l.sameLine {
		pos = Vec2{l.lineEndX + spacing.X, l.lineY}
		h = math32.Max(h, l.lineH)
	}
	r := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	l.lineY, l.lineH, l.lineEndX = pos.Y, h, pos.X+size.X
	l.cursor = Vec2{l.start.X + l.indent, pos.Y + h + spacing.Y}
	l.max.X = math32.Max(l.max.X, pos.X+size.X)
	l.max.Y = math32.Max(l.max.Y, pos.Y+h)
	l.last = r
	l.sameLine = l.horizontal
	return r
}

// addItem reserves size in the current window.
func (ctx *Context) addItem(size Vec2) Rect {
	w := ctx.current
	return w.layout.place(size, ctx.style.ItemSpacing)
}

// ItemPos returns where the next widget will be placed.
func (ctx *Context) ItemPos() Vec2 {
	if ctx.current == nil {
		return Vec2{}
	}
	l := &ctx.current.layout
	if l.sameLine {
		return Vec2{l.lineEndX + ctx.style.ItemSpacing.X, l.lineY}
	}
	return l.cursor
}

// LastItemRect returns the rectangle of the previous widget.
func (ctx *Context) LastItemRect() Rect {
	if ctx.current == nil {
		return Rect{}
	}
	return ctx.current.layout.last
}

// SameLine places the next widget to the right of the previous one.
func (ctx *Context) SameLine() {
	if ctx.current != nil {
		ctx.current.layout.sameLine = true
	}
}

// Dummy reserves empty space.
func (ctx *Context) Dummy(size Vec2) {
	if ctx.skipItems() {
		return
	}
	ctx.addItem(size)
}

// Spacing adds vertical space between widgets.
func (ctx *Context) Spacing() {
	ctx.Dummy(Vec2{0, ctx.style.ItemSpacing.Y})
}

// Indent shifts following widgets to the right.
func (ctx *Context) Indent() {
	if ctx.current == nil {
		return
	}
	l := &ctx.current.layout
	l.indent += ctx.style.IndentSpacing
	l.cursor.X = l.start.X + l.indent
}

// Unindent reverts one Indent.
func (ctx *Context) Unindent() {
	if ctx.current == nil {
		return
	}
	l := &ctx.current.layout
	l.indent = math32.Max(0, l.indent-ctx.style.IndentSpacing)
	l.cursor.X = l.start.X + l.indent
}

// ContentWidth returns the width available to widgets in the window.
func (ctx *Context) ContentWidth() float32 {
	if ctx.current == nil {
		return ctx.DisplaySize.X
	}
	w := ctx.current
	return math32.Max(0, w.Size.X-2*ctx.style.WindowPadding.X-w.layout.indent)
}

// itemWidth is the frame width of sliders and plots.
func (ctx *Context) itemWidth(o options) float32 {
	if HasOpt(o, OptWidth) {
		return GetOpt(o, OptWidth)
	}
	return math32.Max(100, math32.Floor(ctx.ContentWidth()*0.65))
}

// skipItems reports whether widgets should not be submitted, such as
// inside a collapsed window. It also marks the window as used.
func (ctx *Context) skipItems() bool {
	if ctx.current == nil {
		return true
	}
	ctx.current.used = true
	return ctx.current.skip
}

// itemHovered reports whether the mouse is over r in the topmost window
// under the cursor and inside the current clip rectangle.
func (ctx *Context) itemHovered(r Rect) bool {
	in := ctx.Input
	if in == nil || !in.MouseInWindow || ctx.current == nil || ctx.hovered != ctx.current || ctx.moving != nil {
		return false
	}
	m := Vec2{in.MouseX, in.MouseY}
	clip := ctx.DrawList.ClipRect()
	if m.X < clip[0] || m.Y < clip[1] || m.X >= clip[2] || m.Y >= clip[3] {
		return false
	}
	return r.Contains(m)
}

// buttonBehavior implements press-to-activate. The widget stays active
// while the left button is held, and no other widget is hovered then.
func (ctx *Context) buttonBehavior(id ID, r Rect, disabled bool) (hovered, held, pressed bool) {
	if disabled {
		return false, false, false
	}
	hovered = ctx.itemHovered(r) && (ctx.activeID == 0 || ctx.activeID == id)
	if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
		ctx.activeID = id
		pressed = true
		if uiVerbose() {
			uiLogger.Debug("item activated", "id", id, "frame", ctx.FrameCount)
		}
	}
	if ctx.activeID == id {
		ctx.activeIDAlive = true
		if ctx.Input.MouseDown(MouseButtonLeft) {
			held = true
		} else {
			ctx.activeID = 0
		}
	}
	return hovered, held, pressed
}
