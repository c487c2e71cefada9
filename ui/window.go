package ui

import "github.com/chewxy/math32"

type windowKind int

const (
	windowRegular windowKind = iota
	windowMenuBar
	windowPopup
)

// minVisible is how much of a dragged window stays on screen.
const minVisible = 50

// window is the persistent state of a window plus its per-frame layout.
type window struct {
	ID        ID
	Name      string
	Pos       Vec2
	Size      Vec2
	Collapsed bool

	kind         windowKind
	implicit     bool
	noTitleBar   bool
	autoResize   bool
	fitPending   bool
	posApplied   bool
	sizeApplied  bool
	hiddenFrames int
	visible      bool
	closed       bool
	skip         bool
	lastFrame    uint64
	used         bool
	idDepth      int
	titleH       float32
	padding      Vec2
	dragOffset   Vec2
	resizeOffset Vec2
	contentSize  Vec2
	drawList     *DrawList
	layout       layout
}

// rect is the screen area of the window; collapsed windows keep only the
// title bar.
func (w *window) rect() Rect {
	h := w.Size.Y
	if w.Collapsed {
		h = w.titleH
	}
	return Rect{X: w.Pos.X, Y: w.Pos.Y, W: w.Size.X, H: h}
}

func (w *window) isOverlay() bool { return w.kind != windowRegular }

func (ctx *Context) findOrCreateWindow(id ID, name string, kind windowKind) (*window, bool) {
	if w, ok := ctx.windows[id]; ok {
		return w, false
	}
	w := &window{ID: id, Name: name, kind: kind}
	switch kind {
	case windowRegular:
		cascade := float32(len(ctx.order)%8) * 20
		w.Pos = Vec2{60 + cascade, 60 + cascade}
		w.Size = Vec2{400, 400}
		ctx.order = append(ctx.order, w)
	case windowMenuBar:
		w.layout.horizontal = true
	}
	ctx.windows[id] = w
	if uiVerbose() {
		uiLogger.Debug("window created", "name", name, "kind", kind)
	}
	return w, true
}

// Begin opens a window. Widgets submitted until the matching End are
// placed in it. It returns false when the window is collapsed or closed;
// End must be called either way. A non-nil open adds a close button
// that sets *open to false, and windows with *open == false are not shown.
func (ctx *Context) Begin(title string, open *bool, opts ...WindowOption) bool {
	var o windowOptions
	for _, opt := range opts {
		opt(&o)
	}
	w, created := ctx.findOrCreateWindow(hashID(0, title), title, windowRegular)
	if w.lastFrame == ctx.FrameCount && w.drawList != nil {
		uiLogger.Warn("window submitted twice in one frame", "title", title)
	}
	ctx.applyWindowOptions(w, o, created)
	return ctx.beginWindow(w, title, open, o)
}

func (ctx *Context) applyWindowOptions(w *window, o windowOptions, created bool) {
	if o.hasPos && condApplies(o.posCond, created, &w.posApplied) {
		w.Pos = o.pos
	}
	if o.hasSize && condApplies(o.sizeCond, created, &w.sizeApplied) {
		w.Size = o.size
		w.fitPending = false
	}
	if created {
		w.fitPending = !o.hasSize && !o.autoResize
		if w.fitPending || o.autoResize {
			w.hiddenFrames = 1
		}
	}
}

func condApplies(c Cond, created bool, applied *bool) bool {
	switch c {
	case CondOnce:
		if *applied {
			return false
		}
		*applied = true
		return true
	case CondFirstUseEver:
		return created
	default:
		return true
	}
}

func (ctx *Context) beginWindow(w *window, title string, open *bool, o windowOptions) bool {
	s := &ctx.style
	w.lastFrame = ctx.FrameCount
	w.used = false
	w.noTitleBar = o.noTitleBar
	w.autoResize = o.autoResize
	w.idDepth = len(ctx.idStack)
	w.drawList = ctx.acquireDrawList()

	ctx.stack = append(ctx.stack, w)
	ctx.current = w
	ctx.DrawList = w.drawList
	ctx.idStack = append(ctx.idStack, w.ID)

	w.closed = open != nil && !*open
	if w.closed {
		w.skip = true
		return false
	}

	w.padding = s.WindowPadding
	w.titleH = 0
	if !w.noTitleBar {
		w.titleH = ctx.FrameHeight()
	} else {
		w.Collapsed = false
	}
	if w.kind == windowMenuBar {
		w.padding.Y = 0
	}

	in := ctx.Input
	mouse := Vec2{in.MouseX, in.MouseY}
	lh := ctx.font.LineHeight

	if w.kind == windowRegular && !w.autoResize && !w.Collapsed {
		ctx.handleResize(w, mouse)
	}

	r := w.rect()
	collapseRect := Rect{X: r.X + s.FramePadding.X, Y: r.Y + s.FramePadding.Y, W: lh, H: lh}
	closeRect := Rect{X: r.X + r.W - s.FramePadding.X - lh, Y: r.Y + s.FramePadding.Y, W: lh, H: lh}
	if !w.noTitleBar && ctx.hovered == w && ctx.activeID == 0 && ctx.moving == nil && in.MouseClicked(MouseButtonLeft) {
		titleRect := Rect{X: r.X, Y: r.Y, W: r.W, H: w.titleH}
		switch {
		case open != nil && closeRect.Contains(mouse):
			*open = false
		case !o.noCollapse && collapseRect.Contains(mouse):
			w.Collapsed = !w.Collapsed
		case !o.noMove && titleRect.Contains(mouse):
			ctx.moving = w
			w.dragOffset = w.Pos.Sub(mouse)
		}
	}
	if ctx.moving == w {
		if in.MouseDown(MouseButtonLeft) {
			w.Pos = mouse.Add(w.dragOffset)
			ctx.constrain(w)
		} else {
			ctx.moving = nil
		}
	}

	r = w.rect()
	dl := w.drawList
	focused := len(ctx.order) > 0 && ctx.order[len(ctx.order)-1] == w
	if !w.Collapsed {
		bg := s.WindowBgColor
		switch w.kind {
		case windowMenuBar:
			bg = s.MenuBarBgColor
		case windowPopup:
			bg = s.PopupBgColor
		}
		dl.AddRect(r.X, r.Y+w.titleH, r.W, r.H-w.titleH, bg)
	}
	if !w.noTitleBar {
		bg := s.TitleBgColor
		switch {
		case w.Collapsed:
			bg = s.TitleBgCollapsedColor
		case focused:
			bg = s.TitleBgActiveColor
		}
		dl.AddRect(r.X, r.Y, r.W, w.titleH, bg)
		x := r.X + s.FramePadding.X
		if !o.noCollapse {
			renderArrow(dl, collapseRect.X, collapseRect.Y, lh, !w.Collapsed, s.TextColor)
			x += lh + s.ItemSpacing.X/2
		}
		textEnd := r.X + r.W
		if open != nil {
			textEnd = closeRect.X
			if ctx.hovered == w && closeRect.Contains(mouse) {
				dl.AddRect(closeRect.X, closeRect.Y, closeRect.W, closeRect.H, s.ButtonHoveredColor)
			}
			c := closeRect
			inset := float32(3)
			dl.AddLine(c.X+inset, c.Y+inset, c.X+c.W-inset, c.Y+c.H-inset, s.TextColor, 1)
			dl.AddLine(c.X+c.W-inset, c.Y+inset, c.X+inset, c.Y+c.H-inset, s.TextColor, 1)
		}
		dl.PushClipRect(r.X, r.Y, textEnd, r.Y+w.titleH)
		dl.AddText(ctx.font, x, r.Y+s.FramePadding.Y, displayLabel(title), s.TextColor)
		dl.PopClipRect()
	}
	if w.kind == windowRegular && !w.autoResize && !w.Collapsed {
		gripColor := s.ResizeGripColor
		if ctx.activeID == hashID(w.ID, "#RESIZE") {
			gripColor = s.ResizeGripHoveredColor
		}
		gs := ctx.FrameHeight()
		x2, y2 := r.X+r.W, r.Y+r.H
		dl.AddTriangle(x2, y2-gs, x2, y2, x2-gs, y2, gripColor)
	}
	if s.BorderSize > 0 {
		dl.AddRectOutline(r.X, r.Y, r.W, r.H, s.WindowBorderColor, s.BorderSize)
	}

	w.skip = w.Collapsed
	dl.PushClipRect(r.X, r.Y+w.titleH, r.X+r.W, r.Y+r.H)
	w.layout.reset(Vec2{r.X + w.padding.X, r.Y + w.titleH + w.padding.Y})
	return !w.skip
}

// handleResize drags the bottom-right corner of a window.
func (ctx *Context) handleResize(w *window, mouse Vec2) {
	gs := ctx.FrameHeight()
	r := w.rect()
	grip := Rect{X: r.X + r.W - gs, Y: r.Y + r.H - gs, W: gs, H: gs}
	id := hashID(w.ID, "#RESIZE")
	_, held, pressed := ctx.buttonBehavior(id, grip, false)
	if pressed {
		w.resizeOffset = r.Max().Sub(mouse)
	}
	if held {
		w.Size = mouse.Add(w.resizeOffset).Sub(w.Pos)
		w.Size.X = math32.Max(w.Size.X, ctx.style.WindowMinSize.X)
		w.Size.Y = math32.Max(w.Size.Y, ctx.style.WindowMinSize.Y)
		w.fitPending = false
	}
}

// constrain keeps part of a moved window on screen.
func (ctx *Context) constrain(w *window) {
	d := ctx.DisplaySize
	w.Pos.X = clampf(w.Pos.X, -w.Size.X+minVisible, d.X-minVisible)
	w.Pos.Y = clampf(w.Pos.Y, 0, math32.Max(0, d.Y-w.titleH))
}

// End closes the window opened by the matching Begin.
func (ctx *Context) End() {
	n := len(ctx.stack)
	if n == 0 {
		uiLogger.Warn("End called without Begin", "frame", ctx.FrameCount)
		return
	}
	w := ctx.stack[n-1]
	ctx.stack = ctx.stack[:n-1]
	if len(ctx.idStack) > w.idDepth {
		ctx.idStack = ctx.idStack[:w.idDepth]
	}

	if !w.closed {
		w.drawList.PopClipRect()
		if !w.skip {
			w.contentSize = w.layout.max.Sub(w.layout.start)
			if w.autoResize || w.fitPending {
				w.Size = ctx.fitSize(w)
				w.fitPending = false
			}
		}
	}

	if n > 1 {
		ctx.current = ctx.stack[n-2]
		ctx.DrawList = ctx.current.drawList
	} else {
		ctx.current = nil
		ctx.DrawList = nil
	}
}

func (ctx *Context) fitSize(w *window) Vec2 {
	size := Vec2{
		X: w.contentSize.X + 2*w.padding.X,
		Y: w.titleH + w.contentSize.Y + 2*w.padding.Y,
	}
	if w.kind == windowRegular {
		size.X = math32.Max(size.X, ctx.style.WindowMinSize.X)
		size.Y = math32.Max(size.Y, ctx.style.WindowMinSize.Y)
		if !w.noTitleBar {
			size.X = math32.Max(size.X, ctx.MeasureText(displayLabel(w.Name)).X+2*ctx.FrameHeight()+2*ctx.style.FramePadding.X)
		}
	}
	return size
}

// WindowPos returns the position of the current window.
func (ctx *Context) WindowPos() Vec2 {
	if ctx.current == nil {
		return Vec2{}
	}
	return ctx.current.Pos
}

// WindowSize returns the size of the current window.
func (ctx *Context) WindowSize() Vec2 {
	if ctx.current == nil {
		return Vec2{}
	}
	return ctx.current.Size
}

// IsWindowCollapsed reports whether the current window is collapsed.
func (ctx *Context) IsWindowCollapsed() bool {
	return ctx.current != nil && ctx.current.Collapsed
}

// IsWindowHovered reports whether the mouse is over the current window
// and no window above it.
func (ctx *Context) IsWindowHovered() bool {
	return ctx.current != nil && ctx.hovered == ctx.current
}

// renderArrow draws a triangle pointing down when open and right otherwise.
func renderArrow(dl *DrawList, x, y, size float32, down bool, color uint32) {
	h := size * 0.5
	cx, cy := x+size*0.5, y+size*0.5
	if down {
		dl.AddTriangle(cx-h*0.8, cy-h*0.4, cx+h*0.8, cy-h*0.4, cx, cy+h*0.5, color)
		return
	}
	dl.AddTriangle(cx-h*0.4, cy-h*0.8, cx+h*0.5, cy, cx-h*0.4, cy+h*0.8, color)
}

// collectDrawLists hands over the draw lists of this frame in render
// order: windows back to front, then the menu bar and popups, then the
// foreground list. Windows not submitted this frame are skipped.
func (ctx *Context) collectDrawLists(out []*DrawList) []*DrawList {
	take := func(w *window) {
		w.visible = false
		dl := w.drawList
		w.drawList = nil
		if dl == nil || w.lastFrame != ctx.FrameCount {
			ReleaseDrawList(dl)
			return
		}
		if w.closed || w.hiddenFrames > 0 || (w.implicit && !w.used) {
			if w.hiddenFrames > 0 {
				w.hiddenFrames--
			}
			ReleaseDrawList(dl)
			return
		}
		w.visible = true
		out = append(out, dl)
	}
	for _, w := range ctx.order {
		take(w)
	}
	for _, w := range ctx.overlays {
		take(w)
	}
	out = append(out, ctx.ForegroundDrawList)
	ctx.ForegroundDrawList = nil
	return out
}
