package ui

import "github.com/chewxy/math32"

// BeginMainMenuBar opens the bar across the top of the display. Menus
// added with BeginMenu are laid out left to right. Always pair with
// EndMainMenuBar.
func (ctx *Context) BeginMainMenuBar() bool {
	w, _ := ctx.findOrCreateWindow(hashID(0, "##MainMenuBar"), "##MainMenuBar", windowMenuBar)
	w.Pos = Vec2{}
	w.Size = Vec2{ctx.DisplaySize.X, ctx.FrameHeight()}
	ctx.overlays = append(ctx.overlays, w)
	return ctx.beginWindow(w, "", nil, windowOptions{noTitleBar: true, noMove: true, noCollapse: true})
}

// EndMainMenuBar closes the main menu bar.
func (ctx *Context) EndMainMenuBar() {
	if ctx.current == nil || ctx.current.kind != windowMenuBar {
		uiLogger.Warn("EndMainMenuBar without BeginMainMenuBar", "frame", ctx.FrameCount)
		return
	}
	ctx.End()
}

// MainMenuBarHeight returns the height the menu bar occupies.
func (ctx *Context) MainMenuBarHeight() float32 { return ctx.FrameHeight() }

// BeginMenu adds a menu title to the main menu bar. Clicking it opens a
// popup; while a menu is open, hovering another title switches to it.
// Returns true while open; call EndMenu only then.
func (ctx *Context) BeginMenu(label string, opts ...Option) bool {
	if ctx.skipItems() {
		return false
	}
	bar := ctx.current
	if bar.kind != windowMenuBar {
		uiLogger.Warn("BeginMenu outside the main menu bar", "label", label)
		return false
	}
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)
	s := &ctx.style
	ts := ctx.MeasureText(text)
	r := ctx.addItem(Vec2{ts.X + 2*s.ItemSpacing.X, ctx.FrameHeight()})

	disabled := GetOpt(o, OptDisabled)
	open := ctx.openMenu == id
	hovered := !disabled && ctx.itemHovered(r)
	if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
		open = !open
	} else if hovered && ctx.openMenu != 0 && !open {
		open = true
	}
	switch {
	case open:
		ctx.openMenu = id
	case ctx.openMenu == id:
		ctx.openMenu = 0
	}

	dl := ctx.DrawList
	if open || hovered {
		bg := s.HeaderHoveredColor
		if open {
			bg = s.HeaderActiveColor
		}
		dl.AddRect(r.X, r.Y, r.W, r.H, bg)
	}
	textColor := s.TextColor
	if disabled {
		textColor = s.TextDisabledColor
	}
	dl.AddText(ctx.font, r.X+s.ItemSpacing.X, r.Y+s.FramePadding.Y, text, textColor)
	if !open {
		return false
	}

	popupID := hashID(id, "##menu")
	popup, created := ctx.findOrCreateWindow(popupID, text, windowPopup)
	ctx.applyWindowOptions(popup, windowOptions{autoResize: true}, created)
	popup.Pos = Vec2{r.X, r.Y + r.H}
	if over := popup.Pos.X + popup.Size.X - ctx.DisplaySize.X; over > 0 {
		popup.Pos.X = math32.Max(0, popup.Pos.X-over)
	}
	ctx.overlays = append(ctx.overlays, popup)
	ctx.beginWindow(popup, "", nil, windowOptions{noTitleBar: true, noMove: true, noCollapse: true, autoResize: true})
	return true
}

// EndMenu closes a menu opened by BeginMenu.
func (ctx *Context) EndMenu() {
	if ctx.current == nil || ctx.current.kind != windowPopup {
		uiLogger.Warn("EndMenu without open menu", "frame", ctx.FrameCount)
		return
	}
	ctx.End()
}

// MenuItem adds an entry to an open menu and returns true when clicked,
// which also closes the menu. A non-nil selected shows a check mark and
// is toggled on click. The shortcut is display only.
func (ctx *Context) MenuItem(label, shortcut string, selected *bool, opts ...Option) bool {
	if ctx.skipItems() {
		return false
	}
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)
	s := &ctx.style
	lh := ctx.font.LineHeight
	checkW := lh + s.ItemSpacing.X/2
	width := checkW + ctx.MeasureText(text).X
	if shortcut != "" {
		width += 4*s.ItemSpacing.X + ctx.MeasureText(shortcut).X
	}
	width = math32.Max(width, ctx.ContentWidth())
	r := ctx.addItem(Vec2{width, lh})

	disabled := GetOpt(o, OptDisabled)
	hovered, _, pressed := ctx.buttonBehavior(id, r, disabled)
	dl := ctx.DrawList
	if hovered {
		dl.AddRect(r.X-s.ItemSpacing.X/2, r.Y-s.ItemSpacing.Y/2, r.W+s.ItemSpacing.X, r.H+s.ItemSpacing.Y, s.HeaderHoveredColor)
	}
	textColor := s.TextColor
	if disabled {
		textColor = s.TextDisabledColor
	}
	if selected != nil && *selected {
		x, y := r.X+2, r.Y+lh/2
		dl.AddLine(x, y, x+lh*0.3, y+lh*0.3, s.CheckMarkColor, 2)
		dl.AddLine(x+lh*0.3, y+lh*0.3, x+lh*0.7, y-lh*0.35, s.CheckMarkColor, 2)
	}
	dl.AddText(ctx.font, r.X+checkW, r.Y, text, textColor)
	if shortcut != "" {
		sw := ctx.MeasureText(shortcut).X
		dl.AddText(ctx.font, r.X+r.W-sw, r.Y, shortcut, s.TextDisabledColor)
	}
	if pressed {
		if selected != nil {
			*selected = !*selected
		}
		ctx.openMenu = 0
		if uiVerbose() {
			uiLogger.Debug("menu item selected", "label", text)
		}
	}
	return pressed
}

// IsMenuOpen reports whether any menu of the main menu bar is open.
func (ctx *Context) IsMenuOpen() bool { return ctx.openMenu != 0 }
