package ui

import (
	"fmt"

	"github.com/chewxy/math32"
)

func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.GetID(optID)
	}
	return ctx.GetID(label)
}

// Text draws a line of text.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// Textf draws formatted text.
func (ctx *Context) Textf(format string, args ...any) {
	ctx.TextColored(fmt.Sprintf(format, args...), ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	if ctx.skipItems() {
		return
	}
	r := ctx.addItem(ctx.MeasureText(text))
	ctx.DrawList.AddText(ctx.font, r.X, r.Y, text, color)
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// LabelText draws a value followed by a label, aligned like other widgets.
func (ctx *Context) LabelText(label, value string) {
	if ctx.skipItems() {
		return
	}
	w := ctx.itemWidth(options{})
	lh := ctx.font.LineHeight
	text := displayLabel(label)
	r := ctx.addItem(Vec2{w + ctx.style.ItemSpacing.X + ctx.MeasureText(text).X, lh})
	ctx.DrawList.PushClipRect(r.X, r.Y, r.X+w, r.Y+lh)
	ctx.DrawList.AddText(ctx.font, r.X, r.Y, value, ctx.style.TextColor)
	ctx.DrawList.PopClipRect()
	ctx.DrawList.AddText(ctx.font, r.X+w+ctx.style.ItemSpacing.X, r.Y, text, ctx.style.TextColor)
}

// Button draws a button and returns true on the frame it is pressed.
func (ctx *Context) Button(label string, opts ...Option) bool {
	if ctx.skipItems() {
		return false
	}
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)
	ts := ctx.MeasureText(text)
	pad := ctx.style.FramePadding
	size := Vec2{ts.X + 2*pad.X, ts.Y + 2*pad.Y}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}
	r := ctx.addItem(size)

	disabled := GetOpt(o, OptDisabled)
	hovered, held, pressed := ctx.buttonBehavior(id, r, disabled)
	bg := ctx.style.ButtonColor
	switch {
	case held:
		bg = ctx.style.ButtonActiveColor
	case hovered:
		bg = ctx.style.ButtonHoveredColor
	}
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.DrawList.AddRect(r.X, r.Y, r.W, r.H, bg)
	ctx.DrawList.AddText(ctx.font, r.X+(r.W-ts.X)/2, r.Y+(r.H-ts.Y)/2, text, textColor)
	return pressed
}

// SmallButton draws a button without vertical padding.
func (ctx *Context) SmallButton(label string, opts ...Option) bool {
	saved := ctx.style.FramePadding
	ctx.style.FramePadding.Y = 0
	pressed := ctx.Button(label, opts...)
	ctx.style.FramePadding = saved
	return pressed
}

// Checkbox toggles *value when clicked and reports the change.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	if ctx.skipItems() {
		return false
	}
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)
	box := ctx.FrameHeight()
	ts := ctx.MeasureText(text)
	size := Vec2{box, box}
	if text != "" {
		size.X += ctx.style.ItemSpacing.X + ts.X
	}
	r := ctx.addItem(size)

	hovered, held, pressed := ctx.buttonBehavior(id, r, GetOpt(o, OptDisabled))
	if pressed {
		*value = !*value
	}
	bg := ctx.style.FrameBgColor
	switch {
	case held:
		bg = ctx.style.FrameBgActiveColor
	case hovered:
		bg = ctx.style.FrameBgHoveredColor
	}
	dl := ctx.DrawList
	dl.AddRect(r.X, r.Y, box, box, bg)
	if *value {
		inset := math32.Max(2, box/5)
		x1, y1 := r.X+inset, r.Y+box*0.5
		x2, y2 := r.X+box*0.42, r.Y+box-inset
		x3, y3 := r.X+box-inset, r.Y+inset
		dl.AddLine(x1, y1, x2, y2, ctx.style.CheckMarkColor, 2)
		dl.AddLine(x2, y2, x3, y3, ctx.style.CheckMarkColor, 2)
	}
	if text != "" {
		dl.AddText(ctx.font, r.X+box+ctx.style.ItemSpacing.X, r.Y+ctx.style.FramePadding.Y, text, ctx.style.TextColor)
	}
	return pressed
}

// RadioButton draws a radio button that sets *value to v when clicked.
func (ctx *Context) RadioButton(label string, value *int, v int) bool {
	if ctx.skipItems() {
		return false
	}
	id := ctx.GetID(label)
	text := displayLabel(label)
	box := ctx.FrameHeight()
	r := ctx.addItem(Vec2{box + ctx.style.ItemSpacing.X + ctx.MeasureText(text).X, box})
	hovered, _, pressed := ctx.buttonBehavior(id, r, false)
	if pressed {
		*value = v
	}
	bg := ctx.style.FrameBgColor
	if hovered {
		bg = ctx.style.FrameBgHoveredColor
	}
	dl := ctx.DrawList
	cx, cy, rad := r.X+box/2, r.Y+box/2, box/2
	dl.AddTriangle(cx, cy-rad, cx+rad, cy, cx, cy+rad, bg)
	dl.AddTriangle(cx, cy-rad, cx, cy+rad, cx-rad, cy, bg)
	if *value == v {
		in := rad * 0.5
		dl.AddTriangle(cx, cy-in, cx+in, cy, cx, cy+in, ctx.style.CheckMarkColor)
		dl.AddTriangle(cx, cy-in, cx, cy+in, cx-in, cy, ctx.style.CheckMarkColor)
	}
	dl.AddText(ctx.font, r.X+box+ctx.style.ItemSpacing.X, r.Y+ctx.style.FramePadding.Y, text, ctx.style.TextColor)
	return pressed
}

// Selectable draws a full-width row that highlights when selected.
// Returns true when clicked.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	if ctx.skipItems() {
		return false
	}
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)
	ts := ctx.MeasureText(text)
	w := math32.Max(ts.X, ctx.ContentWidth())
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	r := ctx.addItem(Vec2{w, ts.Y})

	disabled := GetOpt(o, OptDisabled)
	hovered, held, pressed := ctx.buttonBehavior(id, r, disabled)
	var bg uint32
	switch {
	case held:
		bg = ctx.style.HeaderActiveColor
	case hovered:
		bg = ctx.style.HeaderHoveredColor
	case selected:
		bg = ctx.style.HeaderColor
	}
	if bg != 0 {
		ctx.DrawList.AddRect(r.X, r.Y, r.W, r.H, bg)
	}
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.DrawList.AddText(ctx.font, r.X, r.Y, text, textColor)
	return pressed
}

// CollapsingHeader draws a full-width header that toggles the visibility
// of the following widgets. Returns true while open.
func (ctx *Context) CollapsingHeader(label string, opts ...Option) bool {
	if ctx.skipItems() {
		return false
	}
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	open := StatePtr(ctx, id, func() bool { return GetOpt(o, OptDefaultOpen) })

	text := displayLabel(label)
	h := ctx.FrameHeight()
	r := ctx.addItem(Vec2{ctx.ContentWidth(), h})
	hovered, held, pressed := ctx.buttonBehavior(id, r, false)
	if pressed {
		*open = !*open
		if uiVerbose() {
			uiLogger.Debug("header toggled", "label", text, "open", *open)
		}
	}
	bg := ctx.style.HeaderColor
	switch {
	case held:
		bg = ctx.style.HeaderActiveColor
	case hovered:
		bg = ctx.style.HeaderHoveredColor
	}
	dl := ctx.DrawList
	dl.AddRect(r.X, r.Y, r.W, r.H, bg)
	pad := ctx.style.FramePadding
	lh := ctx.font.LineHeight
	renderArrow(dl, r.X+pad.X, r.Y+pad.Y, lh, *open, ctx.style.TextColor)
	dl.AddText(ctx.font, r.X+pad.X+lh+ctx.style.ItemSpacing.X, r.Y+pad.Y, text, ctx.style.TextColor)
	return *open
}

// Separator draws a horizontal line across the window.
func (ctx *Context) Separator() {
	if ctx.skipItems() {
		return
	}
	r := ctx.addItem(Vec2{ctx.ContentWidth(), 1})
	ctx.DrawList.AddRect(r.X, r.Y, r.W, 1, ctx.style.SeparatorColor)
}

// ProgressBar draws fraction in [0, 1] as a filled bar. Width defaults to
// the item width; the overlay defaults to a percentage.
func (ctx *Context) ProgressBar(fraction float32, opts ...Option) {
	if ctx.skipItems() {
		return
	}
	o := applyOptions(opts)
	fraction = clampf(fraction, 0, 1)
	w := ctx.itemWidth(o)
	h := ctx.FrameHeight()
	if oh := GetOpt(o, OptHeight); oh > 0 {
		h = oh
	}
	r := ctx.addItem(Vec2{w, h})
	dl := ctx.DrawList
	dl.AddRect(r.X, r.Y, r.W, r.H, ctx.style.FrameBgColor)
	dl.AddRect(r.X, r.Y, r.W*fraction, r.H, ctx.style.PlotHistogramColor)
	overlay := GetOpt(o, OptOverlay)
	if overlay == "" {
		overlay = fmt.Sprintf("%.0f%%", fraction*100)
	}
	ts := ctx.MeasureText(overlay)
	dl.AddText(ctx.font, r.X+(r.W-ts.X)/2, r.Y+(r.H-ts.Y)/2, overlay, ctx.style.TextColor)
}

// Image draws a texture. textureID 0 is the font atlas; other values are
// resolved by the renderer.
func (ctx *Context) Image(textureID uint32, size, uv0, uv1 Vec2) {
	if ctx.skipItems() {
		return
	}
	r := ctx.addItem(size)
	ctx.DrawList.AddImage(textureID, r.X, r.Y, r.W, r.H, uv0, uv1, ColorWhite)
}
