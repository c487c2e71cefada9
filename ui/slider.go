package ui

import (
	"fmt"

	"github.com/chewxy/math32"
)

// SliderFloat draws a horizontal slider for *value in [minVal, maxVal].
// Returns true if the value changed.
//
//	if ctx.SliderFloat("Speed", &speed, 0, 10) {
//	    spinner.SetSpeed(speed)
//	}
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...Option) bool {
	if ctx.skipItems() {
		return false
	}
	o := applyOptions(opts)
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.3f"
	}
	id := ctx.widgetID(label, o)
	text := displayLabel(label)
	w := ctx.itemWidth(o)
	r := ctx.addItem(ctx.labeledFrameSize(w, text))
	frame := Rect{X: r.X, Y: r.Y, W: w, H: ctx.FrameHeight()}

	changed := ctx.sliderBehavior(id, frame, value, minVal, maxVal, GetOpt(o, OptStep), GetOpt(o, OptDisabled))
	ctx.renderSlider(id, frame, *value, minVal, maxVal, fmt.Sprintf(format, *value))
	ctx.renderFrameLabel(r, w, text)
	return changed
}

// SliderInt draws a horizontal slider for integer values.
func (ctx *Context) SliderInt(label string, value *int, minVal, maxVal int, opts ...Option) bool {
	if ctx.skipItems() {
		return false
	}
	o := applyOptions(opts)
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%d"
	}
	id := ctx.widgetID(label, o)
	text := displayLabel(label)
	w := ctx.itemWidth(o)
	r := ctx.addItem(ctx.labeledFrameSize(w, text))
	frame := Rect{X: r.X, Y: r.Y, W: w, H: ctx.FrameHeight()}

	f := float32(*value)
	ctx.sliderBehavior(id, frame, &f, float32(minVal), float32(maxVal), 1, GetOpt(o, OptDisabled))
	n := int(math32.Round(f))
	changed := n != *value
	*value = n
	ctx.renderSlider(id, frame, float32(n), float32(minVal), float32(maxVal), fmt.Sprintf(format, n))
	ctx.renderFrameLabel(r, w, text)
	return changed
}

// ColorEdit3 edits an RGB color with components in [0, 1] as three
// channel sliders and a preview swatch.
func (ctx *Context) ColorEdit3(label string, col *[3]float32, opts ...Option) bool {
	if ctx.skipItems() {
		return false
	}
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)
	s := &ctx.style
	h := ctx.FrameHeight()
	w := ctx.itemWidth(o)
	r := ctx.addItem(ctx.labeledFrameSize(w, text))

	swatch := h
	chanW := math32.Floor((w - swatch - 3*s.ItemSpacing.X/2) / 3)
	x := r.X
	changed := false
	for i, name := range [3]string{"R", "G", "B"} {
		cid := hashID(id, name)
		frame := Rect{X: x, Y: r.Y, W: chanW, H: h}
		v := col[i] * 255
		if ctx.sliderBehavior(cid, frame, &v, 0, 255, 1, GetOpt(o, OptDisabled)) {
			col[i] = clampf(v/255, 0, 1)
			changed = true
		}
		ctx.renderSlider(cid, frame, col[i]*255, 0, 255, fmt.Sprintf("%s:%3d", name, int(math32.Round(col[i]*255))))
		x += chanW + s.ItemSpacing.X/2
	}
	ctx.DrawList.AddRect(x, r.Y, swatch, h, RGBAf(col[0], col[1], col[2], 1))
	ctx.DrawList.AddRectOutline(x, r.Y, swatch, h, s.BorderColor, s.BorderSize)
	ctx.renderFrameLabel(r, w, text)
	return changed
}

func (ctx *Context) labeledFrameSize(frameW float32, text string) Vec2 {
	size := Vec2{frameW, ctx.FrameHeight()}
	if text != "" {
		size.X += ctx.style.ItemSpacing.X + ctx.MeasureText(text).X
	}
	return size
}

func (ctx *Context) renderFrameLabel(r Rect, frameW float32, text string) {
	if text == "" {
		return
	}
	x := r.X + frameW + ctx.style.ItemSpacing.X
	ctx.DrawList.AddText(ctx.font, x, r.Y+ctx.style.FramePadding.Y, text, ctx.style.TextColor)
}

func (ctx *Context) grabWidth(frame Rect) float32 {
	return math32.Min(ctx.style.GrabMinSize, frame.W)
}

// sliderBehavior maps the mouse x position onto [minVal, maxVal] while
// the slider is active, and steps the value with the mouse wheel.
func (ctx *Context) sliderBehavior(id ID, frame Rect, value *float32, minVal, maxVal, step float32, disabled bool) bool {
	hovered, held, _ := ctx.buttonBehavior(id, frame, disabled)
	if maxVal <= minVal {
		return false
	}
	v := *value
	switch {
	case held:
		grab := ctx.grabWidth(frame)
		span := frame.W - grab
		ratio := float32(0)
		if span > 0 {
			ratio = clampf((ctx.Input.MouseX-frame.X-grab/2)/span, 0, 1)
		}
		v = minVal + ratio*(maxVal-minVal)
	case hovered && ctx.Input.MouseWheelY != 0:
		wheelStep := step
		if wheelStep <= 0 {
			wheelStep = (maxVal - minVal) / 100
		}
		v += ctx.Input.MouseWheelY * wheelStep
	default:
		return false
	}
	if step > 0 {
		v = minVal + math32.Round((v-minVal)/step)*step
	}
	v = clampf(v, minVal, maxVal)
	if v == *value {
		return false
	}
	*value = v
	return true
}

func (ctx *Context) renderSlider(id ID, frame Rect, value, minVal, maxVal float32, text string) {
	s := &ctx.style
	active := ctx.activeID == id
	bg := s.FrameBgColor
	switch {
	case active:
		bg = s.FrameBgActiveColor
	case ctx.itemHovered(frame) && ctx.activeID == 0:
		bg = s.FrameBgHoveredColor
	}
	dl := ctx.DrawList
	dl.AddRect(frame.X, frame.Y, frame.W, frame.H, bg)

	ratio := float32(0)
	if maxVal > minVal {
		ratio = clampf((value-minVal)/(maxVal-minVal), 0, 1)
	}
	grab := ctx.grabWidth(frame)
	grabX := frame.X + ratio*(frame.W-grab)
	grabColor := s.SliderGrabColor
	if active {
		grabColor = s.SliderGrabActiveColor
	}
	dl.AddRect(grabX+1, frame.Y+2, grab-2, frame.H-4, grabColor)

	ts := ctx.MeasureText(text)
	dl.PushClipRect(frame.X, frame.Y, frame.X+frame.W, frame.Y+frame.H)
	dl.AddText(ctx.font, frame.X+(frame.W-ts.X)/2, frame.Y+s.FramePadding.Y, text, s.TextColor)
	dl.PopClipRect()
}
