package ui

import (
	"fmt"

	"github.com/chewxy/math32"
)

// PlotLines draws values as a connected line. The value range fits the
// data unless WithScale is given; hovering shows the value under the
// mouse.
func (ctx *Context) PlotLines(label string, values []float32, opts ...Option) {
	ctx.plot(label, values, false, opts)
}

// PlotHistogram draws values as vertical bars.
func (ctx *Context) PlotHistogram(label string, values []float32, opts ...Option) {
	ctx.plot(label, values, true, opts)
}

func (ctx *Context) plot(label string, values []float32, histogram bool, opts []Option) {
	if ctx.skipItems() {
		return
	}
	o := applyOptions(opts)
	s := &ctx.style
	text := displayLabel(label)
	w := ctx.itemWidth(o)
	h := GetOpt(o, OptHeight)
	if h <= 0 {
		h = 3 * ctx.FrameHeight()
	}
	size := Vec2{w, h}
	if text != "" {
		size.X += s.ItemSpacing.X + ctx.MeasureText(text).X
	}
	r := ctx.addItem(size)
	frame := Rect{X: r.X, Y: r.Y, W: w, H: h}
	dl := ctx.DrawList
	dl.AddRect(frame.X, frame.Y, frame.W, frame.H, s.FrameBgColor)
	if text != "" {
		dl.AddText(ctx.font, frame.X+w+s.ItemSpacing.X, frame.Y+s.FramePadding.Y, text, s.TextColor)
	}

	lo, hi := GetOpt(o, OptScaleMin), GetOpt(o, OptScaleMax)
	if lo == hi {
		lo, hi = plotRange(values)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	inner := Rect{X: frame.X + s.FramePadding.X, Y: frame.Y + s.FramePadding.Y,
		W: frame.W - 2*s.FramePadding.X, H: frame.H - 2*s.FramePadding.Y}
	yOf := func(v float32) float32 {
		return inner.Y + inner.H - clampf((v-lo)/span, 0, 1)*inner.H
	}

	n := len(values)
	hoveredIdx := -1
	if n > 0 && ctx.itemHovered(frame) {
		rel := clampf((ctx.Input.MouseX-inner.X)/inner.W, 0, 0.9999)
		if histogram {
			hoveredIdx = int(rel * float32(n))
		} else if n > 1 {
			hoveredIdx = int(rel*float32(n-1) + 0.5)
		} else {
			hoveredIdx = 0
		}
	}

	if histogram {
		barW := inner.W / float32(max(n, 1))
		for i, v := range values {
			color := s.PlotHistogramColor
			if i == hoveredIdx {
				color = s.PlotHistogramHoverColor
			}
			y := yOf(v)
			x := inner.X + float32(i)*barW
			dl.AddRect(x+1, y, math32.Max(1, barW-1), inner.Y+inner.H-y, color)
		}
	} else if n > 1 {
		step := inner.W / float32(n-1)
		for i := 1; i < n; i++ {
			color := s.PlotLinesColor
			if i == hoveredIdx || i-1 == hoveredIdx {
				color = s.PlotLinesHoveredColor
			}
			x1 := inner.X + float32(i-1)*step
			dl.AddLine(x1, yOf(values[i-1]), x1+step, yOf(values[i]), color, 1)
		}
	}

	if overlay := GetOpt(o, OptOverlay); overlay != "" {
		ts := ctx.MeasureText(overlay)
		dl.AddText(ctx.font, frame.X+(frame.W-ts.X)/2, frame.Y+s.FramePadding.Y, overlay, s.TextColor)
	}
	if hoveredIdx >= 0 {
		ctx.SetTooltip(fmt.Sprintf("%d: %.3f", hoveredIdx, values[hoveredIdx]))
	}
}

func plotRange(values []float32) (lo, hi float32) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math32.Min(lo, v)
		hi = math32.Max(hi, v)
	}
	return lo, hi
}
