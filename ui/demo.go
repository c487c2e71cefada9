package ui

import (
	"fmt"

	"github.com/chewxy/math32"
)

type demoState struct {
	clicks    int
	check     bool
	radio     int
	f         float32
	n         int
	color     [3]float32
	selected  int
	progress  float32
	phase     float32
	t         float32
	wave      [90]float32
	waveIdx   int
	noTitle   bool
	showStyle bool
}

// ShowDemoWindow draws a window exercising every widget. open may be nil.
func (ctx *Context) ShowDemoWindow(open *bool, opts ...WindowOption) {
	st := StatePtr(ctx, hashID(0, "##demo"), func() demoState {
		return demoState{f: 0.5, n: 50, color: [3]float32{0.4, 0.7, 0.0}, selected: -1}
	})
	if open != nil && !*open {
		return
	}
	if st.noTitle {
		opts = append(opts, WithNoTitleBar())
	}
	if !ctx.Begin("Demo", open, opts...) {
		ctx.End()
		return
	}
	defer ctx.End()

	ctx.Textf("Hello from the demo window. (%.1f FPS)", ctx.Framerate())
	ctx.Spacing()

	if ctx.CollapsingHeader("Help") {
		ctx.Text("Drag the title bar to move a window.")
		ctx.Text("Drag the lower-right corner to resize.")
		ctx.Text("Click the arrow to collapse.")
		ctx.TextDisabled("Mouse wheel steps sliders.")
	}

	if ctx.CollapsingHeader("Window options") {
		ctx.Checkbox("No title bar", &st.noTitle)
		ctx.SameLine()
		ctx.Checkbox("Show style", &st.showStyle)
	}

	if ctx.CollapsingHeader("Widgets", DefaultOpen()) {
		if ctx.Button("Button") {
			st.clicks++
		}
		ctx.SameLine()
		ctx.Textf("clicked %d times", st.clicks)
		if ctx.SmallButton("Reset") {
			st.clicks = 0
		}
		ctx.Checkbox("checkbox", &st.check)
		ctx.RadioButton("radio a", &st.radio, 0)
		ctx.SameLine()
		ctx.RadioButton("radio b", &st.radio, 1)
		ctx.SameLine()
		ctx.RadioButton("radio c", &st.radio, 2)
		ctx.SliderFloat("float", &st.f, 0, 1)
		ctx.SliderInt("int", &st.n, 0, 100)
		ctx.ColorEdit3("color", &st.color)
		ctx.LabelText("label", "value")
		ctx.Separator()
		for i, name := range []string{"Apple", "Banana", "Cherry"} {
			if ctx.Selectable(name, st.selected == i) {
				st.selected = i
			}
		}
	}

	if ctx.CollapsingHeader("Plots") {
		st.phase += ctx.DeltaTime
		for st.phase > 1.0/60 {
			st.wave[st.waveIdx] = math32.Sin(st.t)
			st.t += 0.15
			st.waveIdx = (st.waveIdx + 1) % len(st.wave)
			st.phase -= 1.0 / 60
		}
		ctx.PlotLines("lines", st.wave[:], WithScale(-1, 1), WithOverlay(fmt.Sprintf("idx %d", st.waveIdx)))
		ctx.PlotHistogram("histogram", []float32{0.6, 0.1, 1.0, 0.5, 0.92, 0.1, 0.2}, WithScale(0, 1))
		st.progress += ctx.DeltaTime * 0.4
		if st.progress > 1 {
			st.progress = 0
		}
		ctx.ProgressBar(st.progress)
	}

	if ctx.CollapsingHeader("Layout") {
		ctx.Text("Two buttons")
		ctx.SameLine()
		ctx.Button("on")
		ctx.SameLine()
		ctx.Button("one line")
		ctx.Indent()
		ctx.Text("Indented text")
		ctx.Unindent()
		ctx.Dummy(Vec2{0, 8})
		ctx.Text("After a dummy")
	}

	if st.showStyle && ctx.CollapsingHeader("Style", DefaultOpen()) {
		s := ctx.Style()
		ctx.TextColored("TextColor", s.TextColor)
		ctx.TextColored("ButtonColor", s.ButtonHoveredColor)
		ctx.TextColored("CheckMark", s.CheckMarkColor)
		ctx.Textf("WindowPadding %.0f,%.0f", s.WindowPadding.X, s.WindowPadding.Y)
		ctx.Textf("ItemSpacing %.0f,%.0f", s.ItemSpacing.X, s.ItemSpacing.Y)
	}
}
