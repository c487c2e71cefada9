package dbgui

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/ui"
)

const (
	previewSize = 128
	// wheelLines is how many call rows one mouse wheel step scrolls.
	wheelLines = 3
)

func (d *DebugUI) drawMenu(c *ui.Context) {
	if !c.BeginMainMenuBar() {
		c.EndMainMenuBar()
		return
	}
	if c.BeginMenu("gfx") {
		for w := range windowCount {
			c.MenuItem(windowTitles[w], "", &d.open[w])
		}
		c.EndMenu()
	}
	c.EndMainMenuBar()
}

func (d *DebugUI) drawWindow(c *ui.Context, w Window) {
	i := float32(w)
	visible := c.Begin(windowTitles[w], &d.open[w],
		ui.WithPos(20+24*i, 40+24*i, ui.CondFirstUseEver),
		ui.WithSize(380, 280, ui.CondFirstUseEver))
	defer c.End()
	if !visible {
		return
	}
	switch w {
	case WindowBuffers:
		d.drawBuffers(c)
	case WindowImages:
		d.drawImages(c)
	case WindowShaders:
		d.drawShaders(c)
	case WindowPipelines:
		d.drawPipelines(c)
	case WindowCalls:
		d.drawCalls(c)
	case WindowCapabilities:
		d.drawCapabilities(c)
	case WindowFrameStats:
		d.drawFrameStats(c)
	}
}

func handleLabel(kind string, id uint32, label string) string {
	if label == "" {
		label = "<unnamed>"
	}
	return fmt.Sprintf("%s %d:%d %s", kind, id&0xFFFF, id>>16, label)
}

func (d *DebugUI) drawBuffers(c *ui.Context) {
	bufs := d.gfx.Buffers()
	c.Textf("%d live", len(bufs))
	c.Separator()
	for _, h := range bufs {
		desc, _ := d.gfx.BufferDesc(h)
		c.Text(handleLabel("buf", h.ID, desc.Label))
		c.Indent()
		c.Textf("%s %s, %d bytes, %s", desc.Type, desc.Usage, desc.Size, d.gfx.QueryBufferState(h))
		c.Unindent()
	}
}

func (d *DebugUI) drawImages(c *ui.Context) {
	imgs := d.gfx.Images()
	c.Textf("%d live", len(imgs))
	c.Separator()
	for _, h := range imgs {
		desc, _ := d.gfx.ImageDesc(h)
		label := fmt.Sprintf("%s##img%d", handleLabel("img", h.ID, desc.Label), h.ID)
		if c.Selectable(label, d.selImage == h) {
			d.selImage = h
		}
	}
	desc, ok := d.gfx.ImageDesc(d.selImage)
	if !ok || d.gfx.QueryImageState(d.selImage) != gfx.ResourceStateValid {
		c.TextDisabled("select an image to preview")
		return
	}
	c.Separator()
	c.Textf("%dx%d %s %s", desc.Width, desc.Height, desc.PixelFormat, desc.Usage)
	c.Textf("filter %s/%s, wrap %s/%s", desc.MinFilter, desc.MagFilter, desc.WrapU, desc.WrapV)
	scale := previewSize / float32(max(desc.Width, desc.Height))
	size := ui.Vec2{
		X: math32.Max(1, math32.Round(float32(desc.Width)*scale)),
		Y: math32.Max(1, math32.Round(float32(desc.Height)*scale)),
	}
	c.Image(d.selImage.ID, size, ui.Vec2{}, ui.Vec2{X: 1, Y: 1})
}

func (d *DebugUI) drawShaders(c *ui.Context) {
	shds := d.gfx.Shaders()
	c.Textf("%d live", len(shds))
	c.Separator()
	for _, h := range shds {
		desc, _ := d.gfx.ShaderDesc(h)
		if !c.CollapsingHeader(fmt.Sprintf("%s##shd%d", handleLabel("shd", h.ID, desc.Label), h.ID)) {
			continue
		}
		attrs := make([]string, len(desc.Attrs))
		for i, a := range desc.Attrs {
			attrs[i] = a.Name
		}
		c.Textf("attrs: %s", strings.Join(attrs, ", "))
		for _, st := range []struct {
			stage gfx.ShaderStage
			desc  *gfx.ShaderStageDesc
		}{{gfx.ShaderStageVS, &desc.VS}, {gfx.ShaderStageFS, &desc.FS}} {
			for bi, ub := range st.desc.UniformBlocks {
				names := make([]string, len(ub.Uniforms))
				for i, u := range ub.Uniforms {
					names[i] = u.Name + " " + u.Type.String()
				}
				c.Textf("%s block %d (%d bytes): %s", st.stage, bi, ub.Size, strings.Join(names, ", "))
			}
			for ii, img := range st.desc.Images {
				c.Textf("%s image %d: %s", st.stage, ii, img.Name)
			}
		}
		c.TextDisabled(d.gfx.QueryShaderState(h).String())
	}
}

func (d *DebugUI) drawPipelines(c *ui.Context) {
	pips := d.gfx.Pipelines()
	c.Textf("%d live", len(pips))
	c.Separator()
	for _, h := range pips {
		desc, _ := d.gfx.PipelineDesc(h)
		if !c.CollapsingHeader(fmt.Sprintf("%s##pip%d", handleLabel("pip", h.ID, desc.Label), h.ID)) {
			continue
		}
		c.Textf("shader %d:%d, index %s", desc.Shader.ID&0xFFFF, desc.Shader.ID>>16, desc.IndexType)
		for i, a := range desc.Layout.Attrs {
			if a.Format == gfx.VertexFormatInvalid {
				break
			}
			c.Textf("attr %d: buf %d +%d %s (stride %d)", i, a.BufferIndex, a.Offset, a.Format,
				desc.Layout.Buffers[a.BufferIndex].Stride)
		}
		ds := desc.DepthStencil
		c.Textf("depth %s write %t, cull %s, samples %d",
			ds.DepthCompareFunc, ds.DepthWriteEnabled, desc.Rasterizer.CullMode, desc.Rasterizer.SampleCount)
		c.Textf("blend %t", desc.Blend.Enabled)
	}
}

func (d *DebugUI) drawCalls(c *ui.Context) {
	calls := d.gfx.CapturedCalls()
	if len(calls) == 0 {
		c.TextDisabled("capturing, calls show from the next frame")
		return
	}
	st := c.Style()
	rowH := c.LineHeight() + st.ItemSpacing.Y
	c.Textf("%d calls in frame %d", len(calls), d.gfx.Stats().Frame)
	c.Separator()

	bottom := c.WindowPos().Y + c.WindowSize().Y - st.WindowPadding.Y
	visible := math32.Max(bottom-c.ItemPos().Y, rowH)
	if c.IsWindowHovered() {
		d.callScroll -= c.Input.MouseWheelY * wheelLines * rowH
	}
	clip := ui.NewListClipper(len(calls), rowH, visible, 0)
	d.callScroll = clampScroll(d.callScroll, clip.MaxScroll(visible))
	clip = ui.NewListClipper(len(calls), rowH, visible, d.callScroll)
	for i := clip.Start; i < clip.End; i++ {
		c.Text(calls[i].String())
	}
}

func clampScroll(v, maxScroll float32) float32 {
	return math32.Min(math32.Max(v, 0), maxScroll)
}

func (d *DebugUI) drawCapabilities(c *ui.Context) {
	f := d.gfx.Features()
	c.Textf("instancing: %t", f.Instancing)
	c.Textf("clamp to border: %t", f.ImageClampToBorder)
	c.Textf("msaa: %t", f.MSAA)
	c.Textf("gles2 feature level: %t", f.GLES2)
	c.Textf("max image size: %d", f.MaxImageSize)
	c.Separator()
	for _, p := range d.gfx.Pools() {
		frac := float32(0)
		if p.Size > 0 {
			frac = float32(p.Used) / float32(p.Size)
		}
		c.ProgressBar(frac, ui.WithOverlay(fmt.Sprintf("%s %d/%d", p.Name, p.Used, p.Size)))
	}
}

func (d *DebugUI) drawFrameStats(c *ui.Context) {
	s := d.gfx.Stats()
	c.Textf("frame %d: %.1f FPS", s.Frame, c.Framerate())
	c.Textf("passes %d, pipelines %d, bindings %d", s.Passes, s.Pipelines, s.Bindings)
	c.Textf("uniforms %d (%d bytes)", s.Uniforms, s.UniformBytes)
	c.Textf("draws %d, elements %d", s.Draws, s.Elements)
	c.Textf("updates %d, appends %d", s.BufferUpdates, s.BufferAppends)
	if s.ValidationErrs > 0 {
		c.TextColored(fmt.Sprintf("validation errors %d", s.ValidationErrs), ui.ColorRed)
	}
	c.Separator()
	c.PlotLines("draws", d.history.values(&d.history.draws))
	c.PlotLines("elements", d.history.values(&d.history.elements))
	c.PlotHistogram("ms", d.history.values(&d.history.frameMS))
}
