package ui

// Style defines the visual appearance of windows and widgets.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	WindowBgColor         uint32
	WindowBorderColor     uint32
	TitleBgColor          uint32
	TitleBgActiveColor    uint32
	TitleBgCollapsedColor uint32
	MenuBarBgColor        uint32
	PopupBgColor          uint32

	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	FrameBgColor        uint32
	FrameBgHoveredColor uint32
	FrameBgActiveColor  uint32

	HeaderColor        uint32
	HeaderHoveredColor uint32
	HeaderActiveColor  uint32

	CheckMarkColor          uint32
	SliderGrabColor         uint32
	SliderGrabActiveColor   uint32
	SeparatorColor          uint32
	PlotLinesColor          uint32
	PlotLinesHoveredColor   uint32
	PlotHistogramColor      uint32
	PlotHistogramHoverColor uint32
	BorderColor             uint32
	ResizeGripColor         uint32
	ResizeGripHoveredColor  uint32

	WindowPadding Vec2
	FramePadding  Vec2
	ItemSpacing   Vec2
	IndentSpacing float32
	GrabMinSize   float32
	BorderSize    float32
	WindowMinSize Vec2
}

// DefaultStyle returns the dark theme.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: RGBA(128, 128, 128, 255),

		WindowBgColor:         RGBA(15, 15, 15, 240),
		WindowBorderColor:     RGBA(110, 110, 128, 128),
		TitleBgColor:          RGBA(10, 10, 10, 255),
		TitleBgActiveColor:    RGBA(41, 74, 122, 255),
		TitleBgCollapsedColor: RGBA(0, 0, 0, 130),
		MenuBarBgColor:        RGBA(36, 36, 36, 255),
		PopupBgColor:          RGBA(20, 20, 20, 240),

		ButtonColor:        RGBA(66, 150, 250, 102),
		ButtonHoveredColor: RGBA(66, 150, 250, 255),
		ButtonActiveColor:  RGBA(15, 135, 250, 255),

		FrameBgColor:        RGBA(41, 74, 122, 138),
		FrameBgHoveredColor: RGBA(66, 150, 250, 102),
		FrameBgActiveColor:  RGBA(66, 150, 250, 171),

		HeaderColor:        RGBA(66, 150, 250, 79),
		HeaderHoveredColor: RGBA(66, 150, 250, 204),
		HeaderActiveColor:  RGBA(66, 150, 250, 255),

		CheckMarkColor:          RGBA(66, 150, 250, 255),
		SliderGrabColor:         RGBA(61, 133, 224, 255),
		SliderGrabActiveColor:   RGBA(66, 150, 250, 255),
		SeparatorColor:          RGBA(110, 110, 128, 128),
		PlotLinesColor:          RGBA(156, 156, 156, 255),
		PlotLinesHoveredColor:   RGBA(255, 110, 89, 255),
		PlotHistogramColor:      RGBA(230, 179, 0, 255),
		PlotHistogramHoverColor: RGBA(255, 153, 0, 255),
		BorderColor:             RGBA(110, 110, 128, 128),
		ResizeGripColor:         RGBA(66, 150, 250, 51),
		ResizeGripHoveredColor:  RGBA(66, 150, 250, 171),

		WindowPadding: Vec2{8, 8},
		FramePadding:  Vec2{4, 3},
		ItemSpacing:   Vec2{8, 4},
		IndentSpacing: 21,
		GrabMinSize:   10,
		BorderSize:    1,
		WindowMinSize: Vec2{32, 32},
	}
}

// StyleColorField identifies a color of Style for PushStyleColor.
type StyleColorField int

const (
	StyleColorText StyleColorField = iota
	StyleColorButton
	StyleColorButtonHovered
	StyleColorButtonActive
	StyleColorWindowBg
	StyleColorFrameBg
)

// PushStyleColor overrides a single color until the matching PopStyle.
func (ctx *Context) PushStyleColor(field StyleColorField, color uint32) {
	ctx.PushStyle(ctx.style)
	switch field {
	case StyleColorText:
		ctx.style.TextColor = color
	case StyleColorButton:
		ctx.style.ButtonColor = color
	case StyleColorButtonHovered:
		ctx.style.ButtonHoveredColor = color
	case StyleColorButtonActive:
		ctx.style.ButtonActiveColor = color
	case StyleColorWindowBg:
		ctx.style.WindowBgColor = color
	case StyleColorFrameBg:
		ctx.style.FrameBgColor = color
	}
}

// PushStyle temporarily replaces the whole style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style { return ctx.style }
