package ui

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas geometry of the built-in font.
const (
	AtlasSize  = 128
	atlasCols  = 16
	firstGlyph = ' '
	lastGlyph  = '~'
	whiteSize  = 4
)

// Font is a bitmap font atlas rasterized from basicfont.Face7x13 with a
// solid white block used by untextured primitives. Pixels are RGBA8 with
// white color and glyph coverage in alpha.
type Font struct {
	face       font.Face
	Pixels     []byte
	Advance    float32
	LineHeight float32
	Ascent     float32
	glyphs     [lastGlyph - firstGlyph + 1][4]float32
	white      [2]float32
}

// NewFont rasterizes the printable ASCII range into an AtlasSize square atlas.
func NewFont() *Font {
	var face font.Face = basicfont.Face7x13
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	cellH := ascent + m.Descent.Ceil()
	adv, _ := face.GlyphAdvance('M')
	cellW := adv.Ceil()

	img := image.NewNRGBA(image.Rect(0, 0, AtlasSize, AtlasSize))
	f := &Font{
		face:       face,
		Advance:    float32(cellW),
		LineHeight: float32(cellH),
		Ascent:     float32(ascent),
	}
	const size = float32(AtlasSize)
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		i := int(r - firstGlyph)
		cx, cy := (i%atlasCols)*cellW, (i/atlasCols)*cellH
		dr, mask, maskp, _, ok := face.Glyph(fixed.P(cx, cy+ascent), r)
		if !ok {
			continue
		}
		draw.DrawMask(img, dr, image.White, image.Point{}, mask, maskp, draw.Over)
		f.glyphs[i] = [4]float32{
			float32(cx) / size, float32(cy) / size,
			float32(cx+cellW) / size, float32(cy+cellH) / size,
		}
	}

	wr := image.Rect(AtlasSize-whiteSize, AtlasSize-whiteSize, AtlasSize, AtlasSize)
	draw.Draw(img, wr, image.White, image.Point{}, draw.Src)
	center := (float32(AtlasSize) - whiteSize/2) / size
	f.white = [2]float32{center, center}

	f.Pixels = img.Pix
	return f
}

// GlyphUV returns the atlas rectangle of r; unknown runes map to '?'.
func (f *Font) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	r = asciiFallback(r)
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	g := f.glyphs[r-firstGlyph]
	return g[0], g[1], g[2], g[3]
}

// WhiteUV returns a texel coordinate inside the solid white block.
func (f *Font) WhiteUV() [2]float32 { return f.white }

// Measure returns the pixel size of a single line of text.
func (f *Font) Measure(text string) Vec2 {
	w := font.MeasureString(f.face, text)
	return Vec2{X: float32(w.Ceil()), Y: f.LineHeight}
}

// asciiFallback maps common symbols onto the ASCII range of the atlas.
func asciiFallback(r rune) rune {
	if r >= firstGlyph && r <= lastGlyph {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘', '×':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
