package ui

import "testing"

func TestFontMetrics(t *testing.T) {
	f := NewFont()
	if f.Advance != 7 || f.LineHeight != 13 {
		t.Errorf("advance %f line height %f, want 7 and 13", f.Advance, f.LineHeight)
	}
	if len(f.Pixels) != AtlasSize*AtlasSize*4 {
		t.Errorf("atlas has %d bytes", len(f.Pixels))
	}
	if got := f.Measure("abc"); got.X != 21 || got.Y != 13 {
		t.Errorf("Measure = %v", got)
	}
}

func TestFontGlyphs(t *testing.T) {
	f := NewFont()
	a0, b0, a1, b1 := f.GlyphUV('A')
	c0, _, _, _ := f.GlyphUV('B')
	if a0 == c0 {
		t.Error("A and B should not share a cell")
	}
	if a1 <= a0 || b1 <= b0 {
		t.Errorf("degenerate cell %f %f %f %f", a0, b0, a1, b1)
	}

	// The cell of 'A' contains coverage.
	x0, y0 := int(a0*AtlasSize), int(b0*AtlasSize)
	var coverage int
	for y := y0; y < y0+13; y++ {
		for x := x0; x < x0+7; x++ {
			coverage += int(f.Pixels[(y*AtlasSize+x)*4+3])
		}
	}
	if coverage == 0 {
		t.Error("glyph A is empty")
	}

	q0, q1, q2, q3 := f.GlyphUV('?')
	u0, u1, u2, u3 := f.GlyphUV('€')
	if q0 != u0 || q1 != u1 || q2 != u2 || q3 != u3 {
		t.Error("unknown runes should fall back to '?'")
	}
	r0, _, _, _ := f.GlyphUV('►')
	g0, _, _, _ := f.GlyphUV('>')
	if r0 != g0 {
		t.Error("arrow symbols should map to '>'")
	}
}

func TestFontWhiteBlock(t *testing.T) {
	f := NewFont()
	w := f.WhiteUV()
	x, y := int(w[0]*AtlasSize), int(w[1]*AtlasSize)
	i := (y*AtlasSize + x) * 4
	for c := range 4 {
		if f.Pixels[i+c] != 255 {
			t.Fatalf("white texel channel %d = %d", c, f.Pixels[i+c])
		}
	}
}
