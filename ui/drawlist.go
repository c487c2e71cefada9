package ui

import (
	"sync"

	"github.com/chewxy/math32"
)

// maxVertsPerCmd keeps relative uint16 indices addressable.
const maxVertsPerCmd = 1 << 16

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates primitives for a frame, batched into commands by
// texture and clip rectangle. A new command also starts before the
// vertex count of the current one would overflow uint16 indices.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	// WhiteUV is the texel used by untextured primitives.
	WhiteUV [2]float32

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// Clear resets the DrawList keeping its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// Empty reports whether nothing was drawn.
func (dl *DrawList) Empty() bool { return len(dl.IdxBuffer) == 0 }

// PushClipRect intersects the current clip rectangle with (x1,y1)-(x2,y2).
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	dl.currentClip = [4]float32{
		math32.Max(x1, c[0]), math32.Max(y1, c[1]),
		math32.Min(x2, c[2]), math32.Min(y2, c[3]),
	}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the current clip rectangle as x1, y1, x2, y2.
func (dl *DrawList) ClipRect() [4]float32 { return dl.currentClip }

// SetTexture selects the texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// reserve makes room for n vertices in the current command and returns
// the relative index of the first one.
func (dl *DrawList) reserve(n int) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+n > maxVertsPerCmd {
		dl.splitDraw()
	}
	return uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
}

func (dl *DrawList) addQuad(x0, y0, x1, y1, x2, y2, x3, y3 float32, uv [4][2]float32, color uint32) {
	idx := dl.reserve(4)
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: uv[0], Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: uv[1], Color: color},
		Vertex{Pos: [2]float32{x2, y2}, TexCoord: uv[2], Color: color},
		Vertex{Pos: [2]float32{x3, y3}, TexCoord: uv[3], Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

func (dl *DrawList) whiteQuadUV() [4][2]float32 {
	w := dl.WhiteUV
	return [4][2]float32{w, w, w, w}
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.addQuad(x, y, x+w, y, x+w, y+h, x, y+h, dl.whiteQuadUV(), color)
}

// AddRectOutline draws a rectangle border of the given thickness.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dx, dy := x2-x1, y2-y1
	inv := float32(1)
	if l := math32.Hypot(dx, dy); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5
	dl.addQuad(x1+nx, y1+ny, x2+nx, y2+ny, x2-nx, y2-ny, x1-nx, y1-ny, dl.whiteQuadUV(), color)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx := dl.reserve(3)
	w := dl.WhiteUV
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: w, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, TexCoord: w, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, TexCoord: w, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// AddImage draws a textured rectangle with the given uv corners.
func (dl *DrawList) AddImage(textureID uint32, x, y, w, h float32, uv0, uv1 Vec2, tint uint32) {
	if tint&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	prev := dl.textureID
	dl.SetTexture(textureID)
	dl.addQuad(x, y, x+w, y, x+w, y+h, x, y+h, [4][2]float32{
		{uv0.X, uv0.Y}, {uv1.X, uv0.Y}, {uv1.X, uv1.Y}, {uv0.X, uv1.Y},
	}, tint)
	dl.SetTexture(prev)
}

// AddText draws a single line of text from the font atlas, which is
// texture 0. Returns the x coordinate after the last glyph.
func (dl *DrawList) AddText(f *Font, x, y float32, text string, color uint32) float32 {
	if color&0xFF000000 == 0 || text == "" {
		return x
	}
	prev := dl.textureID
	dl.SetTexture(0)
	for _, r := range text {
		if r != ' ' {
			u0, v0, u1, v1 := f.GlyphUV(r)
			dl.addQuad(x, y, x+f.Advance, y, x+f.Advance, y+f.LineHeight, x, y+f.LineHeight,
				[4][2]float32{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}, color)
		}
		x += f.Advance
	}
	dl.SetTexture(prev)
	return x
}

// Finalize closes the last command and drops empty ones. It is called
// once, after the last primitive.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
