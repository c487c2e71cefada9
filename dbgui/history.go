package dbgui

import "github.com/go-theft-auto/samples/gfx"

const historyLen = 120

// statsHistory keeps per-frame counters for the stats plots.
type statsHistory struct {
	draws     [historyLen]float32
	elements  [historyLen]float32
	frameMS   [historyLen]float32
	next      int
	n         int
	lastFrame uint64
}

// push records s once per committed frame; repeated calls for the same
// frame are ignored.
func (h *statsHistory) push(s gfx.FrameStats, dt float32) {
	if s.Frame == 0 || s.Frame == h.lastFrame {
		return
	}
	h.lastFrame = s.Frame
	h.draws[h.next] = float32(s.Draws)
	h.elements[h.next] = float32(s.Elements)
	h.frameMS[h.next] = dt * 1000
	h.next = (h.next + 1) % historyLen
	h.n = min(h.n+1, historyLen)
}

// values returns a copy of the recorded samples of ring, oldest first.
func (h *statsHistory) values(ring *[historyLen]float32) []float32 {
	out := make([]float32, h.n)
	start := (h.next - h.n + historyLen) % historyLen
	for i := range out {
		out[i] = ring[(start+i)%historyLen]
	}
	return out
}
