package dbgui

import (
	"testing"

	"github.com/go-theft-auto/samples/gfx"
)

func TestStatsHistory(t *testing.T) {
	var h statsHistory
	h.push(gfx.FrameStats{}, 0.016)
	if h.n != 0 {
		t.Fatal("frame 0 stats must be ignored")
	}
	h.push(gfx.FrameStats{Frame: 1, Draws: 3}, 0.016)
	h.push(gfx.FrameStats{Frame: 1, Draws: 9}, 0.016)
	if h.n != 1 {
		t.Fatalf("repeated frame pushed twice: n = %d", h.n)
	}
	for f := uint64(2); f <= historyLen+5; f++ {
		h.push(gfx.FrameStats{Frame: f, Draws: int(f)}, 0.016)
	}
	vals := h.values(&h.draws)
	if len(vals) != historyLen {
		t.Fatalf("len = %d, want %d", len(vals), historyLen)
	}
	if vals[0] != 6 || vals[len(vals)-1] != historyLen+5 {
		t.Errorf("oldest %f, newest %f", vals[0], vals[len(vals)-1])
	}
}

func TestStatsHistoryValuesAreIndependent(t *testing.T) {
	var h statsHistory
	h.push(gfx.FrameStats{Frame: 1, Draws: 2, Elements: 72}, 0.016)
	draws := h.values(&h.draws)
	elements := h.values(&h.elements)
	if draws[0] != 2 || elements[0] != 72 {
		t.Errorf("draws %v, elements %v", draws, elements)
	}
}

func TestClampScroll(t *testing.T) {
	if v := clampScroll(-5, 100); v != 0 {
		t.Errorf("clampScroll(-5) = %f", v)
	}
	if v := clampScroll(150, 100); v != 100 {
		t.Errorf("clampScroll(150) = %f", v)
	}
	if v := clampScroll(40, 0); v != 0 {
		t.Errorf("clampScroll with nothing to scroll = %f", v)
	}
}
