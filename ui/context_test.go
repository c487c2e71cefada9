package ui

import "testing"

func TestLayoutPlace(t *testing.T) {
	var l layout
	l.reset(Vec2{10, 20})
	spacing := Vec2{8, 4}

	a := l.place(Vec2{50, 19}, spacing)
	if a != (Rect{X: 10, Y: 20, W: 50, H: 19}) {
		t.Errorf("first item %v", a)
	}
	l.sameLine = true
	b := l.place(Vec2{30, 13}, spacing)
	if b.X != 68 || b.Y != 20 {
		t.Errorf("same-line item at %v,%v, want 68,20", b.X, b.Y)
	}
	c := l.place(Vec2{10, 10}, spacing)
	// The line is as tall as its tallest item.
	if c.X != 10 || c.Y != 43 {
		t.Errorf("next line at %v,%v, want 10,43", c.X, c.Y)
	}
	if l.max != (Vec2{98, 53}) {
		t.Errorf("max = %v", l.max)
	}
}

func TestLayoutHorizontal(t *testing.T) {
	l := layout{horizontal: true}
	l.reset(Vec2{8, 0})
	a := l.place(Vec2{40, 19}, Vec2{0, 0})
	b := l.place(Vec2{40, 19}, Vec2{0, 0})
	if a.Y != b.Y || b.X != 48 {
		t.Errorf("horizontal layout placed %v after %v", b, a)
	}
}

func TestFramerate(t *testing.T) {
	ctx := newContext(NewFont(), DefaultStyle(), make(MapStateStore))
	if ctx.Framerate() != 0 {
		t.Error("no samples should give 0")
	}
	for range 200 {
		ctx.pushFrameTime(0.016)
	}
	if ctx.frameTimeCount != framerateSamples {
		t.Errorf("kept %d samples", ctx.frameTimeCount)
	}
	if fps := ctx.Framerate(); fps < 62 || fps > 63 {
		t.Errorf("Framerate = %f, want ~62.5", fps)
	}
	ctx.pushFrameTime(0)
	if ctx.frameTimeCount != framerateSamples {
		t.Error("zero frame times are ignored")
	}
}

func TestHashID(t *testing.T) {
	if hashID(0, "a") == hashID(0, "b") {
		t.Error("different labels should differ")
	}
	if hashID(1, "a") == hashID(2, "a") {
		t.Error("different parents should differ")
	}
	if hashID(5, "x") != hashID(5, "x") {
		t.Error("hashID must be stable")
	}
}
