package backend_test

import (
	"testing"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/ui"
	"github.com/go-theft-auto/samples/ui/backend"
)

func TestHandleEventMouse(t *testing.T) {
	in := ui.NewInputState()
	ev := app.Event{
		Type:              app.EventMouseMove,
		MouseX:            10,
		MouseY:            20,
		WindowWidth:       320,
		WindowHeight:      240,
		FramebufferWidth:  640,
		FramebufferHeight: 480,
	}
	backend.HandleEvent(in, &ev)
	if in.MouseX != 20 || in.MouseY != 40 {
		t.Errorf("mouse at %v,%v, want framebuffer 20,40", in.MouseX, in.MouseY)
	}

	ev.Type = app.EventMouseDown
	ev.MouseButton = app.MouseButtonRight
	backend.HandleEvent(in, &ev)
	if !in.MouseClicked(ui.MouseButtonRight) {
		t.Error("right press not recorded")
	}
	ev.Type = app.EventMouseUp
	backend.HandleEvent(in, &ev)
	if in.MouseDown(ui.MouseButtonRight) {
		t.Error("right release not recorded")
	}

	ev.MouseButton = app.MouseButtonInvalid
	if backend.HandleEvent(in, &ev) {
		t.Error("unknown buttons are ignored")
	}

	backend.HandleEvent(in, &app.Event{Type: app.EventMouseScroll, ScrollY: -1})
	if in.MouseWheelY != -1 {
		t.Errorf("wheel %v", in.MouseWheelY)
	}

	backend.HandleEvent(in, &app.Event{Type: app.EventMouseLeave})
	if in.MouseInWindow {
		t.Error("leave should clear MouseInWindow")
	}
}

func TestHandleEventKeys(t *testing.T) {
	in := ui.NewInputState()
	backend.HandleEvent(in, &app.Event{Type: app.EventKeyDown, Key: app.KeyEscape, Modifiers: app.ModCtrl | app.ModShift})
	if !in.KeyPressed(ui.KeyEscape) || !in.ModCtrl || !in.ModShift || in.ModAlt {
		t.Error("key down with modifiers not recorded")
	}
	in.Reset()
	backend.HandleEvent(in, &app.Event{Type: app.EventKeyDown, Key: app.KeyEscape, KeyRepeat: true})
	if in.KeyPressed(ui.KeyEscape) || !in.KeyRepeated(ui.KeyEscape) {
		t.Error("repeat should not count as a new press")
	}
	backend.HandleEvent(in, &app.Event{Type: app.EventKeyUp, Key: app.KeyEscape})
	if in.KeyDown(ui.KeyEscape) {
		t.Error("key up not recorded")
	}
	if backend.HandleEvent(in, &app.Event{Type: app.EventKeyDown, Key: app.KeyF1}) {
		t.Error("unmapped keys are ignored")
	}
}

func TestHandleEventChars(t *testing.T) {
	in := ui.NewInputState()
	backend.HandleEvent(in, &app.Event{Type: app.EventChar, Char: 'a'})
	backend.HandleEvent(in, &app.Event{Type: app.EventChar, Char: '\t'})
	backend.HandleEvent(in, &app.Event{Type: app.EventChar, Char: 'é'})
	if string(in.InputChars) != "aé" {
		t.Errorf("chars %q", string(in.InputChars))
	}
}

func TestHandleEventUnfocusedReleases(t *testing.T) {
	in := ui.NewInputState()
	backend.HandleEvent(in, &app.Event{Type: app.EventMouseDown, MouseButton: app.MouseButtonLeft})
	backend.HandleEvent(in, &app.Event{Type: app.EventKeyDown, Key: app.KeyA})
	backend.HandleEvent(in, &app.Event{Type: app.EventUnfocused})
	if in.AnyMouseDown() || in.KeyDown(ui.KeyA) {
		t.Error("losing focus should release everything")
	}
}
