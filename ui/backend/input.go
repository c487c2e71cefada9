package backend

import (
	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/ui"
)

// HandleEvent feeds one shell event into in. Mouse positions arrive in
// window coordinates and are scaled to framebuffer pixels, which is the
// space the UI lays out in. Returns false for events the UI ignores.
func HandleEvent(in *ui.InputState, ev *app.Event) bool {
	switch ev.Type {
	case app.EventMouseMove, app.EventMouseEnter:
		in.MouseInWindow = true
		in.SetMousePos(framebufferPos(ev))
	case app.EventMouseLeave:
		in.MouseInWindow = false
		in.SetMousePos(-1e6, -1e6)
	case app.EventMouseDown, app.EventMouseUp:
		b, ok := mouseButton(ev.MouseButton)
		if !ok {
			return false
		}
		in.SetMousePos(framebufferPos(ev))
		in.SetMouseButton(b, ev.Type == app.EventMouseDown)
		setModifiers(in, ev.Modifiers)
	case app.EventMouseScroll:
		in.AddMouseWheel(ev.ScrollX, ev.ScrollY)
	case app.EventKeyDown, app.EventKeyUp:
		setModifiers(in, ev.Modifiers)
		k := key(ev.Key)
		if k == ui.KeyNone {
			return false
		}
		switch {
		case ev.Type == app.EventKeyUp:
			in.SetKey(k, false)
		case ev.KeyRepeat:
			in.RepeatKey(k)
		default:
			in.SetKey(k, true)
		}
	case app.EventChar:
		if ev.Char < ' ' || ev.Char == 0x7F {
			return false
		}
		in.AddInputChar(ev.Char)
	case app.EventUnfocused:
		// Releases are lost while unfocused.
		for b := ui.MouseButton(0); b < ui.MouseButtonCount; b++ {
			in.SetMouseButton(b, false)
		}
		for k := ui.KeyNone + 1; k < ui.KeyCount; k++ {
			in.SetKey(k, false)
		}
		setModifiers(in, 0)
	default:
		return false
	}
	return true
}

func framebufferPos(ev *app.Event) (x, y float32) {
	x, y = ev.MouseX, ev.MouseY
	if ev.WindowWidth > 0 && ev.WindowHeight > 0 {
		x *= float32(ev.FramebufferWidth) / float32(ev.WindowWidth)
		y *= float32(ev.FramebufferHeight) / float32(ev.WindowHeight)
	}
	return x, y
}

func setModifiers(in *ui.InputState, m app.Modifier) {
	in.ModShift = m&app.ModShift != 0
	in.ModCtrl = m&app.ModCtrl != 0
	in.ModAlt = m&app.ModAlt != 0
	in.ModSuper = m&app.ModSuper != 0
}

func mouseButton(b app.MouseButton) (ui.MouseButton, bool) {
	switch b {
	case app.MouseButtonLeft:
		return ui.MouseButtonLeft, true
	case app.MouseButtonRight:
		return ui.MouseButtonRight, true
	case app.MouseButtonMiddle:
		return ui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

// key maps shell keys to UI keys.
func key(k app.Key) ui.Key {
	switch k {
	case app.KeyTab:
		return ui.KeyTab
	case app.KeyLeft:
		return ui.KeyLeft
	case app.KeyRight:
		return ui.KeyRight
	case app.KeyUp:
		return ui.KeyUp
	case app.KeyDown:
		return ui.KeyDown
	case app.KeyPageUp:
		return ui.KeyPageUp
	case app.KeyPageDown:
		return ui.KeyPageDown
	case app.KeyHome:
		return ui.KeyHome
	case app.KeyEnd:
		return ui.KeyEnd
	case app.KeyInsert:
		return ui.KeyInsert
	case app.KeyDelete:
		return ui.KeyDelete
	case app.KeyBackspace:
		return ui.KeyBackspace
	case app.KeySpace:
		return ui.KeySpace
	case app.KeyEnter:
		return ui.KeyEnter
	case app.KeyEscape:
		return ui.KeyEscape
	case app.KeyA:
		return ui.KeyA
	case app.KeyC:
		return ui.KeyC
	case app.KeyV:
		return ui.KeyV
	case app.KeyX:
		return ui.KeyX
	case app.KeyY:
		return ui.KeyY
	case app.KeyZ:
		return ui.KeyZ
	default:
		return ui.KeyNone
	}
}
