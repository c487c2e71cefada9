package app

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/samples/gfx/glbackend"
)

// Run opens a window with an OpenGL 4.1 core context and drives cb until
// the window is closed, Quit is called or a callback fails.
// It must be called from the main goroutine.
func Run(desc Desc, cb Callbacks) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	desc = desc.withDefaults()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if desc.SampleCount > 1 {
		glfw.WindowHint(glfw.Samples, desc.SampleCount)
	}

	window, err := glfw.CreateWindow(desc.Width, desc.Height, desc.WindowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(*desc.SwapInterval)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	a := newApp(desc, glbackend.New())
	a.width, a.height = window.GetFramebufferSize()
	a.windowWidth, a.windowHeight = window.GetSize()

	w := &glfwWindow{app: a, cb: cb, window: window}
	w.installCallbacks()

	if err := a.init(cb); err != nil {
		return err
	}
	defer a.cleanup(cb)

	last := time.Now()
	for !window.ShouldClose() && !a.quit {
		glfw.PollEvents()
		now := time.Now()
		a.frameDuration = now.Sub(last)
		last = now
		a.width, a.height = window.GetFramebufferSize()
		if err := a.frame(cb); err != nil {
			return err
		}
		window.SwapBuffers()
	}
	return nil
}

// glfwWindow translates GLFW callbacks into Events.
type glfwWindow struct {
	app    *App
	cb     Callbacks
	window *glfw.Window
}

func (w *glfwWindow) installCallbacks() {
	w.window.SetKeyCallback(w.keyCallback)
	w.window.SetCharModsCallback(w.charCallback)
	w.window.SetMouseButtonCallback(w.mouseButtonCallback)
	w.window.SetScrollCallback(w.scrollCallback)
	w.window.SetCursorPosCallback(w.cursorPosCallback)
	w.window.SetCursorEnterCallback(w.cursorEnterCallback)
	w.window.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	w.window.SetSizeCallback(w.sizeCallback)
	w.window.SetIconifyCallback(w.iconifyCallback)
	w.window.SetFocusCallback(w.focusCallback)
	w.window.SetCloseCallback(w.closeCallback)
}

func (w *glfwWindow) dispatch(ev Event) {
	w.app.event(w.cb, &ev)
}

func (w *glfwWindow) mouseEvent(t EventType) Event {
	x, y := w.window.GetCursorPos()
	return Event{Type: t, MouseX: float32(x), MouseY: float32(y), MouseButton: MouseButtonInvalid}
}

func (w *glfwWindow) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	ev := Event{Key: glfwKey(key), Modifiers: Modifier(mods), MouseButton: MouseButtonInvalid}
	switch action {
	case glfw.Press:
		ev.Type = EventKeyDown
	case glfw.Repeat:
		ev.Type = EventKeyDown
		ev.KeyRepeat = true
	case glfw.Release:
		ev.Type = EventKeyUp
	default:
		return
	}
	w.dispatch(ev)
}

func (w *glfwWindow) charCallback(_ *glfw.Window, char rune, mods glfw.ModifierKey) {
	w.dispatch(Event{Type: EventChar, Char: char, Modifiers: Modifier(mods), MouseButton: MouseButtonInvalid})
}

func (w *glfwWindow) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	var ev Event
	switch action {
	case glfw.Press:
		ev = w.mouseEvent(EventMouseDown)
	case glfw.Release:
		ev = w.mouseEvent(EventMouseUp)
	default:
		return
	}
	ev.MouseButton = glfwMouseButton(button)
	ev.Modifiers = Modifier(mods)
	w.dispatch(ev)
}

func (w *glfwWindow) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	ev := w.mouseEvent(EventMouseScroll)
	ev.ScrollX, ev.ScrollY = float32(xoff), float32(yoff)
	w.dispatch(ev)
}

func (w *glfwWindow) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.dispatch(Event{Type: EventMouseMove, MouseX: float32(xpos), MouseY: float32(ypos), MouseButton: MouseButtonInvalid})
}

func (w *glfwWindow) cursorEnterCallback(_ *glfw.Window, entered bool) {
	if entered {
		w.dispatch(w.mouseEvent(EventMouseEnter))
	} else {
		w.dispatch(w.mouseEvent(EventMouseLeave))
	}
}

func (w *glfwWindow) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.app.width, w.app.height = width, height
	w.dispatch(Event{Type: EventResized, MouseButton: MouseButtonInvalid})
}

func (w *glfwWindow) sizeCallback(_ *glfw.Window, width, height int) {
	w.app.windowWidth, w.app.windowHeight = width, height
}

func (w *glfwWindow) iconifyCallback(_ *glfw.Window, iconified bool) {
	if iconified {
		w.dispatch(Event{Type: EventIconified, MouseButton: MouseButtonInvalid})
	} else {
		w.dispatch(Event{Type: EventRestored, MouseButton: MouseButtonInvalid})
	}
}

func (w *glfwWindow) focusCallback(_ *glfw.Window, focused bool) {
	if focused {
		w.dispatch(Event{Type: EventFocused, MouseButton: MouseButtonInvalid})
	} else {
		w.dispatch(Event{Type: EventUnfocused, MouseButton: MouseButtonInvalid})
	}
}

func (w *glfwWindow) closeCallback(_ *glfw.Window) {
	w.dispatch(Event{Type: EventQuitRequested, MouseButton: MouseButtonInvalid})
}

func glfwKey(key glfw.Key) Key {
	if key == glfw.KeyUnknown {
		return KeyInvalid
	}
	return Key(key)
}

func glfwMouseButton(button glfw.MouseButton) MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return MouseButtonLeft
	case glfw.MouseButtonRight:
		return MouseButtonRight
	case glfw.MouseButtonMiddle:
		return MouseButtonMiddle
	default:
		return MouseButtonInvalid
	}
}
