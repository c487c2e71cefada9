package app

// EventType identifies the kind of an input or window event.
type EventType int

const (
	EventInvalid EventType = iota
	EventKeyDown
	EventKeyUp
	EventChar
	EventMouseDown
	EventMouseUp
	EventMouseScroll
	EventMouseMove
	EventMouseEnter
	EventMouseLeave
	EventResized
	EventIconified
	EventRestored
	EventFocused
	EventUnfocused
	EventQuitRequested
)

var eventTypeNames = [...]string{
	EventInvalid:       "invalid",
	EventKeyDown:       "key_down",
	EventKeyUp:         "key_up",
	EventChar:          "char",
	EventMouseDown:     "mouse_down",
	EventMouseUp:       "mouse_up",
	EventMouseScroll:   "mouse_scroll",
	EventMouseMove:     "mouse_move",
	EventMouseEnter:    "mouse_enter",
	EventMouseLeave:    "mouse_leave",
	EventResized:       "resized",
	EventIconified:     "iconified",
	EventRestored:      "restored",
	EventFocused:       "focused",
	EventUnfocused:     "unfocused",
	EventQuitRequested: "quit_requested",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventTypeNames) {
		return "invalid"
	}
	return eventTypeNames[t]
}

// Key is a keyboard key code. Values follow the GLFW key codes.
type Key int

const (
	KeyInvalid      Key = 0
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key9            Key = 57
	KeyA            Key = 65
	KeyC            Key = 67
	KeyS            Key = 83
	KeyV            Key = 86
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyF1           Key = 290
	KeyF12          Key = 301
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
)

// Modifier is a bit set of held modifier keys. Bits follow GLFW.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonInvalid MouseButton = -1
	MouseButtonLeft    MouseButton = 0
	MouseButtonRight   MouseButton = 1
	MouseButtonMiddle  MouseButton = 2
)

// Event is a raw input or window event. Only the fields relevant to Type
// are meaningful; sizes and FrameCount are always set.
type Event struct {
	Type              EventType
	FrameCount        uint64
	Key               Key
	Char              rune
	KeyRepeat         bool
	Modifiers         Modifier
	MouseButton       MouseButton
	MouseX            float32
	MouseY            float32
	ScrollX           float32
	ScrollY           float32
	WindowWidth       int
	WindowHeight      int
	FramebufferWidth  int
	FramebufferHeight int
}
