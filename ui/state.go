package ui

// StateStore persists widget state between frames.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is an in-memory StateStore.
type MapStateStore map[ID]any

// Get retrieves a value from the store.
func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value.
func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

// Delete removes a value.
func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState retrieves typed state, or defaultVal if the state is missing
// or holds another type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// DeleteState removes state.
func DeleteState(ctx *Context, id ID) {
	ctx.stateStore.Delete(id)
}

// StatePtr returns the state under id as a pointer, creating it with init
// on first use. Writes through the pointer persist.
func StatePtr[T any](ctx *Context, id ID, init func() T) *T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if p, ok := v.(*T); ok {
			return p
		}
	}
	p := new(T)
	if init != nil {
		*p = init()
	}
	ctx.stateStore.Set(id, p)
	return p
}
