package ui

import "hash/fnv"

// ID identifies a window or widget. IDs are stable across frames as long
// as the label and the ID stack are the same.
type ID uint64

// GetID hashes label into the current ID scope. A "##suffix" in a label
// is hashed but not displayed, so "OK##a" and "OK##b" are distinct.
func (ctx *Context) GetID(label string) ID {
	return hashID(ctx.CurrentID(), label)
}

func hashID(parent ID, label string) ID {
	h := fnv.New64a()
	var seed [8]byte
	for i := range seed {
		seed[i] = byte(uint64(parent) >> (8 * i))
	}
	h.Write(seed[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// PushID opens a nested ID scope, typically around widgets in a loop.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt opens a nested ID scope from an integer.
func (ctx *Context) PushIDInt(n int) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(uint64(n) >> (8 * i))
	}
	ctx.PushID(string(buf[:]))
}

// PopID closes the innermost ID scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the innermost scope ID, or 0 at the root.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}

// displayLabel strips an ID suffix introduced by "##".
func displayLabel(label string) string {
	for i := 0; i+1 < len(label); i++ {
		if label[i] == '#' && label[i+1] == '#' {
			return label[:i]
		}
	}
	return label
}
