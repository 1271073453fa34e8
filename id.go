package xytable

import (
	"encoding/binary"
	"hash/fnv"
)

// ID names a widget across frames. It is derived from the widget's label
// and the labels of the scopes enclosing it, so the same call path yields
// the same ID every frame regardless of what else is drawn.
type ID uint64

// GetID returns the ID for label inside the current scope. Labels must be
// unique within a scope; tables use their own id as the scope of their
// three regions.
func (ctx *Context) GetID(label string) ID {
	var parent [8]byte
	binary.LittleEndian.PutUint64(parent[:], uint64(ctx.CurrentID()))

	h := fnv.New64a()
	h.Write(parent[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// PushID opens a scope named label. Every GetID until the matching PopID
// is relative to it.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID closes the innermost scope.
func (ctx *Context) PopID() {
	if n := len(ctx.idStack); n > 0 {
		ctx.idStack = ctx.idStack[:n-1]
	}
}

// CurrentID returns the innermost scope's ID, or zero at the root.
func (ctx *Context) CurrentID() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return 0
}
