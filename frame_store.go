package xytable

// FrameStore keeps widget state between frames, keyed by widget ID. An
// entry survives as long as its widget is drawn every frame; one frame
// after the widget stops being drawn the entry is forgotten.
//
// Each Context owns the stores of its widgets, so two engines never share
// scroll positions.
type FrameStore[T any] struct {
	entries map[ID]*frameEntry[T]
	frame   uint64
}

type frameEntry[T any] struct {
	value T
	seen  uint64 // last frame the entry was requested
}

// NewFrameStore returns an empty store at frame zero.
func NewFrameStore[T any]() *FrameStore[T] {
	return &FrameStore[T]{entries: make(map[ID]*frameEntry[T])}
}

// Get returns the state for id, creating it from init on first use, and
// marks it as seen in the current frame. The pointer stays valid until
// the entry is forgotten.
func (s *FrameStore[T]) Get(id ID, init T) *T {
	e, ok := s.entries[id]
	if !ok {
		e = &frameEntry[T]{value: init}
		s.entries[id] = e
	}
	e.seen = s.frame
	return &e.value
}

// Lookup returns the state for id, or nil. It does not mark the entry.
func (s *FrameStore[T]) Lookup(id ID) *T {
	if e, ok := s.entries[id]; ok {
		return &e.value
	}
	return nil
}

// Delete forgets the state for id.
func (s *FrameStore[T]) Delete(id ID) {
	delete(s.entries, id)
}

// Advance starts the next frame and forgets entries that were not seen
// during the frame that just ended.
func (s *FrameStore[T]) Advance() {
	s.frame++
	for id, e := range s.entries {
		if e.seen+1 < s.frame {
			delete(s.entries, id)
		}
	}
}

// Frame returns the current frame number.
func (s *FrameStore[T]) Frame() uint64 { return s.frame }

// Len returns the number of live entries.
func (s *FrameStore[T]) Len() int { return len(s.entries) }
