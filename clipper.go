package xytable

import "math"

// Span is a run of uniformly pitched items along one axis: item i covers
// [Lead + i*Pitch, Lead + (i+1)*Pitch) in content coordinates. Header items
// and lines are spans, which lets a strip skip everything scrolled away
// without testing each item.
//
//	s := xytable.Span{Count: len(rows), Pitch: rowHeight}
//	first, last := s.Visible(offset.Y, viewport.H)
//	for i := first; i < last; i++ {
//	    // draw row i
//	}
type Span struct {
	Count int
	Pitch float32
	Lead  float32
}

// Length returns the content length covered by the span, lead included.
func (s Span) Length() float32 {
	return s.Lead + float32(max(s.Count, 0))*s.Pitch
}

// Visible returns the index range [first, last) of items that overlap a
// viewport of the given length whose content is displaced by offset.
func (s Span) Visible(offset, viewport float32) (first, last int) {
	if s.Count <= 0 || s.Pitch <= 0 || viewport <= 0 {
		return 0, 0
	}
	top := -offset - s.Lead
	first = int(math.Floor(float64(top / s.Pitch)))
	last = int(math.Ceil(float64((top + viewport) / s.Pitch)))

	first = min(max(first, 0), s.Count)
	last = min(max(last, first), s.Count)
	return first, last
}

// Reveal returns the offset that brings item index fully into a viewport
// of the given length, moving as little as possible. An item already
// visible, or an index out of range, leaves offset unchanged.
func (s Span) Reveal(index int, offset, viewport float32) float32 {
	if index < 0 || index >= s.Count || s.Pitch <= 0 {
		return offset
	}
	start := s.Lead + float32(index)*s.Pitch
	end := start + s.Pitch

	if start < -offset {
		return -start
	}
	if end > -offset+viewport {
		return -(end - viewport)
	}
	return offset
}
