// Package xytable is an immediate-mode two-axis table engine: a scrollable
// body of freely placed cells framed by row and column header strips that
// follow the body's scroll offset.
package xytable

// Vec2 is a point, a size or a scroll offset in screen pixels.
type Vec2 struct {
	X, Y float32
}

// Add returns v translated by d.
func (v Vec2) Add(d Vec2) Vec2 { return Vec2{X: v.X + d.X, Y: v.Y + d.Y} }

// Sub returns the displacement from o to v.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Rect is an axis-aligned rectangle: top-left corner plus extent.
// Rectangles with a non-positive extent are empty.
type Rect struct {
	X, Y float32
	W, H float32
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Size returns the extent.
func (r Rect) Size() Vec2 { return Vec2{X: r.W, Y: r.H} }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Inset returns r shrunk by d on every side. The extent never goes
// negative.
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: max(r.W-2*d, 0), H: max(r.H-2*d, 0)}
}

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether r and o share any area. Rectangles that only
// touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// clampf limits v to [lo, hi]. lo wins when the range is inverted.
func clampf(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
