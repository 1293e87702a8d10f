// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cell

// Rect is an axis-aligned rectangle on a Surface. X,Y is the top-left
// corner; W,H the size in cells.
type Rect struct {
	X, Y, W, H int
}

// NewRect builds a rectangle from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the cell at (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of r and o. Disjoint rectangles produce an
// empty result.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// Clamp fits r inside bounds: the size is capped to the bounds size and the
// position moved the minimal distance needed so the result lies fully within
// bounds. Regions that already fit come back unchanged.
func (r Rect) Clamp(bounds Rect) Rect {
	w := min(r.W, bounds.W)
	h := min(r.H, bounds.H)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{
		X: clamp(r.X, bounds.X, bounds.Right()-w),
		Y: clamp(r.Y, bounds.Y, bounds.Bottom()-h),
		W: w,
		H: h,
	}
}

// Inner shrinks the rectangle by margin cells on every side. A margin that
// consumes the rectangle yields an empty result at its center.
func (r Rect) Inner(margin int) Rect {
	out := Rect{
		X: r.X + margin,
		Y: r.Y + margin,
		W: r.W - 2*margin,
		H: r.H - 2*margin,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// LerpRect interpolates between two rectangles. t outside [0,1] is clamped.
func LerpRect(from, to Rect, t float64) Rect {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return Rect{
		X: lerpInt(from.X, to.X, t),
		Y: lerpInt(from.Y, to.Y, t),
		W: lerpInt(from.W, to.W, t),
		H: lerpInt(from.H, to.H, t),
	}
}

func lerpInt(a, b int, t float64) int {
	return int(float64(a) + float64(b-a)*t + 0.5)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
