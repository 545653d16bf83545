// SPDX-License-Identifier: MIT

package geom

// Viewport is a screen-space rectangle in pixels with its origin at the lower left.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// IsEmpty reports whether the viewport has no area.
func (v Viewport) IsEmpty() bool { return v.Width <= 0 || v.Height <= 0 }

// Intersects reports whether v and o overlap. Rectangles sharing only an edge do not
// overlap, and an empty rectangle overlaps nothing.
func (v Viewport) Intersects(o Viewport) bool {
	if v.IsEmpty() || o.IsEmpty() {
		return false
	}

	return v.X < o.X+o.Width && o.X < v.X+v.Width &&
		v.Y < o.Y+o.Height && o.Y < v.Y+v.Height
}
