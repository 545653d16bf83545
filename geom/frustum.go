// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/globekit/matrix"
)

// Plane indices inside Frustum. BoundingBox caches one of these as its coherent plane.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
	planeCount
)

// Frustum is a view volume bounded by six planes whose normals point inward, together
// with the viewport it projects onto.
//
// The zero value has six degenerate planes and contains nothing; use NewFrustum.
type Frustum struct {
	planes   [planeCount]Plane
	viewport Viewport
}

// NewFrustum returns the unit frustum: the cube [-1,1]³ with a 1×1 viewport.
func NewFrustum() *Frustum {
	f := &Frustum{}
	f.SetToUnitFrustum()

	return f
}

// SetToUnitFrustum resets f to the cube [-1,1]³ with a 1×1 viewport at the origin.
func (f *Frustum) SetToUnitFrustum() {
	f.planes[PlaneLeft] = NewPlane(1, 0, 0, 1)
	f.planes[PlaneRight] = NewPlane(-1, 0, 0, 1)
	f.planes[PlaneBottom] = NewPlane(0, 1, 0, 1)
	f.planes[PlaneTop] = NewPlane(0, -1, 0, 1)
	f.planes[PlaneNear] = NewPlane(0, 0, -1, 1)
	f.planes[PlaneFar] = NewPlane(0, 0, 1, 1)
	f.viewport = Viewport{Width: 1, Height: 1}
}

// Left returns the left plane.
func (f *Frustum) Left() Plane { return f.planes[PlaneLeft] }

// Right returns the right plane.
func (f *Frustum) Right() Plane { return f.planes[PlaneRight] }

// Bottom returns the bottom plane.
func (f *Frustum) Bottom() Plane { return f.planes[PlaneBottom] }

// Top returns the top plane.
func (f *Frustum) Top() Plane { return f.planes[PlaneTop] }

// Near returns the near plane.
func (f *Frustum) Near() Plane { return f.planes[PlaneNear] }

// Far returns the far plane.
func (f *Frustum) Far() Plane { return f.planes[PlaneFar] }

// Planes returns a copy of all six planes, indexed by PlaneLeft..PlaneFar.
func (f *Frustum) Planes() [6]Plane { return f.planes }

// Viewport returns the screen rectangle the frustum corresponds to.
func (f *Frustum) Viewport() Viewport { return f.viewport }

// SetToModelviewProjection derives the frustum of a camera, expressed in model
// coordinates.
// Blueprint:
//
//	Stage 1 (Extract): clip planes in eye space from the projection rows r1..r4:
//	                   left = r4+r1, right = r4−r1, bottom = r4+r2, top = r4−r2,
//	                   near = r4+r3, far = r4−r3; each normalized.
//	Stage 2 (Transform): multiply every plane by the transpose of modelview, which
//	                   carries eye-space planes into model space.
//
// Complexity: O(1).
func (f *Frustum) SetToModelviewProjection(projection, modelview matrix.Matrix4, viewport Viewport) {
	p := &projection

	// Stage 1: row extraction
	f.planes[PlaneLeft].Set(p[12]+p[0], p[13]+p[1], p[14]+p[2], p[15]+p[3])
	f.planes[PlaneRight].Set(p[12]-p[0], p[13]-p[1], p[14]-p[2], p[15]-p[3])
	f.planes[PlaneBottom].Set(p[12]+p[4], p[13]+p[5], p[14]+p[6], p[15]+p[7])
	f.planes[PlaneTop].Set(p[12]-p[4], p[13]-p[5], p[14]-p[6], p[15]-p[7])
	f.planes[PlaneNear].Set(p[12]+p[8], p[13]+p[9], p[14]+p[10], p[15]+p[11])
	f.planes[PlaneFar].Set(p[12]-p[8], p[13]-p[9], p[14]-p[10], p[15]-p[11])

	// Stage 2: eye space -> model space
	f.Transform(modelview.Transpose())
	f.viewport = viewport
}

// SetToModelviewProjectionPick derives the narrow frustum that projects onto
// subViewport, a region of viewport, typically a few pixels around a cursor.
// Blueprint:
//
//	Stage 1 (Validate): subViewport must have positive area.
//	Stage 2 (Unproject): the four sub-viewport corners at the near and far clip
//	                   depths through (projection·modelview)⁻¹, giving eight
//	                   model-space corners.
//	Stage 3 (Build): each plane from the cross product of two edges of its face,
//	                   oriented so the centroid of the eight corners lies on its
//	                   positive side.
//
// Errors:
//   - ErrInvalidArgument when subViewport or viewport is empty.
//   - matrix.ErrSingular (wrapped) when projection·modelview has no inverse or a
//     corner maps to infinity.
//
// f is left unchanged on error.
func (f *Frustum) SetToModelviewProjectionPick(projection, modelview matrix.Matrix4, viewport, subViewport Viewport) error {
	// Stage 1: validate
	if subViewport.IsEmpty() || viewport.IsEmpty() {
		return geomErrorf(opPick, fmt.Errorf("viewport %v, sub-viewport %v: %w", viewport, subViewport, ErrInvalidArgument))
	}

	// Stage 2: unproject the corners
	inv, err := projection.Multiply(modelview).Inverse()
	if err != nil {
		return geomErrorf(opPick, err)
	}

	vx, vy := float64(viewport.X), float64(viewport.Y)
	vw, vh := float64(viewport.Width), float64(viewport.Height)
	x0, y0 := float64(subViewport.X), float64(subViewport.Y)
	x1, y1 := x0+float64(subViewport.Width), y0+float64(subViewport.Height)

	// bottom-left, bottom-right, top-right, top-left
	screen := [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}

	var (
		near, far [4]mgl64.Vec3
		centroid  mgl64.Vec3
		i         int // loop iterator
		ok        bool
	)
	for i = 0; i < 4; i++ {
		near[i], far[i], ok = inv.UnProject(screen[i][0], screen[i][1], vx, vy, vw, vh)
		if !ok {
			return geomErrorf(opPick, fmt.Errorf("corner %d at infinity: %w", i, matrix.ErrSingular))
		}
		centroid = centroid.Add(near[i]).Add(far[i])
	}
	centroid = centroid.Mul(1.0 / 8)

	// Stage 3: planes through three corners of each face
	const bl, br, tr, tl = 0, 1, 2, 3
	f.planes[PlaneLeft] = planeThrough(near[bl], near[tl], far[bl], centroid)
	f.planes[PlaneRight] = planeThrough(near[br], far[br], near[tr], centroid)
	f.planes[PlaneBottom] = planeThrough(near[bl], far[bl], near[br], centroid)
	f.planes[PlaneTop] = planeThrough(near[tl], near[tr], far[tl], centroid)
	f.planes[PlaneNear] = planeThrough(near[bl], near[br], near[tl], centroid)
	f.planes[PlaneFar] = planeThrough(far[bl], far[tl], far[br], centroid)
	f.viewport = subViewport

	return nil
}

// planeThrough returns the plane through a, b and c whose positive side holds ref.
func planeThrough(a, b, c, ref mgl64.Vec3) Plane {
	n := b.Sub(a).Cross(c.Sub(a))
	p := NewPlane(n[0], n[1], n[2], -n.Dot(a))
	if p.Dot(ref) < 0 {
		p.Negate()
	}

	return p
}

// Transform multiplies every plane's coefficient vector by m; see Plane.Transform.
func (f *Frustum) Transform(m matrix.Matrix4) {
	for i := range f.planes {
		f.planes[i].Transform(m)
	}
}

// ContainsPoint reports whether p lies strictly inside all six planes. Points on the
// boundary are outside.
func (f *Frustum) ContainsPoint(p mgl64.Vec3) bool {
	for i := range f.planes {
		if f.planes[i].Dot(p) <= 0 {
			return false
		}
	}

	return true
}

// IntersectsSegment reports whether the segment a-b may intersect the frustum.
// Blueprint:
//
//	Stage 1 (Accept): either endpoint inside.
//	Stage 2 (Per plane): reject when both endpoints are strictly behind the plane;
//	                     accept when the segment crosses the plane within [0,1].
//
// The test is conservative: a segment crossing one plane outside the frustum's
// other bounds is still reported as intersecting.
func (f *Frustum) IntersectsSegment(a, b mgl64.Vec3) bool {
	// Stage 1: trivial accept
	if f.ContainsPoint(a) || f.ContainsPoint(b) {
		return true
	}
	if a == b {
		return false
	}

	// Stage 2: per plane reject or crossing
	var da, db, t float64
	for i := range f.planes {
		da = f.planes[i].Dot(a)
		db = f.planes[i].Dot(b)
		if da < 0 && db < 0 {
			return false
		}
		if da == 0 && db == 0 {
			return true // lies in the plane
		}
		if da == db {
			continue // parallel to the plane
		}
		t = da / (da - db)
		if t >= 0 && t <= 1 {
			return true
		}
	}

	return false
}

// IntersectsViewport reports whether v overlaps the frustum's viewport.
func (f *Frustum) IntersectsViewport(v Viewport) bool {
	return f.viewport.Intersects(v)
}

// IntersectsBox reports whether b may intersect the frustum. It updates b's coherent
// plane; see BoundingBox.IntersectsFrustum.
func (f *Frustum) IntersectsBox(b *BoundingBox) bool {
	return b.IntersectsFrustum(f)
}

// IntersectsSphere reports whether s may intersect the frustum.
func (f *Frustum) IntersectsSphere(s BoundingSphere) bool {
	return s.IntersectsFrustum(f)
}
