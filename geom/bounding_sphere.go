// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BoundingSphere is a sphere with a non-negative radius.
type BoundingSphere struct {
	Center mgl64.Vec3
	Radius float64
}

// NewBoundingSphere returns a sphere at center. A negative radius is clamped to zero.
func NewBoundingSphere(center mgl64.Vec3, radius float64) BoundingSphere {
	return BoundingSphere{Center: center, Radius: math.Max(radius, 0)}
}

// SetToPoints fits s around a point cloud in the interleaved layout of
// matrix.CovarianceOfPoints: the centre is the centroid, the radius the distance to
// the farthest point. The result encloses every point but is not minimal.
//
// Errors:
//   - ErrInvalidArgument when stride < 3, count < 3 or count > len(points).
func (s *BoundingSphere) SetToPoints(points []float64, count, stride int) error {
	if stride < 3 || count < 3 || count > len(points) {
		return geomErrorf(opSpherePoints, fmt.Errorf("count %d stride %d over %d values: %w", count, stride, len(points), ErrInvalidArgument))
	}

	var (
		c   mgl64.Vec3
		n   int
		idx int // array cursor
	)
	for idx = 0; idx+2 < count; idx += stride {
		c = c.Add(mgl64.Vec3{points[idx], points[idx+1], points[idx+2]})
		n++
	}
	c = c.Mul(1 / float64(n))

	var (
		r2, d2 float64
		d      mgl64.Vec3
	)
	for idx = 0; idx+2 < count; idx += stride {
		d = mgl64.Vec3{points[idx], points[idx+1], points[idx+2]}.Sub(c)
		d2 = d.Dot(d)
		if d2 > r2 {
			r2 = d2
		}
	}

	s.Center = c
	s.Radius = math.Sqrt(r2)

	return nil
}

// DistanceTo returns the distance from point to the sphere's surface, or zero when the
// point is inside.
func (s BoundingSphere) DistanceTo(point mgl64.Vec3) float64 {
	return math.Max(point.Sub(s.Center).Len()-s.Radius, 0)
}

// IntersectsFrustum reports whether the sphere may intersect f: the centre's signed
// distance to every plane exceeds -Radius.
func (s BoundingSphere) IntersectsFrustum(f *Frustum) bool {
	for i := range f.planes {
		if f.planes[i].Dot(s.Center) <= -s.Radius {
			return false
		}
	}

	return true
}
