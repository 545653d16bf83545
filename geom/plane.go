// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/globekit/matrix"
)

// unitTolerance is how far from 1 a normal's length may be before it is renormalized.
const unitTolerance = 1e-10

// Plane is the set of points p with Normal·p + Distance = 0. Normal is unit length
// unless the plane is degenerate (zero normal).
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// NewPlane returns the plane x·X + y·Y + z·Z + distance = 0, normalized.
func NewPlane(x, y, z, distance float64) Plane {
	p := Plane{Normal: mgl64.Vec3{x, y, z}, Distance: distance}
	p.normalize()

	return p
}

// Set replaces the plane's coefficients and normalizes it.
func (p *Plane) Set(x, y, z, distance float64) {
	p.Normal = mgl64.Vec3{x, y, z}
	p.Distance = distance
	p.normalize()
}

// Dot returns the signed distance of point v from the plane: positive on the side
// the normal points to.
func (p Plane) Dot(v mgl64.Vec3) float64 {
	return p.Normal[0]*v[0] + p.Normal[1]*v[1] + p.Normal[2]*v[2] + p.Distance
}

// Transform multiplies the plane's coefficient vector (n, d) by m and normalizes the
// result. To move a plane from eye space to model space pass the transpose of the
// modelview matrix.
func (p *Plane) Transform(m matrix.Matrix4) {
	x, y, z, d := p.Normal[0], p.Normal[1], p.Normal[2], p.Distance
	p.Set(
		m[0]*x+m[1]*y+m[2]*z+m[3]*d,
		m[4]*x+m[5]*y+m[6]*z+m[7]*d,
		m[8]*x+m[9]*y+m[10]*z+m[11]*d,
		m[12]*x+m[13]*y+m[14]*z+m[15]*d,
	)
}

// Negate flips the plane's orientation.
func (p *Plane) Negate() {
	p.Normal = p.Normal.Mul(-1)
	p.Distance = -p.Distance
}

// normalize scales normal and distance so the normal has unit length. A zero normal
// and a normal already within unitTolerance of unit length are left alone.
func (p *Plane) normalize() {
	length := p.Normal.Len()
	if length == 0 || math.Abs(length-1) <= unitTolerance {
		return
	}
	p.Normal = p.Normal.Mul(1 / length)
	p.Distance /= length
}
