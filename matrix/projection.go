// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Perspective returns an OpenGL-style perspective projection mapping the eye-space
// view volume (looking down -Z) onto the clip cube [-1,1]³.
//
// Errors:
//   - ErrInvalidArgument when fovyDegrees ∉ (0,180), aspect ≤ 0, near ≤ 0 or far ≤ near,
//     and when any of them is NaN.
func Perspective(fovyDegrees, aspect, near, far float64) (Matrix4, error) {
	if !(fovyDegrees > 0 && fovyDegrees < 180) {
		return Matrix4{}, matrixErrorf(opPerspective, fmt.Errorf("field of view %g: %w", fovyDegrees, ErrInvalidArgument))
	}
	if !(aspect > 0) {
		return Matrix4{}, matrixErrorf(opPerspective, fmt.Errorf("aspect %g: %w", aspect, ErrInvalidArgument))
	}
	if !(near > 0 && far > near) {
		return Matrix4{}, matrixErrorf(opPerspective, fmt.Errorf("clip distances near=%g far=%g: %w", near, far, ErrInvalidArgument))
	}

	f := 1 / math.Tan(fovyDegrees*math.Pi/360)
	nf := 1 / (near - far)

	return Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}, nil
}

// LookAt returns a view (modelview) matrix for an eye at eye looking toward center
// with the given up direction. The result is orthonormal, so InverseOrthonormal
// recovers the eye-to-world transform.
func LookAt(eye, center, up mgl64.Vec3) Matrix4 {
	f := normalized(center.Sub(eye)) // forward
	s := normalized(f.Cross(up))     // right
	u := s.Cross(f)                  // recomputed up

	return Matrix4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}

// UnProject maps the screen point (x, y) inside the viewport (vx, vy, vw, vh) to
// model coordinates on the near and far clip planes. m must be the inverse of the
// combined projection·modelview matrix. ok is false for an empty viewport or when a
// point maps to infinity.
func (m Matrix4) UnProject(x, y, vx, vy, vw, vh float64) (near, far mgl64.Vec3, ok bool) {
	if vw <= 0 || vh <= 0 {
		return near, far, false
	}

	// screen -> normalized device coordinates in [-1,1]
	sx := 2*(x-vx)/vw - 1
	sy := 2*(y-vy)/vh - 1

	near, ok = m.transformClip(sx, sy, -1)
	if !ok {
		return near, far, false
	}
	far, ok = m.transformClip(sx, sy, 1)

	return near, far, ok
}

// transformClip applies m to the clip-space point (x, y, z, 1) and divides by w.
func (m Matrix4) transformClip(x, y, z float64) (mgl64.Vec3, bool) {
	w := m[12]*x + m[13]*y + m[14]*z + m[15]
	if w == 0 {
		return mgl64.Vec3{}, false
	}

	return mgl64.Vec3{
		(m[0]*x + m[1]*y + m[2]*z + m[3]) / w,
		(m[4]*x + m[5]*y + m[6]*z + m[7]) / w,
		(m[8]*x + m[9]*y + m[10]*z + m[11]) / w,
	}, true
}

// normalized returns v scaled to unit length, or v unchanged when its length is zero.
func normalized(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}

	return v.Mul(1 / l)
}
