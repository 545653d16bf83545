// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Identity4 returns the 4×4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix4 builds a Matrix4 from its sixteen components given in row-major order.
func NewMatrix4(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float64,
) Matrix4 {
	return Matrix4{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

// Translation returns a matrix that translates by (x, y, z).
func Translation(x, y, z float64) Matrix4 {
	return Matrix4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scale returns a matrix that scales each axis independently.
func Scale(x, y, z float64) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Rotation returns a matrix that rotates by angleDegrees about axis, counter-clockwise
// when looking down the axis toward the origin. The axis is normalized here; a zero
// axis yields the identity.
func Rotation(axis mgl64.Vec3, angleDegrees float64) Matrix4 {
	length := axis.Len()
	if length == 0 {
		return Identity4()
	}
	x, y, z := axis[0]/length, axis[1]/length, axis[2]/length

	a := angleDegrees * math.Pi / 180
	c := math.Cos(a)
	s := math.Sin(a)
	ic := 1 - c

	return Matrix4{
		c + x*x*ic, x*y*ic - z*s, x*z*ic + y*s, 0,
		x*y*ic + z*s, c + y*y*ic, y*z*ic - x*s, 0,
		x*z*ic - y*s, y*z*ic + x*s, c + z*z*ic, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at (row, col). Indices are not checked; both must be in [0,4).
func (m Matrix4) At(row, col int) float64 {
	return m[row*4+col]
}

// Multiply returns the product m·b.
// Complexity: O(64) multiply-adds.
func (m Matrix4) Multiply(b Matrix4) Matrix4 {
	var r Matrix4
	var i, j int // loop iterators
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			r[i*4+j] = m[i*4]*b[j] + m[i*4+1]*b[4+j] + m[i*4+2]*b[8+j] + m[i*4+3]*b[12+j]
		}
	}

	return r
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// MultiplyByTranslation returns m·Translation(x, y, z).
func (m Matrix4) MultiplyByTranslation(x, y, z float64) Matrix4 {
	m[3] += m[0]*x + m[1]*y + m[2]*z
	m[7] += m[4]*x + m[5]*y + m[6]*z
	m[11] += m[8]*x + m[9]*y + m[10]*z
	m[15] += m[12]*x + m[13]*y + m[14]*z

	return m
}

// TransformPoint applies m to the point p (w = 1) and performs the homogeneous divide
// when the resulting w is neither 0 nor 1.
func (m Matrix4) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	x := m[0]*p[0] + m[1]*p[1] + m[2]*p[2] + m[3]
	y := m[4]*p[0] + m[5]*p[1] + m[6]*p[2] + m[7]
	z := m[8]*p[0] + m[9]*p[1] + m[10]*p[2] + m[11]
	w := m[12]*p[0] + m[13]*p[1] + m[14]*p[2] + m[15]
	if w != 0 && w != 1 {
		x /= w
		y /= w
		z /= w
	}

	return mgl64.Vec3{x, y, z}
}

// TransformDirection applies the upper-left 3×3 of m to d, ignoring translation.
func (m Matrix4) TransformDirection(d mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		m[0]*d[0] + m[1]*d[1] + m[2]*d[2],
		m[4]*d[0] + m[5]*d[1] + m[6]*d[2],
		m[8]*d[0] + m[9]*d[1] + m[10]*d[2],
	}
}

// Column returns column col (0..3) as a 3-vector, dropping the last row.
func (m Matrix4) Column(col int) mgl64.Vec3 {
	return mgl64.Vec3{m[col], m[4+col], m[8+col]}
}

// TranslationVector returns the translation column of m.
func (m Matrix4) TranslationVector() mgl64.Vec3 {
	return m.Column(3)
}

// Upper3 returns the upper-left 3×3 block of m.
func (m Matrix4) Upper3() Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// EqualApprox reports whether every element of m and b differ by at most tol.
func (m Matrix4) EqualApprox(b Matrix4, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-b[i]) > tol {
			return false
		}
	}

	return true
}
