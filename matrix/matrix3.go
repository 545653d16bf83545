// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Identity3 returns the 3×3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Multiply returns the product m·b.
func (m Matrix3) Multiply(b Matrix3) Matrix3 {
	var r Matrix3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*b[j] + m[i*3+1]*b[3+j] + m[i*3+2]*b[6+j]
		}
	}

	return r
}

// Transpose returns the transpose of m.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// MultiplyVec3 returns m·v.
func (m Matrix3) MultiplyVec3(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Determinant returns the determinant of m by cofactor expansion along the first row.
func (m Matrix3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of m as adjugate / determinant, or ErrSingular when
// |det(m)| < SingularThreshold (the same policy as Matrix4.Inverse).
// Complexity: O(1), closed form.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if math.Abs(det) < SingularThreshold {
		return Matrix3{}, matrixErrorf(opInverse3, ErrSingular)
	}
	inv := 1 / det

	return Matrix3{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,

		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,

		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, nil
}

// Invert replaces m with its inverse; m is unchanged when it is singular.
func (m *Matrix3) Invert() error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	*m = inv

	return nil
}
