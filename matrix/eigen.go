// SPDX-License-Identifier: MIT
// Eigen extracts the eigenvectors of the symmetric 3×3 held in the upper-left
// corner of a Matrix4 using cyclic Jacobi rotations.
package matrix

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// ExtractEigenvectors returns the three eigenvectors of the symmetric 3×3 stored in
// the upper-left of m, each scaled to a length equal to its eigenvalue and ordered
// from the largest to the smallest eigenvalue magnitude.
//
// ok is false when the block is not symmetric. The check compares the stored
// representation exactly (m12 == m21, m13 == m31, m23 == m32); covariance matrices
// built by CovarianceOfPoints always pass it.
//
// An eigenvector whose eigenvalue is zero comes back as the zero vector; use
// EigenBasis when unit axes are required.
func (m Matrix4) ExtractEigenvectors() (vectors [3]mgl64.Vec3, ok bool) {
	basis, values, ok := m.EigenBasis()
	if !ok {
		return vectors, false
	}
	for i := 0; i < 3; i++ {
		vectors[i] = basis[i].Mul(values[i])
	}

	return vectors, true
}

// EigenBasis performs the same decomposition as ExtractEigenvectors but returns unit
// eigenvectors together with their eigenvalues, ordered by descending magnitude.
// Blueprint:
//
//	Stage 1 (Validate): exact symmetry of the stored 3×3.
//	Stage 2 (Execute): annihilate (1,2), (1,3), (2,3) in turn with Givens rotations,
//	                   accumulating them into the basis r, until every off-diagonal
//	                   magnitude is below EigenThreshold or MaxEigenSweeps have run.
//	Stage 3 (Finalize): read eigenvalues from the diagonal, columns of r are the
//	                   eigenvectors; sort by |eigenvalue| descending.
//
// Complexity: O(MaxEigenSweeps) constant work; no allocations beyond the sort.
func (m Matrix4) EigenBasis() (basis [3]mgl64.Vec3, values [3]float64, ok bool) {
	// Stage 1: symmetry check on the stored representation
	if m[1] != m[4] || m[2] != m[8] || m[6] != m[9] {
		return basis, values, false
	}

	// Stage 2: Jacobi sweeps
	var (
		m11, m12, m13 = m[0], m[1], m[2]
		m22, m23      = m[5], m[6]
		m33           = m[10]
		r             = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
		c, s, t, temp float64
		sweep, i      int
	)
	for sweep = 0; sweep < MaxEigenSweeps; sweep++ {
		if math.Abs(m12) < EigenThreshold && math.Abs(m13) < EigenThreshold && math.Abs(m23) < EigenThreshold {
			break // converged
		}

		// annihilate (1,2)
		if m12 != 0 {
			c, s, t = jacobiRotation(m11, m22, m12)
			m11 -= t * m12
			m22 += t * m12
			m12 = 0
			temp = c*m13 - s*m23
			m23 = s*m13 + c*m23
			m13 = temp
			for i = 0; i < 3; i++ {
				temp = c*r[i][0] - s*r[i][1]
				r[i][1] = s*r[i][0] + c*r[i][1]
				r[i][0] = temp
			}
		}

		// annihilate (1,3)
		if m13 != 0 {
			c, s, t = jacobiRotation(m11, m33, m13)
			m11 -= t * m13
			m33 += t * m13
			m13 = 0
			temp = c*m12 - s*m23
			m23 = s*m12 + c*m23
			m12 = temp
			for i = 0; i < 3; i++ {
				temp = c*r[i][0] - s*r[i][2]
				r[i][2] = s*r[i][0] + c*r[i][2]
				r[i][0] = temp
			}
		}

		// annihilate (2,3)
		if m23 != 0 {
			c, s, t = jacobiRotation(m22, m33, m23)
			m22 -= t * m23
			m33 += t * m23
			m23 = 0
			temp = c*m12 - s*m13
			m13 = s*m12 + c*m13
			m12 = temp
			for i = 0; i < 3; i++ {
				temp = c*r[i][1] - s*r[i][2]
				r[i][2] = s*r[i][1] + c*r[i][2]
				r[i][1] = temp
			}
		}
	}

	// Stage 3: order by descending eigenvalue magnitude
	diag := [3]float64{m11, m22, m33}
	order := []int{0, 1, 2}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(diag[order[a]]) > math.Abs(diag[order[b]])
	})
	for i = 0; i < 3; i++ {
		col := order[i]
		basis[i] = mgl64.Vec3{r[0][col], r[1][col], r[2][col]}
		values[i] = diag[col]
	}

	return basis, values, true
}

// jacobiRotation returns the cosine, sine and tangent of the rotation that zeroes the
// off-diagonal element apq of the 2×2 symmetric block [[app, apq], [apq, aqq]].
// apq must be non-zero.
func jacobiRotation(app, aqq, apq float64) (c, s, t float64) {
	u := (aqq - app) * 0.5 / apq
	u2 := u * u
	u2p1 := u2 + 1
	if u2p1 != u2 {
		t = 1 / (math.Sqrt(u2p1) + math.Abs(u)) // √(u²+1)−|u| without cancellation
		if u < 0 {
			t = -t
		}
	} else {
		t = 0.5 / u // u² overflowed past 1 in precision
	}
	c = 1 / math.Sqrt(t*t+1)
	s = c * t

	return c, s, t
}
