// SPDX-License-Identifier: MIT
// Inverse computes the inverse of a 4×4 matrix using LU decomposition with
// partial pivoting and forward/backward substitution, and provides the O(1)
// inverse of orthonormal rotation+translation transforms.
package matrix

import "math"

// Inverse returns the inverse of m, or ErrSingular when |det(m)| < SingularThreshold.
// Blueprint:
//
//	Stage 1 (Decompose): P·A = L·U via Crout with partial pivoting.
//	Stage 2 (Validate): determinant = parity × Π diag(U); fail when below threshold.
//	Stage 3 (Execute): for each identity column eᵢ, solve L·U·x = P·eᵢ.
//	Stage 4 (Finalize): write each solution x into column i of the result.
//
// Complexity: O(n³) time with n = 4, no allocations.
func (m Matrix4) Inverse() (Matrix4, error) {
	// Stage 1: LU decomposition
	lu, ok := decomposeLU(&m)
	if !ok {
		return Matrix4{}, matrixErrorf(opInverse, ErrSingular)
	}

	// Stage 2: determinant check
	if math.Abs(lu.determinant()) < SingularThreshold {
		return Matrix4{}, matrixErrorf(opInverse, ErrSingular)
	}

	// Stage 3: solve one column at a time
	var (
		inv    Matrix4
		col, i int        // loop indices
		b      [4]float64 // basis vector, overwritten by the solution
	)
	for col = 0; col < 4; col++ {
		b = [4]float64{}
		b[col] = 1
		lu.solve(&b)

		// Stage 4: assemble column col
		for i = 0; i < 4; i++ {
			inv[i*4+col] = b[i]
		}
	}

	return inv, nil
}

// Invert replaces m with its inverse. m is left unchanged when it is singular.
// The receiver is both source and destination, so aliasing is always safe.
func (m *Matrix4) Invert() error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	*m = inv

	return nil
}

// InverseOrthonormal returns the inverse of a rotation+translation transform in O(1):
// the upper-left 3×3 is transposed and the translation becomes t' = -Rᵗ·t.
//
// Precondition: the upper-left 3×3 of m is orthonormal and the last row is [0 0 0 1].
// This is not checked; other input produces a meaningless result. Use Inverse when in doubt.
func (m Matrix4) InverseOrthonormal() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], -(m[0]*m[3] + m[4]*m[7] + m[8]*m[11]),
		m[1], m[5], m[9], -(m[1]*m[3] + m[5]*m[7] + m[9]*m[11]),
		m[2], m[6], m[10], -(m[2]*m[3] + m[6]*m[7] + m[10]*m[11]),
		0, 0, 0, 1,
	}
}

// InvertOrthonormal replaces m with InverseOrthonormal(m). Same precondition.
func (m *Matrix4) InvertOrthonormal() {
	*m = m.InverseOrthonormal()
}
