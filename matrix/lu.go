// SPDX-License-Identifier: MIT

package matrix

import "math"

// luFactors holds an in-place LU decomposition of a 4×4 matrix.
// a stores L below the diagonal (unit diagonal implied) and U on and above it,
// indx records the row permutation, and parity is ±1 for an even/odd number of swaps.
type luFactors struct {
	a      [4][4]float64 // combined L and U
	indx   [4]int        // pivot row chosen at each column
	parity float64       // sign of the permutation
}

// decomposeLU performs Crout LU decomposition with partial pivoting and implicit
// row scaling on m.
// Stage 1 (Validate): find the largest element of each row; an all-zero row means
// the matrix is singular and ok=false is returned.
// Stage 2 (Execute): for each column j compute U above the diagonal, then choose the
// pivot among rows j..3 by scaled magnitude, swap, and divide L below the pivot.
// Stage 3 (Finalize): exactly-zero pivots are replaced with tinyPivot so callers can
// report singularity from the determinant instead of dividing by zero.
// Complexity: O(n³) with n = 4, no allocations.
func decomposeLU(m *Matrix4) (lu luFactors, ok bool) {
	var (
		i, j, k, imax int        // loop indices and pivot row
		big, dum, sum float64    // pivot search and accumulators
		vv            [4]float64 // implicit scaling of each row
	)
	lu.parity = 1
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			lu.a[i][j] = m[i*4+j]
		}
	}

	// Stage 1: implicit scaling
	for i = 0; i < 4; i++ {
		big = 0
		for j = 0; j < 4; j++ {
			if dum = math.Abs(lu.a[i][j]); dum > big {
				big = dum
			}
		}
		if big == 0 {
			return lu, false // all-zero row
		}
		vv[i] = 1 / big
	}

	// Stage 2: Crout's method, column by column
	for j = 0; j < 4; j++ {
		for i = 0; i < j; i++ {
			sum = lu.a[i][j]
			for k = 0; k < i; k++ {
				sum -= lu.a[i][k] * lu.a[k][j]
			}
			lu.a[i][j] = sum
		}

		big = 0
		imax = j
		for i = j; i < 4; i++ {
			sum = lu.a[i][j]
			for k = 0; k < j; k++ {
				sum -= lu.a[i][k] * lu.a[k][j]
			}
			lu.a[i][j] = sum
			if dum = vv[i] * math.Abs(sum); dum >= big {
				big = dum
				imax = i
			}
		}

		if j != imax {
			lu.a[imax], lu.a[j] = lu.a[j], lu.a[imax] // swap rows
			lu.parity = -lu.parity
			vv[imax] = vv[j]
		}
		lu.indx[j] = imax

		// Stage 3: guard exact zero pivots
		if lu.a[j][j] == 0 {
			lu.a[j][j] = tinyPivot
		}

		if j != 3 {
			dum = 1 / lu.a[j][j]
			for i = j + 1; i < 4; i++ {
				lu.a[i][j] *= dum
			}
		}
	}

	return lu, true
}

// determinant returns parity × product of the pivots.
func (lu *luFactors) determinant() float64 {
	d := lu.parity
	for i := 0; i < 4; i++ {
		d *= lu.a[i][i]
	}

	return d
}

// solve overwrites b with x such that A·x = b, where A is the decomposed matrix.
// Forward substitution unscrambles the permutation as it goes and skips the
// leading zeros of b; back substitution then solves against U.
// Complexity: O(n²) with n = 4.
func (lu *luFactors) solve(b *[4]float64) {
	var (
		i, j, ip int
		ii       = -1 // index of the first non-zero element of b
		sum      float64
	)

	// Forward substitution: L·y = P·b
	for i = 0; i < 4; i++ {
		ip = lu.indx[i]
		sum = b[ip]
		b[ip] = b[i]
		if ii >= 0 {
			for j = ii; j < i; j++ {
				sum -= lu.a[i][j] * b[j]
			}
		} else if sum != ZeroSum {
			ii = i
		}
		b[i] = sum
	}

	// Backward substitution: U·x = y
	for i = 3; i >= 0; i-- {
		sum = b[i]
		for j = i + 1; j < 4; j++ {
			sum -= lu.a[i][j] * b[j]
		}
		b[i] = sum / lu.a[i][i]
	}
}

// Determinant returns the determinant of m computed from its LU decomposition.
// A matrix with an all-zero row has determinant 0.
func (m Matrix4) Determinant() float64 {
	lu, ok := decomposeLU(&m)
	if !ok {
		return 0
	}

	return lu.determinant()
}
