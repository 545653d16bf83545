// SPDX-License-Identifier: MIT

// Package matrix: fixed-size matrix types and numeric policy constants.
// This file intentionally contains ONLY the type declarations and the constants
// that define the numeric policy of the package. Kernels live in dedicated files
// (lu.go, inverse.go, eigen.go, covariance.go, projection.go).
package matrix

// Matrix4 is a 4×4 matrix of float64 in row-major order.
//
// A Matrix4 represents either a general affine/projective transform or, for the
// orthonormal fast path, a pure rotation+translation whose upper-left 3×3 block is
// orthonormal and whose last row is [0 0 0 1].
//
// Complexity notes: Matrix4 is a 128-byte value; copying is cheap and allocation free.
type Matrix4 [16]float64

// Matrix3 is a 3×3 matrix of float64 in row-major order.
type Matrix3 [9]float64

// SingularThreshold is the determinant magnitude below which a matrix is
// reported as ErrSingular by Inverse/Invert.
const SingularThreshold = 1e-8

// EigenThreshold is the off-diagonal magnitude at which Jacobi sweeps stop.
const EigenThreshold = 1e-10

// MaxEigenSweeps caps the number of cyclic Jacobi sweeps.
// The cap bounds worst-case cost at the expense of exactness on pathological input.
const MaxEigenSweeps = 32

// ZeroSum is the initial accumulator for substitution and reduction loops.
const ZeroSum = 0.0

// tinyPivot replaces an exactly-zero pivot during decomposition so that the
// determinant check, not a division by zero, reports singularity.
const tinyPivot = 1e-20
