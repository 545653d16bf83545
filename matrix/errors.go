// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. Nothing in this package
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with matrixErrorf(op, ErrX) at the facade;
// callers still match with errors.Is.

var (
	// ErrSingular is returned when the LU determinant magnitude falls below
	// SingularThreshold, or when a row of the source matrix is entirely zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidArgument signals a precondition violation at the call site:
	// point arrays shorter than the requested count, a stride below 3,
	// non-positive projection parameters and the like.
	ErrInvalidArgument = errors.New("matrix: invalid argument")
)

// Operation name constants for unified error wrapping.
const (
	opInverse     = "Inverse"
	opCovariance  = "CovarianceOfPoints"
	opPerspective = "Perspective"
	opInverse3    = "Matrix3.Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
