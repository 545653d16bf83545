// SPDX-License-Identifier: MIT
// Package geom: sentinel error set.
// Precondition failures surface as ErrInvalidArgument; numerical failures of the
// matrix package (matrix.ErrSingular) are wrapped, never replaced, so callers may
// match either with errors.Is.

package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument signals a precondition violation: point arrays shorter than the
// requested count, a stride below 3, an empty sub-viewport or a nil globe.
var ErrInvalidArgument = errors.New("geom: invalid argument")

// Operation name constants for unified error wrapping.
const (
	opBoxPoints    = "BoundingBox.SetToPoints"
	opBoxSector    = "BoundingBox.SetToSector"
	opSpherePoints = "BoundingSphere.SetToPoints"
	opPick         = "Frustum.SetToModelviewProjectionPick"
)

// geomErrorf wraps err with an operation tag, preserving the original error via %w.
func geomErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
