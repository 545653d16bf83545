// SPDX-License-Identifier: MIT

package tile

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument signals a precondition violation: a non-positive target
// resolution or grid dimension, an empty sector, a pyramid deeper than the key space
// allows, or matrices out of order.
var ErrInvalidArgument = errors.New("tile: invalid argument")

const (
	opPyramid       = "FromTilePyramid"
	opPyramidLevels = "FromTilePyramidLevels"
	opNewSet        = "NewTileMatrixSet"
)

// tileErrorf wraps err with an operation tag, preserving the original error via %w.
func tileErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
