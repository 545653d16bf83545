// SPDX-License-Identifier: MIT

package geo

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument signals a precondition violation: a grid whose dimensions do not
// match the supplied height or output slices, or an empty sector.
var ErrInvalidArgument = errors.New("geo: invalid argument")

const opGrid = "GeographicToCartesianGrid"

// geoErrorf wraps err with an operation tag, preserving the original error via %w.
func geoErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
