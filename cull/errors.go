// SPDX-License-Identifier: MIT

package cull

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument signals a selector configured with a nil or empty tile matrix
// set, a nil globe or out-of-range options.
var ErrInvalidArgument = errors.New("cull: invalid argument")

const opNewSelector = "NewSelector"

// cullErrorf wraps err with an operation tag, preserving the original error via %w.
func cullErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
