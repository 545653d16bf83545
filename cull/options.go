// SPDX-License-Identifier: MIT

package cull

import "fmt"

// Default option values.
const (
	DefaultDetailFactor   = 1.5
	DefaultMinHeight      = 0.0
	DefaultMaxHeight      = 9000.0
	DefaultMaxCachedBoxes = 1 << 16
)

// Options configures a Selector.
type Options struct {
	// DetailFactor is how many screen pixels one tile texel may cover before the
	// tile is replaced by its finer children. Larger values select coarser tiles.
	DetailFactor float64

	// MinHeight and MaxHeight bound the terrain, in metres, when fitting tile boxes.
	MinHeight float64
	MaxHeight float64

	// MaxCachedBoxes caps the tile box cache; the cache is dropped when it fills.
	MaxCachedBoxes int
}

// DefaultOptions returns the recommended selector options.
func DefaultOptions() Options {
	return Options{
		DetailFactor:   DefaultDetailFactor,
		MinHeight:      DefaultMinHeight,
		MaxHeight:      DefaultMaxHeight,
		MaxCachedBoxes: DefaultMaxCachedBoxes,
	}
}

// validate reports why o cannot configure a Selector, or nil.
func (o Options) validate() error {
	if !(o.DetailFactor > 0) {
		return fmt.Errorf("detail factor %g: %w", o.DetailFactor, ErrInvalidArgument)
	}
	if o.MinHeight > o.MaxHeight {
		return fmt.Errorf("heights [%g,%g]: %w", o.MinHeight, o.MaxHeight, ErrInvalidArgument)
	}
	if o.MaxCachedBoxes < 1 {
		return fmt.Errorf("box cache size %d: %w", o.MaxCachedBoxes, ErrInvalidArgument)
	}

	return nil
}

// Option mutates Options; pass any number to NewSelector.
type Option func(*Options)

// WithDetailFactor sets Options.DetailFactor.
func WithDetailFactor(factor float64) Option {
	return func(o *Options) {
		o.DetailFactor = factor
	}
}

// WithHeights sets the terrain height range used to fit tile boxes.
func WithHeights(minHeight, maxHeight float64) Option {
	return func(o *Options) {
		o.MinHeight = minHeight
		o.MaxHeight = maxHeight
	}
}

// WithMaxCachedBoxes sets the box cache cap.
func WithMaxCachedBoxes(n int) Option {
	return func(o *Options) {
		o.MaxCachedBoxes = n
	}
}
