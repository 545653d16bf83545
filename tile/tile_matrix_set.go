// SPDX-License-Identifier: MIT

package tile

import (
	"fmt"

	"github.com/katalvlaran/globekit/geo"
)

// TileMatrixSet is a level-of-detail pyramid over Sector: matrices ordered from the
// coarsest to the finest. A set is immutable after construction and safe to share.
type TileMatrixSet struct {
	sector   geo.Sector
	matrices []TileMatrix
}

// NewTileMatrixSet validates matrices and returns a set over sector. The slice is
// copied.
//
// Errors:
//   - ErrInvalidArgument when a matrix cannot address tiles (see FromTilePyramid), when
//     ordinals are not strictly increasing, or when a finer level has a larger
//     resolution than the level before it.
func NewTileMatrixSet(sector geo.Sector, matrices []TileMatrix) (*TileMatrixSet, error) {
	for i, m := range matrices {
		if err := m.validate(); err != nil {
			return nil, tileErrorf(opNewSet, fmt.Errorf("matrix %d: %w", i, err))
		}
		if i == 0 {
			continue
		}
		prev := matrices[i-1]
		if m.Ordinal <= prev.Ordinal {
			return nil, tileErrorf(opNewSet, fmt.Errorf("ordinal %d after %d: %w", m.Ordinal, prev.Ordinal, ErrInvalidArgument))
		}
		if m.Resolution() > prev.Resolution() {
			return nil, tileErrorf(opNewSet, fmt.Errorf("resolution %g after %g: %w", m.Resolution(), prev.Resolution(), ErrInvalidArgument))
		}
	}

	return &TileMatrixSet{sector: sector, matrices: append([]TileMatrix(nil), matrices...)}, nil
}

// FromTilePyramid builds the shortest power-of-two pyramid over sector whose finest
// level has a resolution no larger than targetResolution (degrees per pixel).
// Blueprint:
//
//	Stage 1 (Validate): positive target, positive dimensions, non-empty sector.
//	Stage 2 (Grow): starting from matrixWidth × matrixHeight at ordinal 0, append a
//	                level and stop once its resolution meets the target; otherwise
//	                double both grid dimensions and continue.
//
// Errors:
//   - ErrInvalidArgument on bad input, or when the target needs a grid larger than
//     MaxMatrixDimension or more than MaxOrdinal+1 levels.
//
// Complexity: O(L) for L levels.
func FromTilePyramid(sector geo.Sector, matrixWidth, matrixHeight, tileWidth, tileHeight int, targetResolution float64) (*TileMatrixSet, error) {
	// Stage 1: validate
	if !(targetResolution > 0) {
		return nil, tileErrorf(opPyramid, fmt.Errorf("target resolution %g: %w", targetResolution, ErrInvalidArgument))
	}

	// Stage 2: one level per doubling
	var (
		set = &TileMatrixSet{sector: sector}
		m   = TileMatrix{
			Sector:       sector,
			MatrixWidth:  matrixWidth,
			MatrixHeight: matrixHeight,
			TileWidth:    tileWidth,
			TileHeight:   tileHeight,
		}
	)
	for {
		if err := m.validate(); err != nil {
			return nil, tileErrorf(opPyramid, err)
		}
		set.matrices = append(set.matrices, m)
		if m.Resolution() <= targetResolution {
			return set, nil
		}
		m.Ordinal++
		m.MatrixWidth *= 2
		m.MatrixHeight *= 2
	}
}

// FromTilePyramidLevels builds a power-of-two pyramid of exactly numLevels levels.
//
// Errors:
//   - ErrInvalidArgument when numLevels < 1 or any level would be invalid.
func FromTilePyramidLevels(sector geo.Sector, matrixWidth, matrixHeight, tileWidth, tileHeight, numLevels int) (*TileMatrixSet, error) {
	if numLevels < 1 {
		return nil, tileErrorf(opPyramidLevels, fmt.Errorf("%d levels: %w", numLevels, ErrInvalidArgument))
	}

	set := &TileMatrixSet{sector: sector, matrices: make([]TileMatrix, 0, numLevels)}
	for level := 0; level < numLevels; level++ {
		m := TileMatrix{
			Sector:       sector,
			Ordinal:      level,
			MatrixWidth:  matrixWidth << level,
			MatrixHeight: matrixHeight << level,
			TileWidth:    tileWidth,
			TileHeight:   tileHeight,
		}
		if level >= indexBits || m.validate() != nil {
			return nil, tileErrorf(opPyramidLevels, fmt.Errorf("level %d of %dx%d: %w", level, matrixWidth, matrixHeight, ErrInvalidArgument))
		}
		set.matrices = append(set.matrices, m)
	}

	return set, nil
}

// Sector returns the extent of the set.
func (s *TileMatrixSet) Sector() geo.Sector { return s.sector }

// Len returns the number of levels.
func (s *TileMatrixSet) Len() int { return len(s.matrices) }

// At returns level i. It panics when i is out of range, like a slice index.
func (s *TileMatrixSet) At(i int) TileMatrix { return s.matrices[i] }

// Matrices returns a copy of the levels, coarsest first.
func (s *TileMatrixSet) Matrices() []TileMatrix {
	return append([]TileMatrix(nil), s.matrices...)
}

// IndexOfMatrixNearest returns the index of the level whose resolution is closest to
// resolution, the first such level on ties, or -1 for an empty set.
func (s *TileMatrixSet) IndexOfMatrixNearest(resolution float64) int {
	nearest := -1
	best := 0.0
	for i := range s.matrices {
		d := s.matrices[i].Resolution() - resolution
		d *= d
		if nearest < 0 || d < best {
			nearest, best = i, d
		}
	}

	return nearest
}

// MinRelevantIndexOfMatrix returns the coarsest level index that usefully resolves the
// set's sector, no larger than maxIndex; see geo.Sector.MinLevelNumber.
func (s *TileMatrixSet) MinRelevantIndexOfMatrix(maxIndex int) int {
	return s.sector.MinLevelNumber(maxIndex)
}
