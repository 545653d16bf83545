// SPDX-License-Identifier: MIT

package tile

import (
	"fmt"
	"math"

	"github.com/katalvlaran/globekit/geo"
)

// Key layout limits.
const (
	ordinalBits = 8
	indexBits   = 28
	ordinalMask = 1<<ordinalBits - 1
	indexMask   = 1<<indexBits - 1

	// MaxOrdinal is the largest ordinal with a unique key.
	MaxOrdinal = ordinalMask
	// MaxMatrixDimension is the largest grid width or height whose rows and columns
	// all have unique keys.
	MaxMatrixDimension = 1 << indexBits
)

// cellEpsilon absorbs rounding when a sector edge falls on a grid line, in cells.
const cellEpsilon = 1e-9

// TileMatrix is one level of a tile pyramid: a grid of equally sized tiles over Sector.
type TileMatrix struct {
	Sector       geo.Sector `json:"sector"`
	Ordinal      int        `json:"ordinal"`
	MatrixWidth  int        `json:"matrix_width"`
	MatrixHeight int        `json:"matrix_height"`
	TileWidth    int        `json:"tile_width"`
	TileHeight   int        `json:"tile_height"`
}

// Resolution returns the latitudinal size of one pixel in degrees.
func (m TileMatrix) Resolution() float64 {
	return m.Sector.DeltaLatitude() / float64(m.MatrixHeight*m.TileHeight)
}

// TileDelta returns the extent of one tile in degrees.
func (m TileMatrix) TileDelta() (deltaLat, deltaLon float64) {
	return m.Sector.DeltaLatitude() / float64(m.MatrixHeight), m.Sector.DeltaLongitude() / float64(m.MatrixWidth)
}

// validate reports why m cannot address tiles, or nil.
func (m TileMatrix) validate() error {
	if m.Sector.IsEmpty() {
		return fmt.Errorf("empty sector %+v: %w", m.Sector, ErrInvalidArgument)
	}
	if m.MatrixWidth <= 0 || m.MatrixHeight <= 0 || m.TileWidth <= 0 || m.TileHeight <= 0 {
		return fmt.Errorf("dimensions %dx%d tiles of %dx%d: %w",
			m.MatrixWidth, m.MatrixHeight, m.TileWidth, m.TileHeight, ErrInvalidArgument)
	}
	if m.MatrixWidth > MaxMatrixDimension || m.MatrixHeight > MaxMatrixDimension {
		return fmt.Errorf("grid %dx%d exceeds %d: %w", m.MatrixWidth, m.MatrixHeight, MaxMatrixDimension, ErrInvalidArgument)
	}
	if m.Ordinal < 0 || m.Ordinal > MaxOrdinal {
		return fmt.Errorf("ordinal %d outside [0,%d]: %w", m.Ordinal, MaxOrdinal, ErrInvalidArgument)
	}

	return nil
}

// TileKey packs the matrix ordinal, row and col into a key. Out-of-range values are
// masked to their field width.
func (m TileMatrix) TileKey(row, col int) uint64 {
	return uint64(m.Ordinal&ordinalMask)<<(2*indexBits) |
		uint64(row&indexMask)<<indexBits |
		uint64(col&indexMask)
}

// KeyParts unpacks a key built by TileKey.
func KeyParts(key uint64) (ordinal, row, col int) {
	return int(key >> (2 * indexBits) & ordinalMask),
		int(key >> indexBits & indexMask),
		int(key & indexMask)
}

// TileSector returns the sector of the tile at row, col. Row 0 is the northernmost.
func (m TileMatrix) TileSector(row, col int) geo.Sector {
	deltaLat, deltaLon := m.TileDelta()
	maxLat := m.Sector.MaxLatitude - deltaLat*float64(row)
	minLon := m.Sector.MinLongitude + deltaLon*float64(col)

	return geo.Sector{
		MinLatitude:  m.Sector.MaxLatitude - deltaLat*float64(row+1),
		MaxLatitude:  maxLat,
		MinLongitude: minLon,
		MaxLongitude: m.Sector.MinLongitude + deltaLon*float64(col+1),
	}
}

// TileRange returns the inclusive row and column bounds of the tiles overlapping
// sector. ok is false when sector does not overlap the matrix.
// Blueprint:
//
//	Stage 1 (Clip): intersect sector with the matrix sector.
//	Stage 2 (Locate): per axis, floor the offset of the leading edge and ceil the
//	                  offset of the trailing edge, in cells, from the north-west corner.
//
// Complexity: O(1).
func (m TileMatrix) TileRange(sector geo.Sector) (firstRow, lastRow, firstCol, lastCol int, ok bool) {
	// Stage 1: clip
	s, ok := m.Sector.Intersection(sector)
	if !ok || m.MatrixWidth <= 0 || m.MatrixHeight <= 0 {
		return 0, 0, 0, 0, false
	}

	// Stage 2: grid-aligned bounds
	deltaLat, deltaLon := m.TileDelta()
	firstRow = clampIndex(math.Floor((m.Sector.MaxLatitude-s.MaxLatitude)/deltaLat+cellEpsilon), m.MatrixHeight)
	lastRow = clampIndex(math.Ceil((m.Sector.MaxLatitude-s.MinLatitude)/deltaLat-cellEpsilon)-1, m.MatrixHeight)
	firstCol = clampIndex(math.Floor((s.MinLongitude-m.Sector.MinLongitude)/deltaLon+cellEpsilon), m.MatrixWidth)
	lastCol = clampIndex(math.Ceil((s.MaxLongitude-m.Sector.MinLongitude)/deltaLon-cellEpsilon)-1, m.MatrixWidth)

	return firstRow, lastRow, firstCol, lastCol, true
}

// clampIndex converts v to an index in [0, n).
func clampIndex(v float64, n int) int {
	if v < 0 {
		return 0
	}
	if v >= float64(n) {
		return n - 1
	}

	return int(v)
}

// TilesInSector returns how many of this matrix's tiles are needed to cover sector:
// per axis, the number of grid cells the sector spans between grid-aligned bounds,
// clamped to the matrix, multiplied together. The count is an upper bound on the
// tiles that actually overlap sector; zero when they do not overlap.
func (m TileMatrix) TilesInSector(sector geo.Sector) int {
	firstRow, lastRow, firstCol, lastCol, ok := m.TileRange(sector)
	if !ok {
		return 0
	}

	return (lastRow - firstRow + 1) * (lastCol - firstCol + 1)
}
