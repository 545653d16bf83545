// SPDX-License-Identifier: MIT
package tile_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/globekit/geo"
	"github.com/katalvlaran/globekit/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTilePyramidIsMinimal(t *testing.T) {
	for _, target := range []float64{10, 180.0 / 512, 0.1, 1e-3, 2.5e-5} {
		set, err := tile.FromTilePyramid(geo.FullSphere(), 4, 2, 256, 256, target)
		require.NoError(t, err)
		require.Greater(t, set.Len(), 0)

		finest := set.At(set.Len() - 1)
		assert.LessOrEqual(t, finest.Resolution(), target)
		if set.Len() > 1 {
			assert.Greater(t, set.At(set.Len()-2).Resolution(), target)
		}

		for i, m := range set.Matrices() {
			assert.Equal(t, i, m.Ordinal)
			assert.Equal(t, 4<<i, m.MatrixWidth)
			assert.Equal(t, 2<<i, m.MatrixHeight)
			assert.Equal(t, geo.FullSphere(), m.Sector)
		}
	}

	// a coarse target still yields one level
	set, err := tile.FromTilePyramid(geo.FullSphere(), 4, 2, 256, 256, 90)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, geo.FullSphere(), set.Sector())
}

func TestFromTilePyramidInvalid(t *testing.T) {
	for name, tc := range map[string]struct {
		sector geo.Sector
		w, h   int
		target float64
	}{
		"zero target":     {geo.FullSphere(), 4, 2, 0},
		"negative target": {geo.FullSphere(), 4, 2, -1},
		"nan target":      {geo.FullSphere(), 4, 2, math.NaN()},
		"zero width":      {geo.FullSphere(), 0, 2, 1},
		"empty sector":    {geo.Sector{}, 4, 2, 1},
		"too deep":        {geo.FullSphere(), 4, 2, 1e-12},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tile.FromTilePyramid(tc.sector, tc.w, tc.h, 256, 256, tc.target)
			assert.ErrorIs(t, err, tile.ErrInvalidArgument)
		})
	}
}

func TestFromTilePyramidLevels(t *testing.T) {
	set, err := tile.FromTilePyramidLevels(geo.FullSphere(), 2, 1, 512, 512, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, set.Len())
	assert.Equal(t, 32, set.At(4).MatrixWidth)

	_, err = tile.FromTilePyramidLevels(geo.FullSphere(), 2, 1, 512, 512, 0)
	assert.ErrorIs(t, err, tile.ErrInvalidArgument)
	_, err = tile.FromTilePyramidLevels(geo.FullSphere(), 2, 1, 512, 512, 40)
	assert.ErrorIs(t, err, tile.ErrInvalidArgument)
}

func TestNewTileMatrixSetValidates(t *testing.T) {
	base := tile.TileMatrix{Sector: geo.FullSphere(), MatrixWidth: 2, MatrixHeight: 1, TileWidth: 256, TileHeight: 256}
	finer := base
	finer.Ordinal, finer.MatrixWidth, finer.MatrixHeight = 1, 4, 2

	set, err := tile.NewTileMatrixSet(geo.FullSphere(), []tile.TileMatrix{base, finer})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	_, err = tile.NewTileMatrixSet(geo.FullSphere(), []tile.TileMatrix{finer, base})
	assert.ErrorIs(t, err, tile.ErrInvalidArgument, "ordinal order")

	_, err = tile.NewTileMatrixSet(geo.FullSphere(), []tile.TileMatrix{finer, {Sector: geo.FullSphere(), Ordinal: 2, MatrixWidth: 1, MatrixHeight: 1, TileWidth: 1, TileHeight: 1}})
	assert.ErrorIs(t, err, tile.ErrInvalidArgument, "resolution grows")

	bad := base
	bad.Ordinal = 256
	_, err = tile.NewTileMatrixSet(geo.FullSphere(), []tile.TileMatrix{bad})
	assert.ErrorIs(t, err, tile.ErrInvalidArgument, "ordinal range")

	empty, err := tile.NewTileMatrixSet(geo.FullSphere(), nil)
	require.NoError(t, err)
	assert.Equal(t, -1, empty.IndexOfMatrixNearest(1))
}

func TestIndexOfMatrixNearest(t *testing.T) {
	set, err := tile.FromTilePyramidLevels(geo.FullSphere(), 4, 2, 256, 256, 6)
	require.NoError(t, err)

	for i := 0; i < set.Len(); i++ {
		assert.Equal(t, i, set.IndexOfMatrixNearest(set.At(i).Resolution()))
	}
	assert.Equal(t, 0, set.IndexOfMatrixNearest(100))
	assert.Equal(t, set.Len()-1, set.IndexOfMatrixNearest(0))
	// between levels 1 and 2, closer to 2
	r1, r2 := set.At(1).Resolution(), set.At(2).Resolution()
	assert.Equal(t, 2, set.IndexOfMatrixNearest(r2+(r1-r2)/4))
}

func TestMinRelevantIndexOfMatrix(t *testing.T) {
	full, err := tile.FromTilePyramidLevels(geo.FullSphere(), 4, 2, 256, 256, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, full.MinRelevantIndexOfMatrix(full.Len()-1))

	small, err := tile.FromTilePyramidLevels(geo.FromDegrees(40, -75, 10, 20), 2, 1, 256, 256, 8)
	require.NoError(t, err)
	assert.Equal(t, 3, small.MinRelevantIndexOfMatrix(small.Len()-1))
	assert.Equal(t, 2, small.MinRelevantIndexOfMatrix(2))
}
