// SPDX-License-Identifier: MIT
package tile_test

import (
	"fmt"

	"github.com/katalvlaran/globekit/geo"
	"github.com/katalvlaran/globekit/tile"
)

func ExampleTileMatrix_TilesInSector() {
	m := tile.TileMatrix{Sector: geo.FullSphere(), MatrixWidth: 4, MatrixHeight: 2, TileWidth: 256, TileHeight: 256}
	fmt.Println(m.TilesInSector(geo.FromDegrees(-45, -45, 90, 90)))
	// Output: 4
}

func ExampleFromTilePyramid() {
	set, err := tile.FromTilePyramid(geo.FullSphere(), 2, 1, 256, 256, 0.01)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, m := range set.Matrices() {
		fmt.Printf("%d: %dx%d %.4f\n", m.Ordinal, m.MatrixWidth, m.MatrixHeight, m.Resolution())
	}
	// Output:
	// 0: 2x1 0.7031
	// 1: 4x2 0.3516
	// 2: 8x4 0.1758
	// 3: 16x8 0.0879
	// 4: 32x16 0.0439
	// 5: 64x32 0.0220
	// 6: 128x64 0.0110
	// 7: 256x128 0.0055
}
