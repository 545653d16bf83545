// SPDX-License-Identifier: MIT
package tile_test

import (
	"testing"

	"github.com/katalvlaran/globekit/geo"
	"github.com/katalvlaran/globekit/tile"
)

func BenchmarkTileKey(b *testing.B) {
	m := tile.TileMatrix{Ordinal: 12}
	var sink uint64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink ^= m.TileKey(i&0xFFF, i>>12&0xFFF)
	}
	_ = sink
}

func BenchmarkFromTilePyramid(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tile.FromTilePyramid(geo.FullSphere(), 2, 1, 256, 256, 1e-5)
	}
}
