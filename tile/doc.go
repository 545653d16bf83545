// Package tile addresses geographic tiles across levels of detail.
//
// A TileMatrix partitions a geo.Sector into a MatrixHeight × MatrixWidth grid of
// tiles, each TileWidth × TileHeight pixels. Row 0 is the northernmost row and
// column 0 the westernmost column; latitude decreases as the row grows.
//
// A TileMatrixSet stacks matrices from coarse to fine: ordinals strictly increase and
// resolutions (degrees per pixel) never increase. FromTilePyramid builds the usual
// power-of-two pyramid, doubling the grid each level until a target resolution is met.
//
// Tile keys pack (ordinal, row, column) into one uint64:
//
//	bits 63..56  ordinal (8 bits)
//	bits 55..28  row     (28 bits)
//	bits 27..0   column  (28 bits)
//
// Keys are unique for ordinals in [0,255] and rows and columns in [0,2²⁸). Values
// outside those ranges are masked, not rejected, so they alias other tiles; the
// pyramid builders refuse to create matrices that would need them.
package tile
