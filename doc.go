// Package globekit is the geometric kernel of a virtual globe: it decides which
// tiles of a geographic image pyramid a camera can see, and how finely.
//
// 🌍 What is in the box?
//
//   - Linear algebra: 4×4 affine/projective matrices, LU inversion, Jacobi eigen axes
//   - Geography: sectors, the WGS84 ellipsoid, local East-North-Up frames
//   - Volumes: planes, frustums (full view and pick), oriented boxes, spheres
//   - Tiles: tile matrices, pyramids, 64-bit tile keys
//   - Selection: frustum culling with level-of-detail refinement and box caching
//   - Metrics: per-frame counters and Prometheus export
//
// Everything is organized under these subpackages:
//
//	matrix/  Matrix4, Matrix3, inversion, eigenvectors, projection helpers
//	geo/     Sector, Globe, Ellipsoid
//	geom/    Plane, Viewport, Frustum, BoundingBox, BoundingSphere
//	tile/    TileMatrix, TileMatrixSet, tile keys
//	metrics/ Frame statistics and their Prometheus collectors
//	cull/    Selector, the per-frame visible tile walk
//
// Quick sketch of one frame:
//
//	projection, modelview ─► geom.Frustum ─► cull.Selector.Select ─► []cull.Tile
//	                                             │
//	                           tile.TileMatrixSet + geo.Globe
//
// The cmd/globecull command runs one selection from flags and prints it as JSON:
//
//	go run ./cmd/globecull -latitude 48.85 -longitude 2.35 -altitude 20000
package globekit
