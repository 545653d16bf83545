// Package geom implements the view-volume side of the culling kernel: planes, the
// six-plane Frustum, and the BoundingBox and BoundingSphere volumes tested against it.
//
// What this package provides:
//
//   - Plane: unit normal plus signed distance; normals are renormalized after every
//     mutation unless already unit length within 1e-10.
//   - Frustum: derived from projection·modelview by row extraction, or from the
//     unprojected corners of a sub-viewport for picking; point, segment, viewport,
//     box and sphere tests.
//   - BoundingBox: oriented box fitted by principal-component analysis to a point
//     cloud, or to a geographic sector over a height range using the local
//     East-North-Up axes at the sector centroid.
//   - BoundingSphere: centre plus radius, the cheap pre-filter.
//
// Conventions:
//
//   - Plane normals point into the frustum; a point p is inside a plane when
//     n·p + d > 0. The frustum boundary is open: points exactly on a plane are not
//     contained.
//   - Box axes R, S, T are full extents (not half extents) ordered longest first
//     after SetToSector; BottomCenter and TopCenter are Center ∓ R/2.
//
// Concurrency:
//
// Nothing here locks. Frusta and boxes are refit in place by a single render
// goroutine. BoundingBox.IntersectsFrustum remembers the plane that last rejected
// the box, so one box must not be tested concurrently, nor against several frusta
// interleaved, without accepting a loss of that coherence.
package geom
