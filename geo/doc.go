// Package geo defines the geographic collaborators of the culling kernel: the
// Sector rectangle used to address tiles, and the Globe that turns geographic
// coordinates into Cartesian ones.
//
// Angles are float64 degrees throughout. A Sector may span more than 180° of
// longitude (up to the full sphere); callers that need antimeridian-crossing
// extents express them with MaxLongitude > 180 rather than wrapping.
//
// Ellipsoid is the stock Globe: an oblate spheroid (WGS84 by default) in an
// Earth-centred, Earth-fixed frame with
//
//	X toward (lat 0°, lon 0°)
//	Y toward (lat 0°, lon 90°E)
//	Z toward the north pole
//
// None of the types here lock; an Ellipsoid is immutable and safe to share.
package geo
