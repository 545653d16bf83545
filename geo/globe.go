// SPDX-License-Identifier: MIT

package geo

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/globekit/matrix"
)

// Globe converts geographic coordinates to Cartesian ones. The culling kernel only
// queries a Globe; it never caches or mutates globe state.
type Globe interface {
	// EquatorialRadius returns the semi-major axis in metres.
	EquatorialRadius() float64

	// GeographicToCartesian returns the point at latitude, longitude (degrees) and
	// altitude (metres above the surface).
	GeographicToCartesian(lat, lon, altitude float64) mgl64.Vec3

	// GeographicToCartesianGrid fills out with a numLat × numLon grid of points
	// evenly spaced over sector, row-major from the southern row and western column.
	// heights holds one altitude per grid point, or is nil for the surface.
	GeographicToCartesianGrid(sector Sector, numLat, numLon int, heights []float64, out []mgl64.Vec3) error

	// GeographicToCartesianTransform returns the local East-North-Up frame at the
	// given location: columns 0..2 are the unit east, north and up axes, column 3 is
	// the Cartesian point.
	GeographicToCartesianTransform(lat, lon, altitude float64) matrix.Matrix4
}

// Ellipsoid is a Globe shaped as an oblate spheroid.
type Ellipsoid struct {
	// SemiMajorAxis is the equatorial radius in metres.
	SemiMajorAxis float64
	// EccentricitySquared is e² = 1 - b²/a².
	EccentricitySquared float64
}

// WGS84 returns the WGS84 reference ellipsoid.
func WGS84() Ellipsoid {
	return Ellipsoid{SemiMajorAxis: 6378137.0, EccentricitySquared: 6.69437999014e-3}
}

// EquatorialRadius returns the semi-major axis.
func (e Ellipsoid) EquatorialRadius() float64 { return e.SemiMajorAxis }

// PolarRadius returns the semi-minor axis.
func (e Ellipsoid) PolarRadius() float64 {
	return e.SemiMajorAxis * math.Sqrt(1-e.EccentricitySquared)
}

// GeographicToCartesian implements Globe.
func (e Ellipsoid) GeographicToCartesian(lat, lon, altitude float64) mgl64.Vec3 {
	sinLat, cosLat := math.Sincos(lat * math.Pi / 180)
	sinLon, cosLon := math.Sincos(lon * math.Pi / 180)

	// radius of curvature in the prime vertical
	n := e.SemiMajorAxis / math.Sqrt(1-e.EccentricitySquared*sinLat*sinLat)

	return mgl64.Vec3{
		(n + altitude) * cosLat * cosLon,
		(n + altitude) * cosLat * sinLon,
		(n*(1-e.EccentricitySquared) + altitude) * sinLat,
	}
}

// GeographicToCartesianGrid implements Globe.
//
// Errors:
//   - ErrInvalidArgument when numLat or numLon < 2, heights is non-nil with a length
//     other than numLat·numLon, or out is shorter than numLat·numLon.
func (e Ellipsoid) GeographicToCartesianGrid(sector Sector, numLat, numLon int, heights []float64, out []mgl64.Vec3) error {
	if numLat < 2 || numLon < 2 {
		return geoErrorf(opGrid, fmt.Errorf("grid %dx%d: %w", numLat, numLon, ErrInvalidArgument))
	}
	count := numLat * numLon
	if heights != nil && len(heights) != count {
		return geoErrorf(opGrid, fmt.Errorf("%d heights for %d points: %w", len(heights), count, ErrInvalidArgument))
	}
	if len(out) < count {
		return geoErrorf(opGrid, fmt.Errorf("output holds %d of %d points: %w", len(out), count, ErrInvalidArgument))
	}

	var (
		i, j, k  int
		lat, lon float64
		alt      float64
		dLat     = sector.DeltaLatitude() / float64(numLat-1)
		dLon     = sector.DeltaLongitude() / float64(numLon-1)
	)
	for i = 0; i < numLat; i++ {
		lat = sector.MinLatitude + dLat*float64(i)
		if i == numLat-1 {
			lat = sector.MaxLatitude // avoid accumulated rounding on the last row
		}
		for j = 0; j < numLon; j++ {
			lon = sector.MinLongitude + dLon*float64(j)
			if j == numLon-1 {
				lon = sector.MaxLongitude
			}
			if heights != nil {
				alt = heights[k]
			}
			out[k] = e.GeographicToCartesian(lat, lon, alt)
			k++
		}
	}

	return nil
}

// GeographicToCartesianTransform implements Globe. The up axis is the ellipsoid
// normal (geodetic up), so it is orthogonal to east and north.
func (e Ellipsoid) GeographicToCartesianTransform(lat, lon, altitude float64) matrix.Matrix4 {
	sinLat, cosLat := math.Sincos(lat * math.Pi / 180)
	sinLon, cosLon := math.Sincos(lon * math.Pi / 180)
	p := e.GeographicToCartesian(lat, lon, altitude)

	return matrix.NewMatrix4(
		-sinLon, -sinLat*cosLon, cosLat*cosLon, p[0],
		cosLon, -sinLat*sinLon, cosLat*sinLon, p[1],
		0, cosLat, sinLat, p[2],
		0, 0, 0, 1,
	)
}
