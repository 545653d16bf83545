// SPDX-License-Identifier: MIT

package geo

import "math"

// LevelZeroDelta is the tile delta, in degrees, of level 0 in the level-count policy
// used by MinLevelNumber. Each finer level halves it.
const LevelZeroDelta = 90.0

// Sector is a geographic rectangle bounded by minimum and maximum latitude and
// longitude, in degrees.
//
// The zero value is an empty sector at (0, 0).
type Sector struct {
	MinLatitude  float64 `json:"min_latitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLongitude float64 `json:"max_longitude"`
}

// FromDegrees returns the sector whose south-west corner is (minLat, minLon) and whose
// extent is deltaLat × deltaLon.
func FromDegrees(minLat, minLon, deltaLat, deltaLon float64) Sector {
	return Sector{
		MinLatitude:  minLat,
		MaxLatitude:  minLat + deltaLat,
		MinLongitude: minLon,
		MaxLongitude: minLon + deltaLon,
	}
}

// FullSphere returns the sector covering the whole globe.
func FullSphere() Sector {
	return Sector{MinLatitude: -90, MaxLatitude: 90, MinLongitude: -180, MaxLongitude: 180}
}

// DeltaLatitude returns the latitudinal extent.
func (s Sector) DeltaLatitude() float64 { return s.MaxLatitude - s.MinLatitude }

// DeltaLongitude returns the longitudinal extent.
func (s Sector) DeltaLongitude() float64 { return s.MaxLongitude - s.MinLongitude }

// CentroidLatitude returns the mid latitude.
func (s Sector) CentroidLatitude() float64 { return 0.5 * (s.MinLatitude + s.MaxLatitude) }

// CentroidLongitude returns the mid longitude.
func (s Sector) CentroidLongitude() float64 { return 0.5 * (s.MinLongitude + s.MaxLongitude) }

// IsEmpty reports whether the sector has no area.
func (s Sector) IsEmpty() bool {
	return !(s.MinLatitude < s.MaxLatitude && s.MinLongitude < s.MaxLongitude)
}

// Contains reports whether (lat, lon) lies inside the sector, edges included.
func (s Sector) Contains(lat, lon float64) bool {
	return lat >= s.MinLatitude && lat <= s.MaxLatitude &&
		lon >= s.MinLongitude && lon <= s.MaxLongitude
}

// Intersects reports whether the two sectors share any area. Sectors that only touch
// along an edge do not intersect.
func (s Sector) Intersects(o Sector) bool {
	return s.MinLatitude < o.MaxLatitude && o.MinLatitude < s.MaxLatitude &&
		s.MinLongitude < o.MaxLongitude && o.MinLongitude < s.MaxLongitude
}

// Intersection returns the overlap of the two sectors and whether it is non-empty.
func (s Sector) Intersection(o Sector) (Sector, bool) {
	r := Sector{
		MinLatitude:  math.Max(s.MinLatitude, o.MinLatitude),
		MaxLatitude:  math.Min(s.MaxLatitude, o.MaxLatitude),
		MinLongitude: math.Max(s.MinLongitude, o.MinLongitude),
		MaxLongitude: math.Min(s.MaxLongitude, o.MaxLongitude),
	}

	return r, !r.IsEmpty()
}

// Union returns the smallest sector containing both sectors. An empty operand is ignored.
func (s Sector) Union(o Sector) Sector {
	if s.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return s
	}

	return Sector{
		MinLatitude:  math.Min(s.MinLatitude, o.MinLatitude),
		MaxLatitude:  math.Max(s.MaxLatitude, o.MaxLatitude),
		MinLongitude: math.Min(s.MinLongitude, o.MinLongitude),
		MaxLongitude: math.Max(s.MaxLongitude, o.MaxLongitude),
	}
}

// MinLevelNumber returns the coarsest level, in a pyramid whose level-0 tiles span
// LevelZeroDelta degrees, at which one tile is no larger than the sector's larger
// extent. Coarser levels would spend a whole tile on a fraction of the sector.
// The result is clamped to [0, maxLevel]; an empty sector yields maxLevel.
func (s Sector) MinLevelNumber(maxLevel int) int {
	if maxLevel < 0 {
		return 0
	}
	delta := math.Max(s.DeltaLatitude(), s.DeltaLongitude())
	if delta <= 0 {
		return maxLevel
	}

	level := int(math.Ceil(math.Log2(LevelZeroDelta / delta)))
	if level < 0 {
		level = 0
	}
	if level > maxLevel {
		level = maxLevel
	}

	return level
}
