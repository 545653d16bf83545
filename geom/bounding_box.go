// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/globekit/geo"
	"github.com/katalvlaran/globekit/matrix"
)

// sectorGrid is the side of the geographic sample grid used by SetToSector.
const sectorGrid = 3

// SectorScratch is the reusable workspace of BoundingBox.SetToSector. Callers that
// refit many boxes per frame keep one and pass it to every call; it holds no state
// between calls.
type SectorScratch struct {
	Heights [sectorGrid * sectorGrid]float64
	Points  [sectorGrid * sectorGrid]mgl64.Vec3
}

// BoundingBox is an oriented box. R, S and T are mutually orthogonal full-extent axes;
// BottomCenter and TopCenter are the ends of the R axis through Center; Radius is half
// the diagonal.
type BoundingBox struct {
	Center       mgl64.Vec3
	BottomCenter mgl64.Vec3
	TopCenter    mgl64.Vec3
	R, S, T      mgl64.Vec3
	Radius       float64

	// coherentPlane is the index of the frustum plane that last rejected the box.
	coherentPlane int
}

// NewBoundingBox returns the unit box; see SetToUnitBox.
func NewBoundingBox() *BoundingBox {
	b := &BoundingBox{}
	b.SetToUnitBox()

	return b
}

// SetToUnitBox resets b to the canonical unit box: centre at the origin, axes unit
// X, Y and Z, and Radius √3.
func (b *BoundingBox) SetToUnitBox() {
	b.Center = mgl64.Vec3{}
	b.BottomCenter = mgl64.Vec3{-0.5, 0, 0}
	b.TopCenter = mgl64.Vec3{0.5, 0, 0}
	b.R = mgl64.Vec3{1, 0, 0}
	b.S = mgl64.Vec3{0, 1, 0}
	b.T = mgl64.Vec3{0, 0, 1}
	b.Radius = math.Sqrt(3)
	b.coherentPlane = 0
}

// extremes tracks the minimum and maximum projection of points onto one axis.
type extremes struct{ min, max float64 }

func newExtremes() extremes { return extremes{min: math.MaxFloat64, max: -math.MaxFloat64} }

func (e *extremes) add(v float64) {
	if v < e.min {
		e.min = v
	}
	if v > e.max {
		e.max = v
	}
}

// SetToPoints fits b to a point cloud stored as interleaved coordinates; see
// matrix.CovarianceOfPoints for the layout of points, count and stride.
// Blueprint:
//
//	Stage 1 (Axes): covariance of the points, eigen-decomposed into unit axes
//	                ordered by descending variance.
//	Stage 2 (Extrema): project every point onto each axis.
//	Stage 3 (Finalize): centre, end points, full-extent axes and radius from the
//	                extrema. An axis whose extent is zero is widened to 1.
//
// Errors:
//   - ErrInvalidArgument (wrapping matrix.ErrInvalidArgument) on a bad layout.
//
// Complexity: O(count/stride). b is left unchanged on error.
func (b *BoundingBox) SetToPoints(points []float64, count, stride int) error {
	// Stage 1: principal axes
	cov, err := matrix.CovarianceOfPoints(points, count, stride)
	if err != nil {
		return geomErrorf(opBoxPoints, fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}
	axes, _, ok := cov.EigenBasis()
	if !ok {
		axes = [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	}

	// Stage 2: extrema along each axis
	var (
		ext = [3]extremes{newExtremes(), newExtremes(), newExtremes()}
		p   mgl64.Vec3
		idx int // array cursor
	)
	for idx = 0; idx+2 < count; idx += stride {
		p = mgl64.Vec3{points[idx], points[idx+1], points[idx+2]}
		ext[0].add(p.Dot(axes[0]))
		ext[1].add(p.Dot(axes[1]))
		ext[2].add(p.Dot(axes[2]))
	}

	// Stage 3: box from unit axes and extrema
	b.setFromExtremes(axes, ext)

	return nil
}

// SetToSector fits b around the part of globe's surface covered by sector between
// minHeight and maxHeight. The axes are the local East-North-Up axes at the sector
// centroid rather than principal axes, trading a slightly looser fit for a much
// cheaper one.
// Blueprint:
//
//	Stage 1 (Sample): a 3×3 grid over the sector with the corners at minHeight and
//	                  the other points at maxHeight.
//	Stage 2 (Axes): columns of the globe's local transform at the centroid.
//	Stage 3 (Extrema): project the samples onto the axes. A sector wider than 180° of
//	                  longitude adds the two points on the centroid parallel at
//	                  centroid longitude ±90°, which bound it where the grid cannot.
//	Stage 4 (Order): sort the axes by descending extent so R is the longest, as
//	                  IntersectsFrustum assumes.
//
// scratch may be nil, in which case a temporary workspace is used.
//
// Errors:
//   - ErrInvalidArgument when globe is nil.
//   - Any error of globe.GeographicToCartesianGrid, wrapped.
//
// b is left unchanged on error.
func (b *BoundingBox) SetToSector(sector geo.Sector, globe geo.Globe, minHeight, maxHeight float64, scratch *SectorScratch) error {
	if globe == nil {
		return geomErrorf(opBoxSector, fmt.Errorf("nil globe: %w", ErrInvalidArgument))
	}
	if scratch == nil {
		scratch = &SectorScratch{}
	}

	// Stage 1: sample grid
	h := &scratch.Heights
	h[0], h[2], h[6], h[8] = minHeight, minHeight, minHeight, minHeight
	h[1], h[3], h[4], h[5], h[7] = maxHeight, maxHeight, maxHeight, maxHeight, maxHeight
	if err := globe.GeographicToCartesianGrid(sector, sectorGrid, sectorGrid, h[:], scratch.Points[:]); err != nil {
		return geomErrorf(opBoxSector, err)
	}

	// Stage 2: local axes at the centroid
	lat, lon := sector.CentroidLatitude(), sector.CentroidLongitude()
	local := globe.GeographicToCartesianTransform(lat, lon, 0)
	axes := [3]mgl64.Vec3{local.Column(0), local.Column(1), local.Column(2)}

	// Stage 3: extrema
	ext := [3]extremes{newExtremes(), newExtremes(), newExtremes()}
	project := func(p mgl64.Vec3) {
		ext[0].add(p.Dot(axes[0]))
		ext[1].add(p.Dot(axes[1]))
		ext[2].add(p.Dot(axes[2]))
	}
	for i := range scratch.Points {
		project(scratch.Points[i])
	}
	if sector.DeltaLongitude() > 180 {
		project(globe.GeographicToCartesian(lat, lon+90, maxHeight))
		project(globe.GeographicToCartesian(lat, lon-90, maxHeight))
	}

	// Stage 4: longest axis first
	extent := func(i int) float64 { return ext[i].max - ext[i].min }
	swap := func(i, j int) {
		axes[i], axes[j] = axes[j], axes[i]
		ext[i], ext[j] = ext[j], ext[i]
	}
	if extent(0) < extent(1) {
		swap(0, 1)
	}
	if extent(1) < extent(2) {
		swap(1, 2)
	}
	if extent(0) < extent(1) {
		swap(0, 1)
	}

	b.setFromExtremes(axes, ext)

	return nil
}

// setFromExtremes derives the box from unit axes and the extrema of the enclosed
// points along them.
func (b *BoundingBox) setFromExtremes(axes [3]mgl64.Vec3, ext [3]extremes) {
	var length, sum [3]float64
	for i := 0; i < 3; i++ {
		if ext[i].max == ext[i].min {
			ext[i].max = ext[i].min + 1
		}
		length[i] = ext[i].max - ext[i].min
		sum[i] = ext[i].max + ext[i].min
	}

	b.Center = axes[0].Mul(0.5 * sum[0]).Add(axes[1].Mul(0.5 * sum[1])).Add(axes[2].Mul(0.5 * sum[2]))
	halfR := axes[0].Mul(0.5 * length[0])
	b.BottomCenter = b.Center.Sub(halfR)
	b.TopCenter = b.Center.Add(halfR)
	b.R = axes[0].Mul(length[0])
	b.S = axes[1].Mul(length[1])
	b.T = axes[2].Mul(length[2])
	b.Radius = 0.5 * math.Sqrt(length[0]*length[0]+length[1]*length[1]+length[2]*length[2])
}

// Translate moves the box by (x, y, z). The axes are unchanged.
func (b *BoundingBox) Translate(x, y, z float64) {
	d := mgl64.Vec3{x, y, z}
	b.Center = b.Center.Add(d)
	b.BottomCenter = b.BottomCenter.Add(d)
	b.TopCenter = b.TopCenter.Add(d)
}

// DistanceTo returns an approximate distance from point to the box: the smallest
// distance to the centre, the two ends of R and the two ends of S.
func (b *BoundingBox) DistanceTo(point mgl64.Vec3) float64 {
	halfS := b.S.Mul(0.5)
	d := point.Sub(b.Center).Len()
	d = math.Min(d, point.Sub(b.BottomCenter).Len())
	d = math.Min(d, point.Sub(b.TopCenter).Len())
	d = math.Min(d, point.Sub(b.Center.Add(halfS)).Len())
	d = math.Min(d, point.Sub(b.Center.Sub(halfS)).Len())

	return d
}

// IntersectsFrustum reports whether the box may intersect f.
// Blueprint:
//
//	Stage 1 (Coherence): test the plane that rejected the box last time first.
//	Stage 2 (Slab): for every plane, treat the box as the segment BottomCenter-TopCenter
//	                     thickened by the effective radius ½(|S·n|+|T·n|). Reject when
//	                     both ends are beyond -radius; otherwise clip the segment to
//	                     the part on the positive side before the next plane.
//
// The coherent plane is stored on the box, so the method mutates b and must not run
// concurrently on the same box.
//
// Complexity: O(6).
func (b *BoundingBox) IntersectsFrustum(f *Frustum) bool {
	// Stage 1: last rejecting plane first
	a, c := b.BottomCenter, b.TopCenter
	if b.clip(&f.planes[b.coherentPlane], &a, &c) < 0 {
		return false
	}

	// Stage 2: remaining planes, each shrinking the segment
	for i := range f.planes {
		if i == b.coherentPlane {
			continue
		}
		if b.clip(&f.planes[i], &a, &c) < 0 {
			b.coherentPlane = i
			return false
		}
	}

	return true
}

// clip tests the segment a-c, thickened by the box cross-section, against plane.
// It returns -1 when the whole segment lies beyond the effective radius, 0 when no
// clipping is needed, and otherwise the parameter at which the segment was cut, after
// moving the outside end point onto the cut.
func (b *BoundingBox) clip(plane *Plane, a, c *mgl64.Vec3) float64 {
	n := plane.Normal
	radius := 0.5 * (math.Abs(b.S.Dot(n)) + math.Abs(b.T.Dot(n)))

	da := plane.Dot(*a)
	dc := plane.Dot(*c)
	outA := da <= -radius
	outC := dc <= -radius
	if outA && outC {
		return -1
	}
	if outA == outC {
		return 0
	}

	// the point where the signed distance equals -radius
	t := (radius + da) / (da - dc)
	cut := a.Add(c.Sub(*a).Mul(t))
	if outA {
		*a = cut
	} else {
		*c = cut
	}

	return t
}
