// SPDX-License-Identifier: MIT

package cull

import (
	"fmt"
	"math"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/globekit/geo"
	"github.com/katalvlaran/globekit/geom"
	"github.com/katalvlaran/globekit/metrics"
	"github.com/katalvlaran/globekit/tile"
)

// Frame is the camera state a selection runs against.
type Frame struct {
	// Frustum is the view volume in the globe's Cartesian frame.
	Frustum *geom.Frustum
	// EyePoint is the camera position in the same frame.
	EyePoint mgl64.Vec3
	// PixelSizeScale converts a distance from the eye into the size of one screen
	// pixel at that distance; see PixelSizeScale.
	PixelSizeScale float64
}

// Tile is one selected tile.
type Tile struct {
	Key     uint64     `json:"key"`
	Ordinal int        `json:"ordinal"`
	Row     int        `json:"row"`
	Column  int        `json:"column"`
	Sector  geo.Sector `json:"sector"`
}

// PixelSizeScale returns the size of one pixel at unit distance for a perspective
// camera with the given vertical field of view and viewport height.
func PixelSizeScale(fovyDegrees float64, viewportHeight int) float64 {
	if viewportHeight <= 0 {
		return 0
	}

	return 2 * math.Tan(fovyDegrees*math.Pi/360) / float64(viewportHeight)
}

// Selector chooses the visible tiles of a TileMatrixSet, level of detail included.
type Selector struct {
	set     *tile.TileMatrixSet
	globe   geo.Globe
	opts    Options
	boxes   map[uint64]*geom.BoundingBox // by tile key
	scratch geom.SectorScratch
	stats   metrics.Frame
}

// NewSelector returns a Selector over set. Options start from DefaultOptions.
//
// Errors:
//   - ErrInvalidArgument when set is nil or empty, globe is nil, or the options are
//     out of range.
func NewSelector(set *tile.TileMatrixSet, globe geo.Globe, opts ...Option) (*Selector, error) {
	if set == nil || set.Len() == 0 {
		return nil, cullErrorf(opNewSelector, fmt.Errorf("empty tile matrix set: %w", ErrInvalidArgument))
	}
	if globe == nil {
		return nil, cullErrorf(opNewSelector, fmt.Errorf("nil globe: %w", ErrInvalidArgument))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, cullErrorf(opNewSelector, err)
	}

	return &Selector{
		set:   set,
		globe: globe,
		opts:  o,
		boxes: make(map[uint64]*geom.BoundingBox),
	}, nil
}

// Options returns the options in effect.
func (s *Selector) Options() Options { return s.opts }

// Stats returns the statistics of the last selection. The Frame's render fields are
// only meaningful on the goroutine that calls Select.
func (s *Selector) Stats() *metrics.Frame { return &s.stats }

// CachedBoxes returns the number of tile boxes held in the cache.
func (s *Selector) CachedBoxes() int { return len(s.boxes) }

// Select returns the tiles to draw for frame, coarse levels first in visiting order.
// Blueprint:
//
//	Stage 1 (Start): the coarsest relevant level of the set and its tiles overlapping
//	                 the set sector.
//	Stage 2 (Visit): depth first per tile: sphere test, box test, then either refine
//	                 into the next level or emit.
//	Stage 3 (Report): fill the frame statistics, publish them, log a summary.
//
// A nil frustum selects nothing.
func (s *Selector) Select(frame Frame) []Tile {
	start := time.Now()
	s.stats.BeginFrame()

	var (
		out   []Tile
		level = s.set.MinRelevantIndexOfMatrix(s.set.Len() - 1)
	)

	// Stage 1: root tiles
	if frame.Frustum != nil {
		m := s.set.At(level)
		firstRow, lastRow, firstCol, lastCol, ok := m.TileRange(s.set.Sector())

		// Stage 2: depth-first visit
		for row := firstRow; ok && row <= lastRow; row++ {
			for col := firstCol; col <= lastCol; col++ {
				out = s.visit(frame, level, row, col, out)
			}
		}
	}

	// Stage 3: report
	s.stats.TilesSelected = len(out)
	s.stats.SelectTime = time.Since(start)
	s.stats.Publish()

	logs.WithTag("frame", s.stats.FrameCount).
		WithTag("start_level", level).
		WithTag("sphere_tests", s.stats.SphereTests).
		WithTag("box_tests", s.stats.BoxTests).
		WithTag("box_rejects", s.stats.BoxRejects).
		WithTag("tiles", len(out)).
		WithTag("cached_boxes", len(s.boxes)).
		WithTag("duration", s.stats.SelectTime.String()).
		Debug("tiles selected")

	return out
}

// visit culls the tile at (level, row, col) and appends it, or its visible
// descendants, to out.
func (s *Selector) visit(frame Frame, level, row, col int, out []Tile) []Tile {
	m := s.set.At(level)
	sector := m.TileSector(row, col)
	key := m.TileKey(row, col)

	box, err := s.tileBox(key, sector)
	if err != nil {
		logs.WithTag("tile_key", key).Warn(err)
		return out
	}

	visible := geom.NewBoundingSphere(box.Center, box.Radius).IntersectsFrustum(frame.Frustum)
	s.stats.CountSphereTest(visible)
	if !visible {
		return out
	}
	visible = box.IntersectsFrustum(frame.Frustum)
	s.stats.CountBoxTest(visible)
	if !visible {
		return out
	}

	if level+1 < s.set.Len() && s.needsRefinement(m, box, frame) {
		next := s.set.At(level + 1)
		firstRow, lastRow, firstCol, lastCol, ok := next.TileRange(sector)
		if ok {
			for r := firstRow; r <= lastRow; r++ {
				for c := firstCol; c <= lastCol; c++ {
					out = s.visit(frame, level+1, r, c, out)
				}
			}
			return out
		}
	}

	return append(out, Tile{Key: key, Ordinal: m.Ordinal, Row: row, Column: col, Sector: sector})
}

// needsRefinement reports whether one texel of a tile in m, near the equator, spans
// more than DetailFactor pixels at the distance between the eye and box.
func (s *Selector) needsRefinement(m tile.TileMatrix, box *geom.BoundingBox, frame Frame) bool {
	deltaLat, _ := m.TileDelta()
	texel := deltaLat * math.Pi / 180 * s.globe.EquatorialRadius() / float64(m.TileHeight)
	pixel := box.DistanceTo(frame.EyePoint) * frame.PixelSizeScale

	return texel > s.opts.DetailFactor*pixel
}

// tileBox returns the cached box of the tile with key, fitting it on first use.
func (s *Selector) tileBox(key uint64, sector geo.Sector) (*geom.BoundingBox, error) {
	if box, ok := s.boxes[key]; ok {
		return box, nil
	}
	if len(s.boxes) >= s.opts.MaxCachedBoxes {
		logs.WithTag("cached_boxes", len(s.boxes)).Debug("tile box cache full, dropping it")
		s.boxes = make(map[uint64]*geom.BoundingBox, len(s.boxes))
	}

	box := geom.NewBoundingBox()
	if err := box.SetToSector(sector, s.globe, s.opts.MinHeight, s.opts.MaxHeight, &s.scratch); err != nil {
		return nil, err
	}
	s.boxes[key] = box

	return box, nil
}
