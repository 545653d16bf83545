// Package cull selects the tiles of a TileMatrixSet that a camera needs to draw.
//
// A Selector walks the pyramid from its coarsest relevant level. For every tile it
//
//  1. fits (once, then caches by tile key) an oriented box around the tile's
//     sector between the configured terrain heights;
//  2. rejects the tile when the box's enclosing sphere, then the box itself, lies
//     outside the view frustum;
//  3. descends into the tiles of the next level covering the same sector when one
//     texel of the tile would span more than DetailFactor screen pixels at the
//     tile's distance from the eye, and otherwise emits the tile.
//
// Each call updates a metrics.Frame, publishes it to Prometheus and logs one
// debug summary through go-tooling logs.
//
// A Selector is not safe for concurrent use: its box cache carries the
// per-box coherent-plane state of geom.BoundingBox. Use one Selector per render
// goroutine.
package cull
