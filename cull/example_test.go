// SPDX-License-Identifier: MIT
package cull_test

import (
	"fmt"

	"github.com/katalvlaran/globekit/cull"
	"github.com/katalvlaran/globekit/geo"
	"github.com/katalvlaran/globekit/geom"
	"github.com/katalvlaran/globekit/matrix"
	"github.com/katalvlaran/globekit/tile"
)

// ExampleSelector_Select views the whole globe from far away: every tile is visible,
// so the selection tiles the full sphere.
func ExampleSelector_Select() {
	globe := geo.WGS84()
	set, _ := tile.FromTilePyramidLevels(geo.FullSphere(), 2, 1, 256, 256, 4)
	selector, _ := cull.NewSelector(set, globe)

	eye := globe.GeographicToCartesian(0, 0, 4*globe.EquatorialRadius())
	projection, _ := matrix.Perspective(45, 1, globe.EquatorialRadius(), 10*globe.EquatorialRadius())
	frustum := geom.NewFrustum()
	frustum.SetToModelviewProjection(projection,
		matrix.LookAt(eye, globe.GeographicToCartesian(0, 0, 0), globe.GeographicToCartesianTransform(0, 0, 0).Column(1)),
		geom.Viewport{Width: 512, Height: 512})

	tiles := selector.Select(cull.Frame{
		Frustum:        frustum,
		EyePoint:       eye,
		PixelSizeScale: cull.PixelSizeScale(45, 512),
	})

	area := 0.0
	for _, t := range tiles {
		area += t.Sector.DeltaLatitude() * t.Sector.DeltaLongitude()
	}
	fmt.Printf("full sphere: %v\n", area == 360*180)
	// Output: full sphere: true
}

func ExamplePixelSizeScale() {
	fmt.Printf("%.4f\n", cull.PixelSizeScale(90, 2))
	// Output: 1.0000
}
