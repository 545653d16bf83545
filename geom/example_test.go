// SPDX-License-Identifier: MIT
package geom_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/globekit/geom"
)

func ExampleFrustum_ContainsPoint() {
	f := geom.NewFrustum()
	fmt.Println(f.ContainsPoint(mgl64.Vec3{0, 0, 0}))
	fmt.Println(f.ContainsPoint(mgl64.Vec3{1, 0, 0}))
	fmt.Println(f.IntersectsSegment(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1.0000001, 0, 0}))
	fmt.Println(f.IntersectsSegment(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{1.0000001, 0, 0}))
	// Output:
	// true
	// false
	// true
	// false
}

func ExampleBoundingBox_IntersectsFrustum() {
	f := geom.NewFrustum()
	b := geom.NewBoundingBox()
	fmt.Println(b.IntersectsFrustum(f))

	b.Translate(3, 0, 0)
	fmt.Println(b.IntersectsFrustum(f))
	// Output:
	// true
	// false
}
