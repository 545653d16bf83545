// SPDX-License-Identifier: MIT
package geom_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/globekit/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereIntersectsFrustum(t *testing.T) {
	f := geom.NewFrustum()
	for name, tc := range map[string]struct {
		s    geom.BoundingSphere
		want bool
	}{
		"inside":         {geom.NewBoundingSphere(mgl64.Vec3{}, 0.1), true},
		"overlaps right": {geom.NewBoundingSphere(mgl64.Vec3{1.5, 0, 0}, 0.6), true},
		"short of right": {geom.NewBoundingSphere(mgl64.Vec3{1.5, 0, 0}, 0.4), false},
		"touches right":  {geom.NewBoundingSphere(mgl64.Vec3{1.5, 0, 0}, 0.5), false},
		"negative":       {geom.NewBoundingSphere(mgl64.Vec3{1.5, 0, 0}, -3), false},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.IntersectsFrustum(f))
			assert.Equal(t, tc.want, f.IntersectsSphere(tc.s))
		})
	}
}

func TestSphereSetToPoints(t *testing.T) {
	var s geom.BoundingSphere
	require.NoError(t, s.SetToPoints(cubeCorners(mgl64.Vec3{1, 2, 3}, 2), 24, 3))
	assert.True(t, s.Center.ApproxEqualThreshold(mgl64.Vec3{1, 2, 3}, tol))
	assert.InDelta(t, 2*1.7320508075688772, s.Radius, tol)

	assert.InDelta(t, 0.0, s.DistanceTo(mgl64.Vec3{1, 2, 3}), tol)
	assert.InDelta(t, 10-s.Radius, s.DistanceTo(mgl64.Vec3{11, 2, 3}), tol)

	assert.ErrorIs(t, s.SetToPoints([]float64{1, 2}, 2, 3), geom.ErrInvalidArgument)
}
