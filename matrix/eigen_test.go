// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/globekit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symmetric(a11, a12, a13, a22, a23, a33 float64) matrix.Matrix4 {
	return matrix.NewMatrix4(
		a11, a12, a13, 0,
		a12, a22, a23, 0,
		a13, a23, a33, 0,
		0, 0, 0, 0,
	)
}

func TestExtractEigenvectorsOrthogonalAndOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		m := symmetric(
			rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*10-5,
			rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*10-5,
		)
		vecs, ok := m.ExtractEigenvectors()
		require.True(t, ok)

		// pairwise orthogonal
		for a := 0; a < 3; a++ {
			for b := a + 1; b < 3; b++ {
				la, lb := vecs[a].Len(), vecs[b].Len()
				if la == 0 || lb == 0 {
					continue
				}
				assert.InDelta(t, 0.0, vecs[a].Dot(vecs[b])/(la*lb), 1e-8, "iteration %d vectors %d,%d", i, a, b)
			}
		}

		// non-increasing magnitude
		assert.GreaterOrEqual(t, vecs[0].Len()+1e-12, vecs[1].Len())
		assert.GreaterOrEqual(t, vecs[1].Len()+1e-12, vecs[2].Len())
	}
}

func TestEigenBasisSatisfiesDefinition(t *testing.T) {
	m := symmetric(4, 1, 2, 3, 0, 5)
	basis, values, ok := m.EigenBasis()
	require.True(t, ok)

	a := m.Upper3()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0, basis[i].Len(), 1e-9)
		av := a.MultiplyVec3(basis[i])
		lv := basis[i].Mul(values[i])
		for k := 0; k < 3; k++ {
			assert.InDelta(t, lv[k], av[k], 1e-8)
		}
	}
	// trace is preserved by similarity transforms
	assert.InDelta(t, 12.0, values[0]+values[1]+values[2], 1e-9)
}

func TestExtractEigenvectorsDiagonal(t *testing.T) {
	vecs, ok := symmetric(1, 0, 0, 3, 0, -2).ExtractEigenvectors()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, 3, 0}, vecs[0])
	assert.Equal(t, mgl64.Vec3{0, 0, -2}, vecs[1])
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, vecs[2])
}

func TestExtractEigenvectorsNotSymmetric(t *testing.T) {
	m := symmetric(1, 2, 3, 4, 5, 6)
	m[4] = 2.0000000001 // m21 differs from m12 in the last bits
	_, ok := m.ExtractEigenvectors()
	assert.False(t, ok)

	m = symmetric(1, 2, 3, 4, 5, 6)
	m[9] = math.Nextafter(5, 6)
	_, _, ok = m.EigenBasis()
	assert.False(t, ok)
}

func TestCovarianceOfPoints(t *testing.T) {
	// four points on a line along X, stride 4 with a trailing attribute
	points := []float64{
		-3, 1, 2, 99,
		-1, 1, 2, 99,
		1, 1, 2, 99,
		3, 1, 2, 99,
	}
	cov, err := matrix.CovarianceOfPoints(points, len(points), 4)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, cov[0], tol) // (9+1+1+9)/4
	for _, i := range []int{1, 2, 4, 5, 6, 8, 9, 10, 15} {
		assert.InDelta(t, 0.0, cov[i], tol, "element %d", i)
	}

	vecs, ok := cov.ExtractEigenvectors()
	require.True(t, ok)
	assert.InDelta(t, 5.0, math.Abs(vecs[0][0]), tol)
}

func TestCovarianceOfPointsInvalid(t *testing.T) {
	points := []float64{0, 0, 0, 1, 1, 1}
	for name, tc := range map[string]struct{ count, stride int }{
		"short stride":    {6, 2},
		"count too big":   {7, 3},
		"count too small": {2, 3},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.CovarianceOfPoints(points, tc.count, tc.stride)
			assert.ErrorIs(t, err, matrix.ErrInvalidArgument)
		})
	}
}
