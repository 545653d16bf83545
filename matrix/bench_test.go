// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/globekit/matrix"
)

// BenchmarkInverse measures the general LU inversion path.
func BenchmarkInverse(b *testing.B) {
	m := randomInvertible(rand.New(rand.NewSource(1)))

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := m.Inverse(); err != nil {
			b.Fatalf("Inverse failed: %v", err)
		}
	}
}

// BenchmarkInverseOrthonormal measures the O(1) rigid-transform inversion.
func BenchmarkInverseOrthonormal(b *testing.B) {
	m := rigidTransform(rand.New(rand.NewSource(1)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m = m.InverseOrthonormal()
	}
}

// BenchmarkEigenBasis measures Jacobi decomposition of a dense symmetric block.
func BenchmarkEigenBasis(b *testing.B) {
	m := symmetric(4, 1, 2, 3, 0.5, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, ok := m.EigenBasis(); !ok {
			b.Fatal("EigenBasis rejected a symmetric matrix")
		}
	}
}

// BenchmarkCovarianceOfPoints measures covariance over 1024 interleaved points.
func BenchmarkCovarianceOfPoints(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	points := make([]float64, 1024*3)
	for i := range points {
		points[i] = rng.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.CovarianceOfPoints(points, len(points), 3); err != nil {
			b.Fatalf("CovarianceOfPoints failed: %v", err)
		}
	}
}
