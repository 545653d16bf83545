// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/globekit/matrix"
)

// ExampleMatrix4_Inverse inverts a scale+translation transform with the general
// LU path and checks it against the orthonormal fast path on a rigid transform.
func ExampleMatrix4_Inverse() {
	m := matrix.Translation(2, 0, 0).Multiply(matrix.Scale(4, 4, 4))
	inv, err := m.Inverse()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(inv.TransformPoint(mgl64.Vec3{6, 4, 0}))

	rigid := matrix.Translation(1, 2, 3).Multiply(matrix.Rotation(mgl64.Vec3{0, 0, 1}, 30))
	general, _ := rigid.Inverse()
	fmt.Println(general.EqualApprox(rigid.InverseOrthonormal(), 1e-12))

	_, err = matrix.Matrix4{}.Inverse()
	fmt.Println(err)
	// Output:
	// [1 1 0]
	// true
	// Inverse: matrix: singular matrix
}

// ExampleMatrix4_ExtractEigenvectors recovers the principal axis of points spread
// along the line x = y.
func ExampleMatrix4_ExtractEigenvectors() {
	points := []float64{
		-2, -2, 0,
		-1, -1, 0,
		1, 1, 0,
		2, 2, 0,
	}
	cov, _ := matrix.CovarianceOfPoints(points, len(points), 3)
	basis, values, ok := cov.EigenBasis()
	fmt.Println(ok)
	fmt.Printf("%.4f %.4f %.4f\n", values[0], abs(basis[0][0]), abs(basis[0][1]))
	// Output:
	// true
	// 5.0000 0.7071 0.7071
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
