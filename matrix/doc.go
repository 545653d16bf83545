// Package matrix provides the fixed-size linear algebra used by the culling kernel.
//
// The matrix package provides:
//
//   - Matrix4, a row-major 4×4 of float64 for affine and projective transforms,
//     with general inversion (LU decomposition with partial pivoting) and an O(1)
//     inversion for orthonormal rotation+translation transforms.
//   - Symmetric eigen-decomposition by cyclic Jacobi rotation, used to extract
//     principal axes from the covariance of a point cloud.
//   - Matrix3, a row-major 3×3 with multiplication, transpose and inversion.
//   - Projection helpers (Perspective, LookAt, UnProject) for building view volumes.
//
// Storage layout: element (row i, column j) of a Matrix4 lives at index 4*i+j,
// so the translation column is m[3], m[7], m[11].
//
// Matrices are values: operations that produce a new matrix return it, and the
// few in-place variants (Invert, InvertOrthonormal) are explicitly alias-safe.
// Nothing in this package locks; share matrices across goroutines by copying.
//
// Points and directions are github.com/go-gl/mathgl/mgl64 Vec3 values.
package matrix
