// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// CovarianceOfPoints returns the covariance matrix of a point cloud stored as
// interleaved coordinates: point k starts at points[k*stride] and holds x, y, z in its
// first three elements. count is the number of array elements to consider, so the
// points visited are those starting at 0, stride, 2·stride, ... below count-2.
//
// The mean-centred second moments fill the upper-left 3×3 (symmetric, written
// identically above and below the diagonal); every other element is zero.
//
// Errors:
//   - ErrInvalidArgument when stride < 3, count < 3 or count > len(points).
//
// Complexity: O(count/stride) time, O(1) memory.
func CovarianceOfPoints(points []float64, count, stride int) (Matrix4, error) {
	if stride < 3 {
		return Matrix4{}, matrixErrorf(opCovariance, fmt.Errorf("stride %d < 3: %w", stride, ErrInvalidArgument))
	}
	if count < 3 || count > len(points) {
		return Matrix4{}, matrixErrorf(opCovariance, fmt.Errorf("count %d outside [3,%d]: %w", count, len(points), ErrInvalidArgument))
	}

	var (
		idx, n     int     // array cursor and number of points seen
		mx, my, mz float64 // running mean
	)
	for idx = 0; idx+2 < count; idx += stride {
		mx += points[idx]
		my += points[idx+1]
		mz += points[idx+2]
		n++
	}
	inv := 1 / float64(n)
	mx *= inv
	my *= inv
	mz *= inv

	var (
		dx, dy, dz              float64
		c11, c12, c13, c22, c23 float64
		c33                     float64
	)
	for idx = 0; idx+2 < count; idx += stride {
		dx = points[idx] - mx
		dy = points[idx+1] - my
		dz = points[idx+2] - mz
		c11 += dx * dx
		c22 += dy * dy
		c33 += dz * dz
		c12 += dx * dy
		c13 += dx * dz
		c23 += dy * dz
	}
	c11 *= inv
	c12 *= inv
	c13 *= inv
	c22 *= inv
	c23 *= inv
	c33 *= inv

	return Matrix4{
		c11, c12, c13, 0,
		c12, c22, c23, 0,
		c13, c23, c33, 0,
		0, 0, 0, 0,
	}, nil
}
