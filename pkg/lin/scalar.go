// Package lin provides linear algebra for trackball camera math.
// All types are generic over the floating-point scalar so that single and
// double precision share one implementation.
package lin

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for all lin types.
type Float interface {
	constraints.Float
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to the range [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Sincos returns the sine and cosine of x.
func Sincos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Atan2 returns the arc tangent of y/x honoring the signs of both.
func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Acos returns the arc cosine of x clamped to its domain.
func Acos[T Float](x T) T {
	return T(math.Acos(float64(Clamp(x, -1, 1))))
}

// Tan returns the tangent of x.
func Tan[T Float](x T) T {
	return T(math.Tan(float64(x)))
}

// Atan returns the arc tangent of x.
func Atan[T Float](x T) T {
	return T(math.Atan(float64(x)))
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if unsafe.Sizeof(T(0)) == 4 {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Float]() T {
	if unsafe.Sizeof(T(0)) == 4 {
		return T(math.MaxFloat32)
	}
	max := float64(math.MaxFloat64)
	return T(max)
}

// MinValue returns the most negative finite value of T.
func MinValue[T Float]() T {
	return -MaxValue[T]()
}
