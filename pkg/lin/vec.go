package lin

// Vec2 is a two-dimensional vector or point.
type Vec2[T Float] struct {
	X, Y T
}

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - w.X, v.Y - w.Y}
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

// Mul returns v scaled by s.
func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Perp returns the perpendicular dot product of v and w, that is the z
// component of their cross product when both are embedded in 3D.
func (v Vec2[T]) Perp(w Vec2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// NormSq returns the squared length of v.
func (v Vec2[T]) NormSq() T {
	return v.Dot(v)
}

// Norm returns the length of v.
func (v Vec2[T]) Norm() T {
	return Sqrt(v.NormSq())
}

// TryNormalize returns the unit vector of v and its length, or ok false if
// the length does not exceed eps.
func (v Vec2[T]) TryNormalize(eps T) (unit Vec2[T], norm T, ok bool) {
	norm = v.Norm()
	if norm <= eps {
		return Vec2[T]{}, norm, false
	}
	return v.Mul(1 / norm), norm, true
}

// Vec3 is a three-dimensional vector or point.
type Vec3[T Float] struct {
	X, Y, Z T
}

// XAxis returns the positive x-axis.
func XAxis[T Float]() Vec3[T] {
	return Vec3[T]{X: 1}
}

// YAxis returns the positive y-axis.
func YAxis[T Float]() Vec3[T] {
	return Vec3[T]{Y: 1}
}

// ZAxis returns the positive z-axis.
func ZAxis[T Float]() Vec3[T] {
	return Vec3[T]{Z: 1}
}

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Mul returns v scaled by s.
func (v Vec3[T]) Mul(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// NormSq returns the squared length of v.
func (v Vec3[T]) NormSq() T {
	return v.Dot(v)
}

// Norm returns the length of v.
func (v Vec3[T]) Norm() T {
	return Sqrt(v.NormSq())
}

// Normalize returns the unit vector of v. The result is undefined for a
// zero vector, see TryNormalize.
func (v Vec3[T]) Normalize() Vec3[T] {
	return v.Mul(1 / v.Norm())
}

// TryNormalize returns the unit vector of v and its length, or ok false if
// the length does not exceed eps.
func (v Vec3[T]) TryNormalize(eps T) (unit Vec3[T], norm T, ok bool) {
	norm = v.Norm()
	if norm <= eps {
		return Vec3[T]{}, norm, false
	}
	return v.Mul(1 / norm), norm, true
}

// At returns the component of v with index i, in x, y, z order.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Angle returns the angle between v and w in radians.
func (v Vec3[T]) Angle(w Vec3[T]) T {
	nn := v.Norm() * w.Norm()
	if nn == 0 {
		return 0
	}
	return Acos(v.Dot(w) / nn)
}

// Lerp returns the linear interpolation from v to w by t.
func (v Vec3[T]) Lerp(w Vec3[T], t T) Vec3[T] {
	return v.Add(w.Sub(v).Mul(t))
}
