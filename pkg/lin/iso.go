package lin

// Isometry3 is a direct isometry, a rotation followed by a translation.
type Isometry3[T Float] struct {
	Rotation    Quat[T]
	Translation Vec3[T]
}

// IsometryIdent returns the identity isometry.
func IsometryIdent[T Float]() Isometry3[T] {
	return Isometry3[T]{Rotation: QuatIdent[T]()}
}

// IsometryFromParts returns the isometry rotating by rot and translating by
// vec.
func IsometryFromParts[T Float](vec Vec3[T], rot Quat[T]) Isometry3[T] {
	return Isometry3[T]{Rotation: rot, Translation: vec}
}

// ApplyPoint returns the point p transformed by iso.
func (iso Isometry3[T]) ApplyPoint(p Vec3[T]) Vec3[T] {
	return iso.Rotation.Rotate(p).Add(iso.Translation)
}

// ApplyVec returns the vector v rotated by iso, translation does not apply
// to vectors.
func (iso Isometry3[T]) ApplyVec(v Vec3[T]) Vec3[T] {
	return iso.Rotation.Rotate(v)
}

// Inverse returns the inverse isometry.
func (iso Isometry3[T]) Inverse() Isometry3[T] {
	rot := iso.Rotation.Inverse()
	return Isometry3[T]{
		Rotation:    rot,
		Translation: rot.Rotate(iso.Translation).Neg(),
	}
}

// Mul returns the composed isometry applying n first, then iso.
func (iso Isometry3[T]) Mul(n Isometry3[T]) Isometry3[T] {
	return Isometry3[T]{
		Rotation:    iso.Rotation.Mul(n.Rotation),
		Translation: iso.ApplyPoint(n.Translation),
	}
}

// Mat4 returns the homogeneous matrix of iso.
func (iso Isometry3[T]) Mat4() Mat4[T] {
	q := iso.Rotation
	x := q.Rotate(XAxis[T]())
	y := q.Rotate(YAxis[T]())
	z := q.Rotate(ZAxis[T]())
	return Mat4[T]{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		iso.Translation.X, iso.Translation.Y, iso.Translation.Z, 1,
	}
}
