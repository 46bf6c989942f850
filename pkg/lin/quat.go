package lin

// Quat is a rotation quaternion with scalar part W and vector part V.
//
// All operations assume unit norm unless stated otherwise. Repeated
// composition drifts away from unit norm, see Renormalize.
type Quat[T Float] struct {
	W T
	V Vec3[T]
}

// QuatIdent returns the identity rotation.
func QuatIdent[T Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// QuatFromAxisAngle returns the rotation about the unit axis by angle in
// radians.
func QuatFromAxisAngle[T Float](axis Vec3[T], angle T) Quat[T] {
	sin, cos := Sincos(angle / 2)
	return Quat[T]{W: cos, V: axis.Mul(sin)}
}

// QuatFromMat3 returns the rotation encoded by the rotation matrix m.
func QuatFromMat3[T Float](m Mat3[T]) Quat[T] {
	// Shepperd's method, branching on the largest diagonal quantity.
	m00, m11, m22 := m[0], m[4], m[8]
	m01, m02, m12 := m[3], m[6], m[7]
	m10, m20, m21 := m[1], m[2], m[5]
	trace := m00 + m11 + m22
	var q Quat[T]
	switch {
	case trace > 0:
		s := Sqrt(trace+1) * 2
		q = Quat[T]{
			W: s / 4,
			V: Vec3[T]{(m21 - m12) / s, (m02 - m20) / s, (m10 - m01) / s},
		}
	case m00 > m11 && m00 > m22:
		s := Sqrt(1+m00-m11-m22) * 2
		q = Quat[T]{
			W: (m21 - m12) / s,
			V: Vec3[T]{s / 4, (m01 + m10) / s, (m02 + m20) / s},
		}
	case m11 > m22:
		s := Sqrt(1+m11-m00-m22) * 2
		q = Quat[T]{
			W: (m02 - m20) / s,
			V: Vec3[T]{(m01 + m10) / s, s / 4, (m12 + m21) / s},
		}
	default:
		s := Sqrt(1+m22-m00-m11) * 2
		q = Quat[T]{
			W: (m10 - m01) / s,
			V: Vec3[T]{(m02 + m20) / s, (m12 + m21) / s, s / 4},
		}
	}
	return q.Normalize()
}

// LookRotation returns the rotation aligning the local z-axis with dir and
// the local y-axis as close to up as possible. Falls back to an arbitrary
// perpendicular when dir and up are collinear.
func LookRotation[T Float](dir, up Vec3[T]) Quat[T] {
	z, _, ok := dir.TryNormalize(0)
	if !ok {
		return QuatIdent[T]()
	}
	x, _, ok := up.Cross(z).TryNormalize(Epsilon[T]())
	if !ok {
		x, _, ok = YAxis[T]().Cross(z).TryNormalize(Epsilon[T]())
		if !ok {
			x = XAxis[T]()
		}
	}
	y := z.Cross(x)
	return QuatFromMat3(Mat3FromCols(x, y, z))
}

// RotationBetween returns the rotation carrying direction a onto direction b
// along the shortest arc. Returns ok false for zero or antiparallel inputs.
func RotationBetween[T Float](a, b Vec3[T]) (Quat[T], bool) {
	ua, _, ok := a.TryNormalize(0)
	if !ok {
		return QuatIdent[T](), false
	}
	ub, _, ok := b.TryNormalize(0)
	if !ok {
		return QuatIdent[T](), false
	}
	dot := ua.Dot(ub)
	if dot <= Epsilon[T]()-1 {
		return QuatIdent[T](), false
	}
	return Quat[T]{W: 1 + dot, V: ua.Cross(ub)}.Normalize(), true
}

// Mul returns the composed rotation applying r first, then q.
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	return Quat[T]{
		W: q.W*r.W - q.V.Dot(r.V),
		V: r.V.Mul(q.W).Add(q.V.Mul(r.W)).Add(q.V.Cross(r.V)),
	}
}

// Inverse returns the inverse rotation, the conjugate for unit norm.
func (q Quat[T]) Inverse() Quat[T] {
	return Quat[T]{W: q.W, V: q.V.Neg()}
}

// Rotate returns v rotated by q.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	t := q.V.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(q.V.Cross(t))
}

// Dot returns the four-dimensional dot product of q and r.
func (q Quat[T]) Dot(r Quat[T]) T {
	return q.W*r.W + q.V.Dot(r.V)
}

// Norm returns the four-dimensional length of q.
func (q Quat[T]) Norm() T {
	return Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit norm.
func (q Quat[T]) Normalize() Quat[T] {
	return q.scale(1 / q.Norm())
}

// Renormalize scales q to unit norm in place and returns its previous norm.
func (q *Quat[T]) Renormalize() T {
	norm := q.Norm()
	*q = q.scale(1 / norm)
	return norm
}

// AxisAngle returns the unit rotation axis and angle of q, or ok false for
// the identity rotation whose axis is undefined.
func (q Quat[T]) AxisAngle() (axis Vec3[T], angle T, ok bool) {
	axis, sin, ok := q.V.TryNormalize(0)
	if !ok {
		return ZAxis[T](), 0, false
	}
	return axis, 2 * Atan2(sin, q.W), true
}

// Angle returns the rotation angle of q in radians.
func (q Quat[T]) Angle() T {
	_, angle, _ := q.AxisAngle()
	return Abs(angle)
}

// Powf returns the fractional rotation scaling the angle of q by t while
// keeping its axis, the spherical linear interpolation from the identity.
func (q Quat[T]) Powf(t T) Quat[T] {
	axis, angle, ok := q.AxisAngle()
	if !ok {
		return QuatIdent[T]()
	}
	return QuatFromAxisAngle(axis, angle*t)
}

// TrySlerp returns the spherical linear interpolation from q to r by t.
// Returns ok false if both rotations are separated by 180 degrees where the
// shortest path is ambiguous, detected by the four-dimensional angle cosine
// vanishing within eps.
func (q Quat[T]) TrySlerp(r Quat[T], t, eps T) (Quat[T], bool) {
	dot := q.Dot(r)
	if Abs(dot) <= eps {
		return QuatIdent[T](), false
	}
	if dot < 0 {
		r = r.scale(-1)
		dot = -dot
	}
	if dot >= 1-Epsilon[T]() {
		// Nearly identical, fall back to normalized linear interpolation.
		return q.scale(1 - t).add(r.scale(t)).Normalize(), true
	}
	omega := Acos(dot)
	sinOmega, _ := Sincos(omega)
	sa, _ := Sincos((1 - t) * omega)
	sb, _ := Sincos(t * omega)
	return q.scale(sa / sinOmega).add(r.scale(sb / sinOmega)), true
}

func (q Quat[T]) scale(s T) Quat[T] {
	return Quat[T]{W: q.W * s, V: q.V.Mul(s)}
}

func (q Quat[T]) add(r Quat[T]) Quat[T] {
	return Quat[T]{W: q.W + r.W, V: q.V.Add(r.V)}
}
