package trackball

import (
	"math"

	"github.com/qu1x/trackball/pkg/lin"
)

// Orbit computes the rotation induced by a pointer displacement on screen
// via the exponential map.
//
// The zero value is an idle handler ready for the first sample. Compute and
// Discard must be invoked on matching events fired by the 3D graphics
// library of choice: Compute on every pointer position event while the
// gesture is active and Discard on button or finger release, otherwise the
// next gesture computes a rotation from stale state.
type Orbit[T lin.Float] struct {
	// Cached normalization of the previous pointer position.
	ray lin.Vec3[T]
	len T
	// Whether a previous position is cached, idle otherwise.
	tracking bool
}

// Compute returns the rotation between the previous and current pointer
// position. The current position pos is clamped between the origin and the
// maximum position max as the screen's width and height.
//
// Screen space has its origin in the top left corner:
//
//   - x-axis from left to right,
//   - y-axis from top to bottom.
//
// Camera space has its origin at the target, the trackball's center:
//
//   - x-axis from left to right,
//   - y-axis from bottom to top,
//   - z-axis from far to near.
//
// Returns ok false:
//
//   - on the first invocation and after Discard as there is no previous
//     position yet,
//   - in the unlikely case that a position event fires twice resulting in
//     zero displacement.
func (o *Orbit[T]) Compute(pos, max lin.Vec2[T]) (lin.Quat[T], bool) {
	// Clamped pointer position from left to right and top to bottom.
	pos = ClampPos(pos, max)
	// Centered pointer position and its maximum from left to right and
	// bottom to top.
	cpos, cmax := CenterPos(pos, max)
	// Positive z-axis pointing from far to near.
	pza := lin.ZAxis[T]()
	// New position as ray and length on the xy-plane or the z-axis of zero
	// length for the origin position.
	ray, length, ok := lin.Vec3[T]{X: cpos.X, Y: cpos.Y}.TryNormalize(0)
	if !ok {
		ray, length = pza, 0
	}
	// Get old ray and length as start position and offset and replace with
	// new ray and length.
	old, off, tracking := o.ray, o.len, o.tracking
	o.ray, o.len, o.tracking = ray, length, true
	if !tracking {
		return lin.QuatIdent[T](), false
	}
	// Displacement vector from old to new ray and length.
	vec := ray.Mul(length).Sub(old.Mul(off))
	// Shadow new ray and length as normalized displacement vector.
	ray, length, ok = vec.TryNormalize(0)
	if !ok {
		return lin.QuatIdent[T](), false
	}
	// Treat maximum of half the screen's width or height as the trackball's
	// radius.
	radius := cmax.X
	if cmax.Y > radius {
		radius = cmax.Y
	}
	// Map the trackball's diameter onto half its circumference for start
	// positions so that only screen corners are mapped to the lower
	// hemisphere which induces less intuitive rotations.
	sin, cos := lin.Sincos(off / radius * T(math.Pi/2))
	// Exponential map of the start position.
	exp := lin.Vec3[T]{X: sin * old.X, Y: sin * old.Y, Z: cos}
	// Tangent ray of the geodesic at the exponential map.
	tan := lin.Vec3[T]{X: cos * old.X, Y: cos * old.Y, Z: -sin}
	// Cross product of the z-axis and the start position to construct
	// orthonormal frames.
	zxp := lin.Vec3[T]{X: -old.Y, Y: old.X}
	// Orthonormal frame as argument of the differential of the exponential
	// map.
	arg := lin.Mat3FromCols(pza, old, zxp)
	// Orthonormal frame as image of the differential of the exponential map.
	img := lin.Mat3FromCols(exp, tan, zxp)
	// Compute the differential of the exponential map by its argument and
	// image and apply it to the displacement vector which in turn spans the
	// rotation plane together with the exponential map.
	axis, _, ok := img.MulVec(arg.TransposeMulVec(ray)).Cross(exp).TryNormalize(0)
	if !ok {
		return lin.QuatIdent[T](), false
	}
	// Angle of rotation is the displacement length divided by the radius.
	return lin.QuatFromAxisAngle(axis, length/radius), true
}

// Discard discards the cached normalization of the previous pointer
// position on button or finger release.
func (o *Orbit[T]) Discard() {
	o.tracking = false
}
