package trackball

import (
	"github.com/qu1x/trackball/pkg/lin"
)

// Frame is the camera pose with respect to eye and target.
//
// The eye position is derived from the target position, the eye rotation
// around the target, and the eye-target distance. Construct with LookAt, the
// zero value has a degenerate rotation.
type Frame[T lin.Float] struct {
	// Target position in world space.
	pos lin.Vec3[T]
	// Eye rotation from camera to world space around the target.
	rot lin.Quat[T]
	// Target distance from eye.
	zat T
}

// LookAt returns the frame with the given target position and eye position
// inclusive its roll attitude in world space.
func LookAt[T lin.Float](target, eye, up lin.Vec3[T]) Frame[T] {
	dir := target.Sub(eye)
	return Frame[T]{
		pos: target,
		rot: lin.LookRotation(dir.Neg(), up),
		zat: dir.Norm(),
	}
}

// Eye returns the eye position in world space.
func (f Frame[T]) Eye() lin.Vec3[T] {
	return f.pos.Add(f.rot.Rotate(lin.ZAxis[T]()).Mul(f.zat))
}

// SetEye sets the eye position inclusive its roll attitude in world space
// preserving the target position.
func (f *Frame[T]) SetEye(eye, up lin.Vec3[T]) {
	*f = LookAt(f.pos, eye, up)
}

// Target returns the target position in world space.
func (f Frame[T]) Target() lin.Vec3[T] {
	return f.pos
}

// SetTarget sets the target position in world space preserving the eye
// position inclusive its roll attitude.
func (f *Frame[T]) SetTarget(target lin.Vec3[T]) {
	eye := f.Eye()
	f.pos = target
	f.zat = f.pos.Sub(eye).Norm()
}

// Distance returns the distance between eye and target.
func (f Frame[T]) Distance() T {
	return f.zat
}

// SetDistance sets the distance between eye and target preserving the
// target position.
func (f *Frame[T]) SetDistance(zat T) {
	f.zat = zat
}

// Scale scales the distance between eye and target by the ratio preserving
// the target position.
func (f *Frame[T]) Scale(rat T) {
	f.zat *= rat
}

// LocalScaleAround scales the distance between eye and the point in camera
// space by the ratio preserving the target position.
func (f *Frame[T]) LocalScaleAround(rat T, pos lin.Vec3[T]) {
	f.LocalSlide(pos.Sub(pos.Mul(rat)))
	f.Scale(rat)
}

// ScaleAround scales the distance between eye and the point in world space
// by the ratio preserving the target position.
func (f *Frame[T]) ScaleAround(rat T, pos lin.Vec3[T]) {
	pos = pos.Sub(f.pos)
	f.Slide(pos.Sub(pos.Mul(rat)))
	f.Scale(rat)
}

// LocalSlide slides the camera eye and target by the vector in camera space.
func (f *Frame[T]) LocalSlide(vec lin.Vec3[T]) {
	f.pos = f.pos.Add(f.rot.Rotate(vec))
}

// Slide slides the camera eye and target by the vector in world space.
func (f *Frame[T]) Slide(vec lin.Vec3[T]) {
	f.pos = f.pos.Add(vec)
}

// LocalOrbit orbits the eye by the rotation in camera space around the
// target.
func (f *Frame[T]) LocalOrbit(rot lin.Quat[T]) {
	f.rot = f.rot.Mul(rot)
}

// LocalOrbitAround orbits the eye by the rotation in camera space around
// the point in camera space.
func (f *Frame[T]) LocalOrbitAround(rot lin.Quat[T], pos lin.Vec3[T]) {
	f.LocalSlide(pos.Sub(rot.Rotate(pos)))
	f.LocalOrbit(rot)
}

// Orbit orbits the eye by the rotation in world space around the target.
func (f *Frame[T]) Orbit(rot lin.Quat[T]) {
	f.rot = rot.Mul(f.rot)
}

// OrbitAround orbits the eye by the rotation in world space around the
// point in world space.
func (f *Frame[T]) OrbitAround(rot lin.Quat[T], pos lin.Vec3[T]) {
	pos = pos.Sub(f.pos)
	f.Slide(pos.Sub(rot.Rotate(pos)))
	f.Orbit(rot)
}

// LookAround orbits the target around the eye by pitch and yaw preserving
// the roll attitude, also known as first person view.
//
// Use a fixed yaw axis by capturing YawAxis when entering first person view.
func (f *Frame[T]) LookAround(pitch, yaw T, yawAxis lin.Vec3[T]) {
	pitchRot := lin.QuatFromAxisAngle(f.PitchAxis(), pitch)
	yawRot := lin.QuatFromAxisAngle(yawAxis, yaw)
	f.OrbitAround(yawRot.Mul(pitchRot), f.Eye())
}

// LocalPitchAxis returns the positive x-axis in camera space pointing from
// left to right.
func (f Frame[T]) LocalPitchAxis() lin.Vec3[T] {
	return lin.XAxis[T]()
}

// LocalYawAxis returns the positive y-axis in camera space pointing from
// bottom to top.
func (f Frame[T]) LocalYawAxis() lin.Vec3[T] {
	return lin.YAxis[T]()
}

// LocalRollAxis returns the positive z-axis in camera space pointing from
// back to front.
func (f Frame[T]) LocalRollAxis() lin.Vec3[T] {
	return lin.ZAxis[T]()
}

// PitchAxis returns the positive x-axis in world space pointing from left
// to right.
func (f Frame[T]) PitchAxis() lin.Vec3[T] {
	return f.rot.Rotate(f.LocalPitchAxis())
}

// YawAxis returns the positive y-axis in world space pointing from bottom
// to top.
func (f Frame[T]) YawAxis() lin.Vec3[T] {
	return f.rot.Rotate(f.LocalYawAxis())
}

// RollAxis returns the positive z-axis in world space pointing from back to
// front.
func (f Frame[T]) RollAxis() lin.Vec3[T] {
	return f.rot.Rotate(f.LocalRollAxis())
}

// TryLerpSlerp interpolates between two frames by t using linear
// interpolation for the translation part and spherical linear interpolation
// for the rotation part.
//
// Returns ok false if the rotations are separated by 180 degrees in which
// case the interpolation is not well-defined, detected within eps.
func (f Frame[T]) TryLerpSlerp(other Frame[T], t, eps T) (Frame[T], bool) {
	rot, ok := f.rot.TrySlerp(other.rot, t, eps)
	if !ok {
		return Frame[T]{}, false
	}
	return Frame[T]{
		pos: f.pos.Lerp(other.pos, t),
		rot: rot,
		zat: f.zat*(1-t) + other.zat*t,
	}, true
}

// Renormalize renormalizes the eye rotation and returns its previous norm.
func (f *Frame[T]) Renormalize() T {
	return f.rot.Renormalize()
}

// View returns the view transformation from camera to world space.
func (f Frame[T]) View() lin.Isometry3[T] {
	return lin.IsometryFromParts(f.Eye(), f.rot)
}

// InverseView returns the inverse view transformation from world to camera
// space.
//
// Uses less computations than View followed by an inversion.
func (f Frame[T]) InverseView() lin.Isometry3[T] {
	// Eye rotation from world to camera space around the target.
	rot := f.rot.Inverse()
	// Eye position in camera space with origin in world space.
	eye := rot.Rotate(f.pos).Add(lin.ZAxis[T]().Mul(f.zat))
	// Translate such that the eye position in world space vanishes.
	return lin.IsometryFromParts(eye.Neg(), rot)
}
