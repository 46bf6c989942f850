package trackball

import (
	"github.com/qu1x/trackball/pkg/lin"
)

// First computes the pitch and yaw of a first person view induced by a
// pointer displacement on screen.
//
// The zero value is a disabled handler. Capture and Discard must be invoked
// when entering and leaving first person view.
type First[T lin.Float] struct {
	// Captured yaw axis.
	ray      lin.Vec3[T]
	captured bool
}

// Capture captures the current yaw axis when entering first person view.
func (f *First[T]) Capture(yawAxis lin.Vec3[T]) {
	f.ray = yawAxis
	f.captured = true
}

// Compute computes pitch and yaw from the pointer displacement vector in
// screen space, returning them with the captured yaw axis, or ok false if
// no yaw axis has been captured.
//
// Carries pointer displacements to arcs of the same length on great circles
// of an eye-centered trackball with a radius of the maximum of half the
// screen's width and height in compliance with Orbit except that its
// trackball is target-centered.
func (f First[T]) Compute(vec, max lin.Vec2[T]) (pitch, yaw T, yawAxis lin.Vec3[T], ok bool) {
	if !f.captured {
		return 0, 0, lin.Vec3[T]{}, false
	}
	radius := max.X
	if max.Y > radius {
		radius = max.Y
	}
	radius /= 2
	return vec.Y / radius, vec.X / radius, f.ray, true
}

// Discard discards the captured yaw axis when leaving first person view.
func (f *First[T]) Discard() {
	f.captured = false
}

// Enabled returns whether a yaw axis has been captured.
func (f First[T]) Enabled() bool {
	return f.captured
}

// YawAxis returns the captured yaw axis, or ok false if none has been
// captured.
func (f First[T]) YawAxis() (lin.Vec3[T], bool) {
	return f.ray, f.captured
}
