// Package trackball implements a virtual trackball camera with orbiting via
// the exponential map and user-defined boundary conditions.
//
// Pointer displacements on straight radial lines through the screen's center
// are carried to arcs of the same length on great circles of the trackball,
// following the recipe of Stantchev, G., "Virtual Trackball Modeling and the
// Exponential Map".
package trackball

import (
	"github.com/qu1x/trackball/pkg/lin"
)

// Plane encodes a position with signed bias along its unit normal.
//
// Realizes the plane equation a*x+b*y+c*z+d = 0 with unit normal [a, b, c]
// and signed bias d.
type Plane[T lin.Float] struct {
	// Normal is the plane unit normal.
	Normal lin.Vec3[T]
	// Bias is the signed bias along the unit normal.
	Bias T
}

// NewPlane returns the plane with unit normal and signed distance from the
// origin. The bias is the negated distance.
func NewPlane[T lin.Float](normal lin.Vec3[T], distance T) Plane[T] {
	return Plane[T]{Normal: normal, Bias: -distance}
}

// PlaneWithPoint returns the plane with unit normal containing point.
func PlaneWithPoint[T lin.Float](normal, point lin.Vec3[T]) Plane[T] {
	return NewPlane(normal, normal.Dot(point))
}

// Distance returns the signed orthogonal distance from the origin.
func (p Plane[T]) Distance() T {
	return -p.Bias
}

// DistanceFrom returns the signed orthogonal distance from point.
func (p Plane[T]) DistanceFrom(point lin.Vec3[T]) T {
	return p.Distance() - p.Normal.Dot(point)
}

// ProjectVector projects vector onto the plane.
func (p Plane[T]) ProjectVector(vector lin.Vec3[T]) lin.Vec3[T] {
	return vector.Sub(p.Normal.Mul(p.Normal.Dot(vector) + p.Bias))
}

// ProjectPoint projects point onto the plane.
func (p Plane[T]) ProjectPoint(point lin.Vec3[T]) lin.Vec3[T] {
	return p.ProjectVector(point)
}

// ProjectAxis projects the unit axis onto the plane and renormalizes it.
// The result is undefined for an axis parallel to the normal.
func (p Plane[T]) ProjectAxis(axis lin.Vec3[T]) lin.Vec3[T] {
	return p.ProjectVector(axis).Normalize()
}

// AngleBetween returns the signed angle from a to b where both vectors are
// in the plane, using the normal to disambiguate the sign.
func (p Plane[T]) AngleBetween(a, b lin.Vec3[T]) T {
	angle := a.Angle(b)
	if p.Normal.Dot(a.Cross(b)) < 0 {
		return -angle
	}
	return angle
}

// RotateBy rotates the plane.
func (p Plane[T]) RotateBy(rot lin.Quat[T]) Plane[T] {
	return Plane[T]{Normal: rot.Rotate(p.Normal), Bias: p.Bias}
}

// TranslateBy translates the plane.
func (p Plane[T]) TranslateBy(vec lin.Vec3[T]) Plane[T] {
	return Plane[T]{Normal: p.Normal, Bias: p.Bias - p.Normal.Dot(vec)}
}

// TransformBy transforms the plane by a direct isometry, a rotation
// followed by a translation.
func (p Plane[T]) TransformBy(iso lin.Isometry3[T]) Plane[T] {
	return p.RotateBy(iso.Rotation).TranslateBy(iso.Translation)
}
