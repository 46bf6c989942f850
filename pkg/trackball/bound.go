package trackball

import (
	"github.com/qu1x/trackball/pkg/lin"
)

// Bound implements Clamp with orthogonal boundary conditions.
//
// Construct with NewBound which leaves all boundaries wide open, then
// tighten the fields of interest. A Bound is immutable during a clamp pass
// and may be swapped between passes.
type Bound[T lin.Float] struct {
	// Transform is the isometry in world space of the bound inversely
	// transforming target and eye positions.
	Transform lin.Isometry3[T]
	// MinTarget is the minimum target position in world space.
	MinTarget lin.Vec3[T]
	// MaxTarget is the maximum target position in world space.
	MaxTarget lin.Vec3[T]
	// MinEye is the minimum eye position in world space.
	MinEye lin.Vec3[T]
	// MaxEye is the maximum eye position in world space.
	MaxEye lin.Vec3[T]
	// MinUp is the minimum up axis in world space following yaw.
	MinUp lin.Vec3[T]
	// MaxUp is the maximum up axis in world space following yaw.
	MaxUp lin.Vec3[T]
	// MinDistance is the minimum distance of eye from target.
	MinDistance T
	// MaxDistance is the maximum distance of eye from target.
	MaxDistance T
	// Hysteresis allows a clamped Delta to more likely pass revalidation.
	// A position must exceed a boundary by more than this to count as a
	// violation.
	Hysteresis T
}

// NewBound returns boundary conditions not restricting anything, with a
// hysteresis of the square root of the machine epsilon.
func NewBound[T lin.Float]() Bound[T] {
	min := lin.MinValue[T]()
	max := lin.MaxValue[T]()
	return Bound[T]{
		Transform:   lin.IsometryIdent[T](),
		MinTarget:   lin.Vec3[T]{X: min, Y: min, Z: min},
		MaxTarget:   lin.Vec3[T]{X: max, Y: max, Z: max},
		MinEye:      lin.Vec3[T]{X: min, Y: min, Z: min},
		MaxEye:      lin.Vec3[T]{X: max, Y: max, Z: max},
		MinUp:       lin.Vec3[T]{X: min, Y: min, Z: min},
		MaxUp:       lin.Vec3[T]{X: max, Y: max, Z: max},
		MinDistance: 0,
		MaxDistance: max,
		Hysteresis:  lin.Sqrt(lin.Epsilon[T]()),
	}
}

// Loops uses a lower loop limit for flat boundary conditions where at most
// three independent planes (face, edge, corner) can simultaneously bind.
func (b Bound[T]) Loops() int {
	return 10
}

// Target finds any boundary plane exceeded by the target position, first
// found in x, y, z order. Multiple simultaneous violations are discovered
// across revalidation loops, not in one probe.
func (b Bound[T]) Target(frame Frame[T]) (Plane[T], bool) {
	target := b.Transform.Inverse().ApplyPoint(frame.Target())
	return b.exceeded(target, b.MinTarget, b.MaxTarget, lin.QuatIdent[T]())
}

// Eye finds any boundary plane exceeded by the eye position or the
// eye-target distance. A distance violation is reported as a plane with
// normal along the roll axis at the violated distance.
func (b Bound[T]) Eye(frame Frame[T]) (Plane[T], bool) {
	distance := frame.Distance()
	if b.MinDistance-distance > b.Hysteresis {
		return NewPlane(frame.RollAxis(), b.MinDistance), true
	}
	if b.MaxDistance-distance < -b.Hysteresis {
		return NewPlane(frame.RollAxis(), b.MaxDistance), true
	}
	eye := b.Transform.Inverse().ApplyPoint(frame.Eye())
	return b.exceeded(eye, b.MinEye, b.MaxEye, lin.QuatIdent[T]())
}

// Up finds any boundary plane exceeded by the up axis following yaw.
func (b Bound[T]) Up(frame Frame[T]) (Plane[T], bool) {
	roll := frame.RollAxis()
	yaw := lin.QuatFromAxisAngle(frame.LocalYawAxis(), lin.Atan2(roll.X, roll.Z))
	up := yaw.Rotate(frame.YawAxis())
	return b.exceeded(up, b.MinUp, b.MaxUp, yaw.Inverse())
}

// exceeded probes the point against per-axis min/max corners, rotating each
// axis-aligned boundary plane by rot.
func (b Bound[T]) exceeded(point, min, max lin.Vec3[T], rot lin.Quat[T]) (Plane[T], bool) {
	axes := [3]lin.Vec3[T]{lin.XAxis[T](), lin.YAxis[T](), lin.ZAxis[T]()}
	for i, axis := range axes {
		minPlane := NewPlane(rot.Rotate(axis), min.At(i))
		if minPlane.DistanceFrom(point) > b.Hysteresis {
			return minPlane, true
		}
		maxPlane := NewPlane(rot.Rotate(axis), max.At(i))
		if maxPlane.DistanceFrom(point) < -b.Hysteresis {
			return maxPlane, true
		}
	}
	return Plane[T]{}, false
}
