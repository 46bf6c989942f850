package trackball

import (
	"github.com/qu1x/trackball/pkg/lin"
)

// Clamp defines abstract boundary conditions of Frame and Scope.
//
// Specific boundary conditions are defined by implementations (e.g. Bound).
//
// Exceeding a boundary condition is communicated by specifying an exceeded
// plane. If the plane is orthogonal to the Delta, the delta is completely
// stopped. If not, it glides along the plane. In this case, the direction of
// the delta is changed by projecting the exceeded position onto the boundary
// plane and finding the delta from the initial to the projected position.
// This projected delta is repeatedly revalidated by ClampDelta until no new
// boundary plane is exceeded. For orthogonal boundary conditions (e.g. a
// box), revalidation usually passes after one, two, or three loops whenever
// zero, one, or two boundary conditions intersect (i.e. face, edge, or
// corner).
//
// Implementations must be pure functions of their receiver and the frame so
// that a Clamp can be shared between goroutines.
type Clamp[T lin.Float] interface {
	// Loops is the maximum number of revalidations due to the maximum
	// possible number of boundary plane intersections.
	//
	// Measure to break out of the validation loop as a last resort. Round
	// boundary conditions require more loops whereas flat ones should stop
	// with the 3rd validation (i.e. a corner) for each validated position
	// (e.g. target, eye).
	Loops() int
	// Target returns the exceeded boundary plane for the target position
	// in world space, or ok false if the target position satisfies all
	// boundary conditions.
	Target(frame Frame[T]) (Plane[T], bool)
	// Eye returns the exceeded boundary plane for the eye position in
	// world space, or ok false if the eye position satisfies all boundary
	// conditions.
	Eye(frame Frame[T]) (Plane[T], bool)
	// Up returns the exceeded boundary plane for the up position in world
	// space, or ok false if the up position satisfies all boundary
	// conditions.
	Up(frame Frame[T]) (Plane[T], bool)
}

// DefaultLoops is the loop limit for round boundary conditions.
const DefaultLoops = 100

// ClampDelta computes the clamped delta with respect to the boundary
// conditions of c, returning the possibly reduced or redirected delta, the
// number of revalidation loops used, and whether clamping changed the delta
// at all. The unchanged delta is returned with ok false if it already
// satisfies all boundary conditions.
func ClampDelta[T lin.Float](c Clamp[T], frame Frame[T], scope Scope[T], delta Delta[T]) (Delta[T], int, bool) {
	switch delta := delta.(type) {
	case nil, DeltaIdentity[T]:
		return delta, 0, false
	case DeltaFirst[T]:
		return clampFirst(c, frame, delta)
	case DeltaTrack[T]:
		return clampTrack(c, frame, delta)
	case DeltaOrbit[T]:
		return clampOrbit(c, frame, delta)
	case DeltaSlide[T]:
		return clampSlide(c, frame, delta)
	case DeltaScale[T]:
		return clampScale(c, frame, scope, delta)
	}
	return delta, 0, false
}

// capRadius returns the radius of the spherical cap cut from the sphere of
// the given radius by a plane whose projection of the sphere center is at
// the given center distance, via the cap height.
func capRadius[T lin.Float](distance, centerDistance T) T {
	height := distance - centerDistance
	return lin.Sqrt(height * (2*distance - height))
}

func clampFirst[T lin.Float](c Clamp[T], frame Frame[T], delta DeltaFirst[T]) (Delta[T], int, bool) {
	eye := frame.Eye()
	distance := frame.Distance()
	pitchAxis := frame.PitchAxis()
	// Old target position in eye space.
	oldTarget := frame.Target().Sub(eye)
	var minDelta Delta[T] = delta
	loops := 0
	for {
		tentative := minDelta.Transform(frame)
		bound := false
		if plane, ok := c.Target(tentative); ok {
			bound = true
			// Center of the spherical cap in world space.
			center := plane.ProjectPoint(eye)
			// Radius of the spherical cap holding the target at fixed
			// eye-target distance.
			radius := capRadius(distance, center.Sub(eye).Norm())
			// New clamped target position in spherical cap space.
			capTarget, _, ok := plane.ProjectPoint(tentative.Target()).Sub(center).TryNormalize(0)
			if !ok {
				// Zero-radius cap, motion fully stopped.
				minDelta = DeltaIdentity[T]{}
			} else {
				// New clamped target position in eye space.
				newTarget := center.Add(capTarget.Mul(radius)).Sub(eye)
				// Extract the new signed pitch.
				pitchPlane := PlaneWithPoint(pitchAxis, eye)
				pitch := pitchPlane.AngleBetween(
					pitchPlane.ProjectVector(oldTarget),
					pitchPlane.ProjectVector(newTarget),
				)
				// Apply the signed pitch to the old target and extract the
				// left-over signed yaw.
				pitchRot := lin.QuatFromAxisAngle(pitchAxis, pitch)
				pitchTarget := pitchRot.Rotate(oldTarget)
				yawPlane := PlaneWithPoint(delta.YawAxis, eye)
				yaw := yawPlane.AngleBetween(
					yawPlane.ProjectVector(pitchTarget),
					yawPlane.ProjectVector(newTarget),
				)
				minDelta = DeltaFirst[T]{Pitch: pitch, Yaw: yaw, YawAxis: delta.YawAxis}
			}
		}
		if bound {
			if loops == c.Loops() {
				break
			}
			loops++
		} else {
			break
		}
	}
	return minDelta, loops, minDelta != Delta[T](delta)
}

func clampTrack[T lin.Float](c Clamp[T], frame Frame[T], delta DeltaTrack[T]) (Delta[T], int, bool) {
	oldTarget := frame.Target()
	var minDelta Delta[T] = delta
	loops := 0
	for {
		tentative := minDelta.Transform(frame)
		bound := false
		if plane, ok := c.Target(tentative); ok {
			bound = true
			newTarget := plane.ProjectPoint(tentative.Target())
			minDelta = DeltaTrack[T]{Vec: newTarget.Sub(oldTarget)}
		}
		tentative = minDelta.Transform(frame)
		if _, ok := c.Up(tentative); ok {
			bound = true
			// TODO Implement gliding along the up boundary.
			minDelta = DeltaIdentity[T]{}
		}
		if bound {
			if loops == c.Loops() {
				break
			}
			loops++
		} else {
			break
		}
	}
	return minDelta, loops, minDelta != Delta[T](delta)
}

func clampOrbit[T lin.Float](c Clamp[T], frame Frame[T], delta DeltaOrbit[T]) (Delta[T], int, bool) {
	if delta.Pos != (lin.Vec3[T]{}) {
		// An off-origin pivot cannot be clamped locally, fully blocked.
		return DeltaIdentity[T]{}, 0, true
	}
	distance := frame.Distance()
	target := frame.Target()
	// Rotation from world to camera space for the eye in target space.
	oldRotInverse := frame.View().Rotation.Inverse()
	// Old eye position in camera space.
	oldEye := oldRotInverse.Rotate(frame.Eye().Sub(target))
	var minDelta Delta[T] = delta
	loops := 0
	for {
		bound := false
		tentative := minDelta.Transform(frame)
		if plane, ok := c.Eye(tentative); ok {
			bound = true
			// Center of the spherical cap in world space.
			center := plane.ProjectPoint(target)
			// Radius of the spherical cap holding the eye at fixed
			// eye-target distance.
			radius := capRadius(distance, center.Sub(target).Norm())
			// New clamped eye position in spherical cap space.
			capEye, _, ok := plane.ProjectPoint(tentative.Eye()).Sub(center).TryNormalize(0)
			if !ok {
				minDelta = DeltaIdentity[T]{}
			} else {
				// New clamped eye position in camera space.
				newEye := oldRotInverse.Rotate(center.Add(capEye.Mul(radius)).Sub(target))
				// New delta rotation in camera space.
				rot, ok := lin.RotationBetween(oldEye, newEye)
				if !ok {
					rot = lin.QuatIdent[T]()
				}
				minDelta = DeltaOrbit[T]{Rot: rot, Pos: delta.Pos}
			}
		}
		tentative = minDelta.Transform(frame)
		if _, ok := c.Up(tentative); ok {
			bound = true
			// TODO Implement gliding along the up boundary.
			minDelta = DeltaIdentity[T]{}
		}
		if bound {
			if loops == c.Loops() {
				break
			}
			loops++
		} else {
			break
		}
	}
	return minDelta, loops, minDelta != Delta[T](delta)
}

func clampSlide[T lin.Float](c Clamp[T], frame Frame[T], delta DeltaSlide[T]) (Delta[T], int, bool) {
	oldTarget := frame.Target()
	oldRotInverse := frame.View().Rotation.Inverse()
	oldEye := frame.Eye()
	var minDelta Delta[T] = delta
	loops := 0
	for {
		tentative := minDelta.Transform(frame)
		bound := false
		if plane, ok := c.Target(tentative); ok {
			bound = true
			newTarget := plane.ProjectPoint(tentative.Target())
			minDelta = DeltaSlide[T]{Vec: oldRotInverse.Rotate(newTarget.Sub(oldTarget))}
		}
		tentative = minDelta.Transform(frame)
		if plane, ok := c.Eye(tentative); ok {
			bound = true
			newEye := plane.ProjectPoint(tentative.Eye())
			minDelta = DeltaSlide[T]{Vec: oldRotInverse.Rotate(newEye.Sub(oldEye))}
		}
		if bound {
			if loops == c.Loops() {
				break
			}
			loops++
		} else {
			break
		}
	}
	return minDelta, loops, minDelta != Delta[T](delta)
}

func clampScale[T lin.Float](c Clamp[T], frame Frame[T], scope Scope[T], delta DeltaScale[T]) (Delta[T], int, bool) {
	if delta.Pos != (lin.Vec3[T]{}) {
		// An off-origin pivot cannot be clamped locally, fully blocked.
		return DeltaIdentity[T]{}, 0, true
	}
	oldZat := frame.Distance()
	rat := delta.Rat
	var minDelta Delta[T] = delta
	loops := 0
	for {
		tentative := minDelta.Transform(frame)
		bound := false
		if plane, ok := c.Eye(tentative); ok {
			bound = true
			// A plane normal along the roll axis is a distance bound, the
			// single degree of freedom lands exactly on it. Any other eye
			// boundary fully stops the scale.
			// TODO Implement gliding along eye box boundaries.
			if lin.Abs(plane.Normal.Dot(tentative.RollAxis())) >= 1-lin.Sqrt(lin.Epsilon[T]()) && oldZat != 0 {
				rat = plane.Distance() / oldZat
				minDelta = DeltaScale[T]{Rat: rat, Pos: delta.Pos}
			} else {
				minDelta = DeltaIdentity[T]{}
			}
		}
		if scope.Scale() {
			znear, _ := scope.ClipPlanes(0)
			minZat := -znear * (1 + lin.Sqrt(lin.Epsilon[T]()))
			newZat := oldZat * rat
			if newZat < minZat && oldZat != 0 {
				bound = true
				rat = minZat / oldZat
				minDelta = DeltaScale[T]{Rat: rat, Pos: delta.Pos}
			}
		}
		if bound {
			if loops == c.Loops() {
				break
			}
			loops++
		} else {
			break
		}
	}
	return minDelta, loops, minDelta != Delta[T](delta)
}
