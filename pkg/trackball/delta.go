package trackball

import (
	"errors"

	"github.com/qu1x/trackball/pkg/lin"
)

// ErrIncomparable is returned by Minimum for two delta transforms of
// differing non-identity variants whose magnitudes have no common measure.
var ErrIncomparable = errors.New("trackball: incomparable delta transforms")

// Delta is a transform from an initial to a final Frame.
//
// It is a closed sum over the variants DeltaIdentity, DeltaFirst,
// DeltaTrack, DeltaOrbit, DeltaSlide, and DeltaScale.
type Delta[T lin.Float] interface {
	// Transform transforms the initial into the final frame.
	Transform(frame Frame[T]) Frame[T]
	// Inverse inverts the delta transform, effectively swapping the
	// initial with the final frame.
	Inverse() Delta[T]
	// LerpSlerp interpolates the delta transform to a fraction t using
	// linear interpolation for the translation part and spherical linear
	// interpolation for the rotation part.
	LerpSlerp(t T) Delta[T]

	sealedDelta()
}

// DeltaIdentity yields the frame unchanged.
type DeltaIdentity[T lin.Float] struct{}

// DeltaFirst orbits the target around the eye by pitch and yaw preserving
// the roll attitude, also known as first person view.
//
// See Frame.LookAround.
type DeltaFirst[T lin.Float] struct {
	// Pitch angle.
	Pitch T
	// Yaw angle.
	Yaw T
	// Yaw axis.
	YawAxis lin.Vec3[T]
}

// DeltaTrack tracks a target which slides by a vector in world space,
// preserving the eye position inclusive its roll attitude.
type DeltaTrack[T lin.Float] struct {
	// Vec is the vector in world space of a sliding target to track.
	Vec lin.Vec3[T]
}

// DeltaOrbit orbits the eye by a rotation in camera space around a point in
// camera space.
//
// See Frame.LocalOrbitAround.
type DeltaOrbit[T lin.Float] struct {
	// Rot is the rotation in camera space.
	Rot lin.Quat[T]
	// Pos is the pivot point in camera space.
	Pos lin.Vec3[T]
}

// DeltaSlide slides the camera eye and target by a vector in camera space.
//
// See Frame.LocalSlide.
type DeltaSlide[T lin.Float] struct {
	// Vec is the vector in camera space.
	Vec lin.Vec3[T]
}

// DeltaScale scales the distance between eye and a point in camera space by
// a ratio preserving the target position.
//
// See Frame.LocalScaleAround.
type DeltaScale[T lin.Float] struct {
	// Rat is the scale ratio.
	Rat T
	// Pos is the pivot point in camera space.
	Pos lin.Vec3[T]
}

func (DeltaIdentity[T]) sealedDelta() {}
func (DeltaFirst[T]) sealedDelta()    {}
func (DeltaTrack[T]) sealedDelta()    {}
func (DeltaOrbit[T]) sealedDelta()    {}
func (DeltaSlide[T]) sealedDelta()    {}
func (DeltaScale[T]) sealedDelta()    {}

// Transform returns the frame unchanged.
func (DeltaIdentity[T]) Transform(frame Frame[T]) Frame[T] {
	return frame
}

// Transform applies the first person view rotation to the frame.
func (d DeltaFirst[T]) Transform(frame Frame[T]) Frame[T] {
	frame.LookAround(d.Pitch, d.Yaw, d.YawAxis)
	return frame
}

// Transform slides the target of the frame by the vector in world space.
func (d DeltaTrack[T]) Transform(frame Frame[T]) Frame[T] {
	frame.SetTarget(frame.Target().Add(d.Vec))
	return frame
}

// Transform orbits the eye of the frame around the pivot.
func (d DeltaOrbit[T]) Transform(frame Frame[T]) Frame[T] {
	frame.LocalOrbitAround(d.Rot, d.Pos)
	return frame
}

// Transform slides the frame by the vector in camera space.
func (d DeltaSlide[T]) Transform(frame Frame[T]) Frame[T] {
	frame.LocalSlide(d.Vec)
	return frame
}

// Transform scales the frame distance around the pivot.
func (d DeltaScale[T]) Transform(frame Frame[T]) Frame[T] {
	frame.LocalScaleAround(d.Rat, d.Pos)
	return frame
}

// Inverse returns the identity.
func (d DeltaIdentity[T]) Inverse() Delta[T] {
	return d
}

// Inverse negates pitch and yaw.
func (d DeltaFirst[T]) Inverse() Delta[T] {
	return DeltaFirst[T]{Pitch: -d.Pitch, Yaw: -d.Yaw, YawAxis: d.YawAxis}
}

// Inverse negates the vector.
func (d DeltaTrack[T]) Inverse() Delta[T] {
	return DeltaTrack[T]{Vec: d.Vec.Neg()}
}

// Inverse inverts the rotation keeping the pivot.
func (d DeltaOrbit[T]) Inverse() Delta[T] {
	return DeltaOrbit[T]{Rot: d.Rot.Inverse(), Pos: d.Pos}
}

// Inverse negates the vector.
func (d DeltaSlide[T]) Inverse() Delta[T] {
	return DeltaSlide[T]{Vec: d.Vec.Neg()}
}

// Inverse reflects the ratio about one keeping the pivot.
func (d DeltaScale[T]) Inverse() Delta[T] {
	return DeltaScale[T]{Rat: 2 - d.Rat, Pos: d.Pos}
}

// LerpSlerp returns the identity.
func (d DeltaIdentity[T]) LerpSlerp(T) Delta[T] {
	return d
}

// LerpSlerp scales pitch and yaw by t.
func (d DeltaFirst[T]) LerpSlerp(t T) Delta[T] {
	return DeltaFirst[T]{Pitch: d.Pitch * t, Yaw: d.Yaw * t, YawAxis: d.YawAxis}
}

// LerpSlerp scales the vector by t.
func (d DeltaTrack[T]) LerpSlerp(t T) Delta[T] {
	return DeltaTrack[T]{Vec: d.Vec.Mul(t)}
}

// LerpSlerp scales the rotation angle by t keeping the pivot.
func (d DeltaOrbit[T]) LerpSlerp(t T) Delta[T] {
	return DeltaOrbit[T]{Rot: d.Rot.Powf(t), Pos: d.Pos}
}

// LerpSlerp scales the vector by t.
func (d DeltaSlide[T]) LerpSlerp(t T) Delta[T] {
	return DeltaSlide[T]{Vec: d.Vec.Mul(t)}
}

// LerpSlerp interpolates the ratio from one keeping the pivot.
func (d DeltaScale[T]) LerpSlerp(t T) Delta[T] {
	return DeltaScale[T]{Rat: (d.Rat-1)*t + 1, Pos: d.Pos}
}

// Minimum combines two delta transforms by choosing the per-component
// smaller magnitude. If either operand is the identity, the other operand
// wins. Two differing non-identity variants are incomparable and yield
// ErrIncomparable.
func Minimum[T lin.Float](a, b Delta[T]) (Delta[T], error) {
	if _, ok := a.(DeltaIdentity[T]); ok {
		return b, nil
	}
	if _, ok := b.(DeltaIdentity[T]); ok {
		return a, nil
	}
	switch a := a.(type) {
	case DeltaFirst[T]:
		if b, ok := b.(DeltaFirst[T]); ok {
			return DeltaFirst[T]{
				Pitch:   minAbs(a.Pitch, b.Pitch),
				Yaw:     minAbs(a.Yaw, b.Yaw),
				YawAxis: a.YawAxis,
			}, nil
		}
	case DeltaTrack[T]:
		if b, ok := b.(DeltaTrack[T]); ok {
			if b.Vec.NormSq() < a.Vec.NormSq() {
				return b, nil
			}
			return a, nil
		}
	case DeltaOrbit[T]:
		if b, ok := b.(DeltaOrbit[T]); ok {
			if b.Rot.Angle() < a.Rot.Angle() {
				return b, nil
			}
			return a, nil
		}
	case DeltaSlide[T]:
		if b, ok := b.(DeltaSlide[T]); ok {
			if b.Vec.NormSq() < a.Vec.NormSq() {
				return b, nil
			}
			return a, nil
		}
	case DeltaScale[T]:
		if b, ok := b.(DeltaScale[T]); ok {
			if lin.Abs(b.Rat-1) < lin.Abs(a.Rat-1) {
				return b, nil
			}
			return a, nil
		}
	}
	return DeltaIdentity[T]{}, ErrIncomparable
}

func minAbs[T lin.Float](a, b T) T {
	if lin.Abs(b) < lin.Abs(a) {
		return b
	}
	return a
}
