package trackball

import (
	"math"

	"github.com/qu1x/trackball/pkg/lin"
)

type fixedKind uint8

const (
	fixedHor fixedKind = iota
	fixedVer
	fixedUpp
)

// Fixed is a quantity fixed with respect to the field of view.
//
// Construct with FixedHor, FixedVer, or FixedUpp. The zero value is a fixed
// horizontal field of view of zero, see NewFixed for the default.
type Fixed[T lin.Float] struct {
	kind fixedKind
	val  T
}

// NewFixed returns the default fixed vertical field of view of π/4.
func NewFixed[T lin.Float]() Fixed[T] {
	return FixedVer(T(math.Pi / 4))
}

// FixedHor returns a fixed horizontal field of view, also known as Vert-
// scaling.
func FixedHor[T lin.Float](fov T) Fixed[T] {
	return Fixed[T]{kind: fixedHor, val: fov}
}

// FixedVer returns a fixed vertical field of view, also known as Hor+
// scaling.
func FixedVer[T lin.Float](fov T) Fixed[T] {
	return Fixed[T]{kind: fixedVer, val: fov}
}

// FixedUpp returns a fixed unit per pixel on the focus plane at a distance
// from the eye of one, also known as pixel-based scaling.
func FixedUpp[T lin.Float](upp T) Fixed[T] {
	return Fixed[T]{kind: fixedUpp, val: upp}
}

// ToHor converts to a fixed horizontal field of view with respect to the
// maximum position in screen space.
func (f Fixed[T]) ToHor(max lin.Vec2[T]) Fixed[T] {
	switch f.kind {
	case fixedHor:
		return f
	case fixedVer:
		return FixedHor(lin.Atan(max.X/max.Y*lin.Tan(f.val/2)) * 2)
	default:
		return FixedHor(lin.Atan(max.X/2*f.val) * 2)
	}
}

// ToVer converts to a fixed vertical field of view with respect to the
// maximum position in screen space.
func (f Fixed[T]) ToVer(max lin.Vec2[T]) Fixed[T] {
	switch f.kind {
	case fixedHor:
		return FixedVer(lin.Atan(max.Y/max.X*lin.Tan(f.val/2)) * 2)
	case fixedVer:
		return f
	default:
		return FixedVer(lin.Atan(max.Y/2*f.val) * 2)
	}
}

// ToUpp converts to a fixed unit per pixel on the focus plane at a distance
// from the eye of one with respect to the maximum position in screen space.
func (f Fixed[T]) ToUpp(max lin.Vec2[T]) Fixed[T] {
	switch f.kind {
	case fixedHor:
		return FixedUpp(lin.Tan(f.val/2) * 2 / max.X)
	case fixedVer:
		return FixedUpp(lin.Tan(f.val/2) * 2 / max.Y)
	default:
		return f
	}
}

// MaxAndUpp returns the maximum position in camera space and the unit per
// pixel on the focus plane with respect to the eye-target distance zat and
// the maximum position in screen space.
func (f Fixed[T]) MaxAndUpp(zat T, max lin.Vec2[T]) (lin.Vec2[T], T) {
	switch f.kind {
	case fixedHor:
		x := zat * lin.Tan(f.val/2)
		y := max.Y / max.X * x
		return lin.Vec2[T]{X: x, Y: y}, x * 2 / max.X
	case fixedVer:
		y := zat * lin.Tan(f.val/2)
		x := max.X / max.Y * y
		return lin.Vec2[T]{X: x, Y: y}, y * 2 / max.Y
	default:
		upp := f.val * zat
		return max.Mul(upp / 2), upp
	}
}

// Value returns the underlying quantity.
func (f Fixed[T]) Value() T {
	return f.val
}
