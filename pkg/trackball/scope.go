package trackball

import (
	"github.com/qu1x/trackball/pkg/lin"
)

// Scope defines the enclosing viewing frustum.
//
// Construct with NewScope.
type Scope[T lin.Float] struct {
	// Fixed quantity with respect to the field of view.
	fov Fixed[T]
	// Near and far clip plane distances from either target or eye
	// depending on the object inspection mode.
	znear, zfar T
	// Object inspection mode scales clip plane distances by measuring
	// from target instead of eye.
	oim bool
	// Orthographic projection mode computes a scale-identical
	// orthographic instead of a perspective projection.
	opm bool
}

// NewScope returns the default scope with a fixed vertical field of view of
// π/4 and clip plane distances (1e-1, 1e+3) measured from the eye.
func NewScope[T lin.Float]() Scope[T] {
	return Scope[T]{
		fov:   NewFixed[T](),
		znear: 1e-1,
		zfar:  1e+3,
	}
}

// Fov returns the fixed quantity with respect to the field of view.
func (s Scope[T]) Fov() Fixed[T] {
	return s.fov
}

// SetFov sets the fixed quantity with respect to the field of view.
func (s *Scope[T]) SetFov(fov Fixed[T]) {
	s.fov = fov
}

// ClipPlanes returns the near and far clip plane distances from the eye
// regardless of the object inspection mode given the eye-target distance.
func (s Scope[T]) ClipPlanes(zat T) (znear, zfar T) {
	if s.oim {
		return zat - s.znear, zat + s.zfar
	}
	return s.znear, s.zfar
}

// SetClipPlanes sets the clip plane distances from target or eye depending
// on the object inspection mode.
func (s *Scope[T]) SetClipPlanes(znear, zfar T) {
	s.znear, s.zfar = znear, zfar
}

// Scale returns the object inspection mode which scales clip plane
// distances by measuring from target instead of eye.
func (s Scope[T]) Scale() bool {
	return s.oim
}

// SetScale sets the object inspection mode.
func (s *Scope[T]) SetScale(oim bool) {
	s.oim = oim
}

// Ortho returns the orthographic projection mode.
func (s Scope[T]) Ortho() bool {
	return s.opm
}

// SetOrtho sets the orthographic projection mode.
func (s *Scope[T]) SetOrtho(opm bool) {
	s.opm = opm
}

// ProjectionAndUpp returns the projection transformation and the unit per
// pixel on the focus plane with respect to the eye-target distance zat and
// the maximum position in screen space.
func (s Scope[T]) ProjectionAndUpp(zat T, max lin.Vec2[T]) (lin.Mat4[T], T) {
	znear, zfar := s.ClipPlanes(zat)
	if s.opm {
		cmax, upp := s.fov.MaxAndUpp(zat, max)
		return lin.Orthographic(-cmax.X, cmax.X, -cmax.Y, cmax.Y, znear, zfar), upp
	}
	fov := s.fov.ToVer(max).Value()
	cmax, upp := s.fov.MaxAndUpp(zat, max)
	return lin.Perspective(fov, cmax.X/cmax.Y, znear, zfar), upp
}
