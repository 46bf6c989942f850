package trackball

import (
	"github.com/qu1x/trackball/pkg/lin"
)

// Slide computes the displacement between consecutive pointer positions on
// screen.
//
// The zero value is an idle handler ready for the first sample.
type Slide[T lin.Float] struct {
	// Cached previous pointer position.
	pos      lin.Vec2[T]
	tracking bool
}

// Compute returns the slide from the current to the previous pointer
// position in screen space, or ok false on the first sample of a gesture.
func (s *Slide[T]) Compute(pos lin.Vec2[T]) (lin.Vec2[T], bool) {
	old, tracking := s.pos, s.tracking
	s.pos, s.tracking = pos, true
	if !tracking {
		return lin.Vec2[T]{}, false
	}
	return old.Sub(pos), true
}

// Discard discards the cached previous pointer position on button or finger
// release.
func (s *Slide[T]) Discard() {
	s.tracking = false
}
