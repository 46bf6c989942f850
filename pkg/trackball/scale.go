package trackball

import (
	"github.com/qu1x/trackball/pkg/lin"
)

// Scale computes a scale ratio from relative input like scroll wheel units.
//
// Construct with NewScale.
type Scale[T lin.Float] struct {
	// Denominator of the relative input.
	den T
}

// NewScale returns a handler with the default denominator of one scroll
// unit of 120.
func NewScale[T lin.Float]() Scale[T] {
	return Scale[T]{den: 120}
}

// Compute computes the scale ratio from the relative value num.
func (s Scale[T]) Compute(num T) T {
	return 1 - num/s.den
}

// Denominator returns the denominator of the relative input.
func (s Scale[T]) Denominator() T {
	return s.den
}

// SetDenominator sets the denominator of the relative input.
func (s *Scale[T]) SetDenominator(den T) {
	s.den = den
}
