package trackball

import (
	"errors"
	"math"

	"github.com/qu1x/trackball/pkg/lin"
)

// MaxFingers is the maximum number of simultaneously tracked fingers.
const MaxFingers = 10

// ErrTooManyFingers is returned by Touch.Compute when more than MaxFingers
// fingers are tracked at once.
var ErrTooManyFingers = errors.New("trackball: too many fingers")

// ErrUnknownFinger is returned by Touch.Discard for a finger ID which has
// never been computed, a caller contract violation which discards all
// tracked fingers.
var ErrUnknownFinger = errors.New("trackball: unknown finger")

// Gesture is the result of a finger gesture computation.
type Gesture[T lin.Float] struct {
	// Fingers is the number of fingers.
	Fingers int
	// Pos is the centroid position in screen space.
	Pos lin.Vec2[T]
	// Rot is the roll angle in screen space, zero unless two fingers.
	Rot T
	// Rat is the scale ratio in screen space, one unless two fingers.
	Rat T
}

// Tap is a recognized finger tap gesture.
type Tap[T lin.Float] struct {
	// Fingers is the number of fingers.
	Fingers int
	// Pos is the centroid position in screen space.
	Pos lin.Vec2[T]
}

type finger[F comparable, T lin.Float] struct {
	id  F
	pos lin.Vec2[T]
}

// Touch tracks finger gestures inducing slide, orbit, scale, and focus.
//
// The zero value is an idle tracker. The finger ID type F is generic, e.g.
// a touch event ID for fingers or a constant for mouse events.
type Touch[F comparable, T lin.Float] struct {
	// Finger positions in insertion order.
	fingers []finger[F, T]
	// Cached normalization of the previous two-finger vector.
	ray   lin.Vec2[T]
	len   T
	vecOK bool
	// Number of fingers and centroid position of a potential tap gesture.
	tapNum int
	tapPos lin.Vec2[T]
	tapOK  bool
	// Number of total finger moves per potential tap gesture.
	mvs int
}

// Compute computes the centroid position, roll angle, and scale ratio from
// finger gestures.
//
// Parameters are fid as generic finger ID, pos as current pointer position
// in screen space, and mvs as number of finger moves for debouncing a
// potential tap gesture with zero resulting in no delay of non-tap gestures
// while a tap can still be recognized.
//
// Returns ok false when debouncing a tap gesture with non-vanishing mvs or
// on an event of unchanged position. See Discard for the tap result.
func (t *Touch[F, T]) Compute(fid F, pos lin.Vec2[T], mvs int) (Gesture[T], bool, error) {
	// Insert or update finger position.
	known := false
	for i := range t.fingers {
		if t.fingers[i].id == fid {
			// Ignore events of unchanged finger position.
			if t.fingers[i].pos == pos {
				return Gesture[T]{}, false, nil
			}
			t.fingers[i].pos = pos
			known = true
			break
		}
	}
	if !known {
		if len(t.fingers) == MaxFingers {
			return Gesture[T]{}, false, ErrTooManyFingers
		}
		t.fingers = append(t.fingers, finger[F, T]{id: fid, pos: pos})
	}
	// Current number of fingers.
	num := len(t.fingers)
	// Maximum number of fingers seen per potential tap.
	max := 1
	if t.tapOK {
		max = t.tapNum
	}
	if num > max {
		max = num
	}
	// Centroid position.
	var sum lin.Vec2[T]
	for _, f := range t.fingers {
		sum = sum.Add(f.pos)
	}
	centroid := sum.Mul(1 / T(num))
	// Cancel a potential tap if more moves than number of finger starts
	// plus optional number of moves per finger for debouncing the tap
	// gesture. Debouncing would delay non-tap gestures.
	if t.mvs >= max+mvs*max {
		// Make sure to not resume a cancelled tap when fingers are
		// discarded.
		t.mvs = math.MaxInt
		t.tapOK = false
	} else {
		// Count total moves per potential tap.
		t.mvs++
		// Insert or update the potential tap as long as fingers are not
		// discarded.
		if num >= max {
			t.tapNum, t.tapPos, t.tapOK = num, centroid, true
		}
	}
	// Inhibit finger gestures for the given number of moves per finger.
	// No delay with zero mvs.
	if t.mvs < mvs*max {
		return Gesture[T]{}, false, nil
	}
	// Identity roll angle and scale ratio unless a two-finger gesture,
	// otherwise orbit or slide via centroid.
	gesture := Gesture[T]{Fingers: num, Pos: centroid, Rot: 0, Rat: 1}
	if num == 2 {
		// Ray and its length pointing from first to second finger.
		vec := t.fingers[1].pos.Sub(t.fingers[0].pos)
		newLen := vec.Norm()
		newRay := vec.Mul(1 / newLen)
		// Get old and replace with new vector.
		oldRay, oldLen, wasOK := t.ray, t.len, t.vecOK
		t.ray, t.len, t.vecOK = newRay, newLen, true
		if wasOK {
			// Roll angle in opposite direction at the centroid and scale
			// ratio at the centroid.
			gesture.Rot = lin.Atan2(oldRay.Perp(newRay), oldRay.Dot(newRay))
			gesture.Rat = oldLen / newLen
		}
	}
	return gesture, true, nil
}

// Discard removes the finger position and returns the tap gesture with its
// number of fingers and centroid position.
//
// Returns ok false as long as there are finger positions left or no tap
// gesture has been recognized. Discards all finger positions and the tap
// gesture with ErrUnknownFinger if the finger ID is unknown.
func (t *Touch[F, T]) Discard(fid F) (Tap[T], bool, error) {
	unknown := true
	for i := range t.fingers {
		if t.fingers[i].id == fid {
			t.fingers = append(t.fingers[:i], t.fingers[i+1:]...)
			unknown = false
			break
		}
	}
	t.vecOK = false
	if len(t.fingers) == 0 || unknown {
		t.fingers = t.fingers[:0]
		t.mvs = 0
		tapOK := t.tapOK
		t.tapOK = false
		if unknown {
			return Tap[T]{}, false, ErrUnknownFinger
		}
		if tapOK {
			return Tap[T]{Fingers: t.tapNum, Pos: t.tapPos}, true, nil
		}
	}
	return Tap[T]{}, false, nil
}

// Fingers returns the number of tracked fingers.
func (t *Touch[F, T]) Fingers() int {
	return len(t.fingers)
}
