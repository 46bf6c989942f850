package trackball_test

import (
	"math"
	"testing"

	"github.com/qu1x/trackball/pkg/lin"
	"github.com/qu1x/trackball/pkg/trackball"
	"github.com/stretchr/testify/require"
)

func testFirst[T lin.Float](t *testing.T, tol float64) {
	max := lin.Vec2[T]{X: 800, Y: 600}
	var first trackball.First[T]

	// Disabled until a yaw axis is captured.
	_, _, _, ok := first.Compute(lin.Vec2[T]{X: 40, Y: 40}, max)
	require.False(t, ok)
	require.False(t, first.Enabled())

	first.Capture(lin.YAxis[T]())
	require.True(t, first.Enabled())
	pitch, yaw, yawAxis, ok := first.Compute(lin.Vec2[T]{X: 40, Y: -80}, max)
	require.True(t, ok)
	// The radius is the maximum of half the screen's width and height.
	require.InDelta(t, -80.0/400.0, float64(pitch), tol)
	require.InDelta(t, 40.0/400.0, float64(yaw), tol)
	vec3Near(t, lin.YAxis[T](), yawAxis, tol)

	first.Discard()
	require.False(t, first.Enabled())
	_, ok = first.YawAxis()
	require.False(t, ok)
}

func TestFirst(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFirst[float32](t, 1e-6) })
	t.Run("float64", func(t *testing.T) { testFirst[float64](t, 1e-12) })
}

func testSlide[T lin.Float](t *testing.T, tol float64) {
	var slide trackball.Slide[T]
	_, ok := slide.Compute(lin.Vec2[T]{X: 10, Y: 20})
	require.False(t, ok)

	// The slide points from the current to the previous position.
	vec, ok := slide.Compute(lin.Vec2[T]{X: 13, Y: 16})
	require.True(t, ok)
	require.InDelta(t, -3, float64(vec.X), tol)
	require.InDelta(t, 4, float64(vec.Y), tol)

	slide.Discard()
	_, ok = slide.Compute(lin.Vec2[T]{X: 0, Y: 0})
	require.False(t, ok)
}

func TestSlide(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testSlide[float32](t, 1e-6) })
	t.Run("float64", func(t *testing.T) { testSlide[float64](t, 1e-12) })
}

func testScale[T lin.Float](t *testing.T, tol float64) {
	scale := trackball.NewScale[T]()
	require.InDelta(t, 120, float64(scale.Denominator()), tol)
	// Scrolling up by one wheel unit zooms in.
	require.InDelta(t, 0.5, float64(scale.Compute(60)), tol)
	// Scrolling down zooms out.
	require.InDelta(t, 1.5, float64(scale.Compute(-60)), tol)

	scale.SetDenominator(1)
	require.InDelta(t, 0, float64(scale.Compute(1)), tol)
}

func TestScale(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testScale[float32](t, 1e-6) })
	t.Run("float64", func(t *testing.T) { testScale[float64](t, 1e-12) })
}

func testTouchTap[T lin.Float](t *testing.T, tol float64) {
	var touch trackball.Touch[int, T]

	gesture, ok, err := touch.Compute(1, lin.Vec2[T]{X: 10, Y: 20}, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, gesture.Fingers)
	require.InDelta(t, 10, float64(gesture.Pos.X), tol)
	require.InDelta(t, 20, float64(gesture.Pos.Y), tol)
	require.Equal(t, 1, touch.Fingers())

	// Releasing the only finger recognizes a one-finger tap.
	tap, ok, err := touch.Discard(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, tap.Fingers)
	require.InDelta(t, 10, float64(tap.Pos.X), tol)
	require.Equal(t, 0, touch.Fingers())
}

func TestTouchTap(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testTouchTap[float32](t, 1e-6) })
	t.Run("float64", func(t *testing.T) { testTouchTap[float64](t, 1e-12) })
}

func testTouchTapCancel[T lin.Float](t *testing.T) {
	var touch trackball.Touch[int, T]

	// Dragging a finger around cancels the tap.
	_, _, err := touch.Compute(1, lin.Vec2[T]{X: 10, Y: 20}, 0)
	require.NoError(t, err)
	_, _, err = touch.Compute(1, lin.Vec2[T]{X: 30, Y: 40}, 0)
	require.NoError(t, err)
	_, ok, err := touch.Discard(1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTouchTapCancel(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testTouchTapCancel[float32](t) })
	t.Run("float64", func(t *testing.T) { testTouchTapCancel[float64](t) })
}

func testTouchRoll[T lin.Float](t *testing.T, tol float64) {
	var touch trackball.Touch[int, T]

	_, _, err := touch.Compute(1, lin.Vec2[T]{}, 0)
	require.NoError(t, err)
	gesture, ok, err := touch.Compute(2, lin.Vec2[T]{X: 100}, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, gesture.Fingers)
	// The first two-finger sample has nothing to compare against.
	require.InDelta(t, 0, float64(gesture.Rot), tol)
	require.InDelta(t, 1, float64(gesture.Rat), tol)

	// Rotating the second finger a quarter turn around the first.
	gesture, ok, err = touch.Compute(2, lin.Vec2[T]{Y: 100}, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, math.Pi/2, float64(gesture.Rot), tol)
	require.InDelta(t, 1, float64(gesture.Rat), tol)
	require.InDelta(t, 0, float64(gesture.Pos.X), tol)
	require.InDelta(t, 50, float64(gesture.Pos.Y), tol)
}

func TestTouchRoll(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testTouchRoll[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testTouchRoll[float64](t, 1e-12) })
}

func testTouchPinch[T lin.Float](t *testing.T, tol float64) {
	var touch trackball.Touch[int, T]

	_, _, err := touch.Compute(1, lin.Vec2[T]{}, 0)
	require.NoError(t, err)
	_, _, err = touch.Compute(2, lin.Vec2[T]{X: 100}, 0)
	require.NoError(t, err)

	// Pinching in doubles the ratio as distances are halved.
	gesture, ok, err := touch.Compute(2, lin.Vec2[T]{X: 50}, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 2, float64(gesture.Rat), tol)
	require.InDelta(t, 0, float64(gesture.Rot), tol)
}

func TestTouchPinch(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testTouchPinch[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testTouchPinch[float64](t, 1e-12) })
}

func testTouchErrors[T lin.Float](t *testing.T) {
	var touch trackball.Touch[int, T]

	for fid := 0; fid < trackball.MaxFingers; fid++ {
		_, _, err := touch.Compute(fid, lin.Vec2[T]{X: T(fid)}, 0)
		require.NoError(t, err)
	}
	_, _, err := touch.Compute(trackball.MaxFingers, lin.Vec2[T]{X: -1}, 0)
	require.ErrorIs(t, err, trackball.ErrTooManyFingers)

	// An unknown finger discards all tracked fingers.
	_, ok, err := touch.Discard(99)
	require.ErrorIs(t, err, trackball.ErrUnknownFinger)
	require.False(t, ok)
	require.Equal(t, 0, touch.Fingers())
}

func TestTouchErrors(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testTouchErrors[float32](t) })
	t.Run("float64", func(t *testing.T) { testTouchErrors[float64](t) })
}

func testTouchUnchanged[T lin.Float](t *testing.T) {
	var touch trackball.Touch[int, T]

	_, _, err := touch.Compute(1, lin.Vec2[T]{X: 10}, 0)
	require.NoError(t, err)
	// An event of unchanged position is ignored.
	_, ok, err := touch.Compute(1, lin.Vec2[T]{X: 10}, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTouchUnchanged(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testTouchUnchanged[float32](t) })
	t.Run("float64", func(t *testing.T) { testTouchUnchanged[float64](t) })
}
