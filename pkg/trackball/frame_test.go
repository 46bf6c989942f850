package trackball_test

import (
	"math"
	"testing"

	"github.com/qu1x/trackball/pkg/lin"
	"github.com/qu1x/trackball/pkg/trackball"
	"github.com/stretchr/testify/require"
)

func lookAtFrame[T lin.Float]() trackball.Frame[T] {
	return trackball.LookAt(
		lin.Vec3[T]{},
		lin.Vec3[T]{Z: 5},
		lin.YAxis[T](),
	)
}

func testFrameLookAt[T lin.Float](t *testing.T, tol float64) {
	frame := lookAtFrame[T]()
	vec3Near(t, lin.Vec3[T]{}, frame.Target(), tol)
	vec3Near(t, lin.Vec3[T]{Z: 5}, frame.Eye(), tol)
	require.InDelta(t, 5, float64(frame.Distance()), tol)
	vec3Near(t, lin.XAxis[T](), frame.PitchAxis(), tol)
	vec3Near(t, lin.YAxis[T](), frame.YawAxis(), tol)
	vec3Near(t, lin.ZAxis[T](), frame.RollAxis(), tol)
}

func TestFrameLookAt(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameLookAt[float32](t, 1e-6) })
	t.Run("float64", func(t *testing.T) { testFrameLookAt[float64](t, 1e-12) })
}

func testFrameSetTarget[T lin.Float](t *testing.T, tol float64) {
	frame := lookAtFrame[T]()
	eye := frame.Eye()
	frame.SetTarget(lin.Vec3[T]{X: 1})
	vec3Near(t, eye, frame.Eye(), tol)
	vec3Near(t, lin.Vec3[T]{X: 1}, frame.Target(), tol)
	require.InDelta(t, math.Sqrt(26), float64(frame.Distance()), tol)
}

func TestFrameSetTarget(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameSetTarget[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testFrameSetTarget[float64](t, 1e-12) })
}

func testFrameSetEye[T lin.Float](t *testing.T, tol float64) {
	frame := lookAtFrame[T]()
	frame.SetEye(lin.Vec3[T]{X: 5}, lin.YAxis[T]())
	vec3Near(t, lin.Vec3[T]{}, frame.Target(), tol)
	vec3Near(t, lin.Vec3[T]{X: 5}, frame.Eye(), tol)
	require.InDelta(t, 5, float64(frame.Distance()), tol)
}

func TestFrameSetEye(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameSetEye[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testFrameSetEye[float64](t, 1e-12) })
}

func testFrameSlide[T lin.Float](t *testing.T, tol float64) {
	frame := lookAtFrame[T]()
	frame.Slide(lin.Vec3[T]{X: 1, Y: 2, Z: 3})
	vec3Near(t, lin.Vec3[T]{X: 1, Y: 2, Z: 3}, frame.Target(), tol)
	vec3Near(t, lin.Vec3[T]{X: 1, Y: 2, Z: 8}, frame.Eye(), tol)

	// LocalSlide coincides with Slide for an axis-aligned frame.
	local := lookAtFrame[T]()
	local.LocalSlide(lin.Vec3[T]{X: 1, Y: 2, Z: 3})
	vec3Near(t, frame.Target(), local.Target(), tol)
}

func TestFrameSlide(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameSlide[float32](t, 1e-6) })
	t.Run("float64", func(t *testing.T) { testFrameSlide[float64](t, 1e-12) })
}

func testFrameOrbit[T lin.Float](t *testing.T, tol float64) {
	frame := lookAtFrame[T]()
	frame.Orbit(lin.QuatFromAxisAngle(lin.YAxis[T](), T(math.Pi/2)))
	vec3Near(t, lin.Vec3[T]{}, frame.Target(), tol)
	vec3Near(t, lin.Vec3[T]{X: 5}, frame.Eye(), tol)
	require.InDelta(t, 5, float64(frame.Distance()), tol)
}

func TestFrameOrbit(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameOrbit[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testFrameOrbit[float64](t, 1e-12) })
}

func testFrameOrbitAround[T lin.Float](t *testing.T, tol float64) {
	frame := lookAtFrame[T]()
	pivot := frame.Eye()
	frame.OrbitAround(lin.QuatFromAxisAngle(lin.YAxis[T](), T(math.Pi/2)), pivot)
	// The pivot is preserved.
	vec3Near(t, pivot, frame.Eye(), tol)
	vec3Near(t, lin.Vec3[T]{X: -5, Z: 5}, frame.Target(), tol)
	require.InDelta(t, 5, float64(frame.Distance()), tol)
}

func TestFrameOrbitAround(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameOrbitAround[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testFrameOrbitAround[float64](t, 1e-12) })
}

func testFrameLookAround[T lin.Float](t *testing.T, tol float64) {
	frame := lookAtFrame[T]()
	eye := frame.Eye()
	frame.LookAround(0, T(math.Pi/2), frame.YawAxis())
	vec3Near(t, eye, frame.Eye(), tol)
	require.InDelta(t, 5, float64(frame.Distance()), tol)
	vec3Near(t, lin.Vec3[T]{X: -5, Z: 5}, frame.Target(), tol)
}

func TestFrameLookAround(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameLookAround[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testFrameLookAround[float64](t, 1e-12) })
}

func testFrameScaleAround[T lin.Float](t *testing.T, tol float64) {
	frame := lookAtFrame[T]()
	// Scaling around the target halves the distance keeping the target.
	frame.ScaleAround(0.5, frame.Target())
	vec3Near(t, lin.Vec3[T]{}, frame.Target(), tol)
	require.InDelta(t, 2.5, float64(frame.Distance()), tol)

	// Scaling around the eye keeps the eye.
	frame = lookAtFrame[T]()
	eye := frame.Eye()
	frame.ScaleAround(0.5, eye)
	vec3Near(t, eye, frame.Eye(), tol)
	require.InDelta(t, 2.5, float64(frame.Distance()), tol)
}

func TestFrameScaleAround(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameScaleAround[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testFrameScaleAround[float64](t, 1e-12) })
}

func testFrameView[T lin.Float](t *testing.T, tol float64) {
	frame := trackball.LookAt(
		lin.Vec3[T]{X: 1, Y: 2, Z: 3},
		lin.Vec3[T]{X: -4, Y: 0, Z: 8},
		lin.YAxis[T](),
	)
	view := frame.View()
	inverse := frame.InverseView()
	// The algebraic inverse view agrees with inverting the view.
	p := lin.Vec3[T]{X: 7, Y: -1, Z: 2}
	vec3Near(t, view.Inverse().ApplyPoint(p), inverse.ApplyPoint(p), tol)
	// The eye is the origin of camera space.
	vec3Near(t, lin.Vec3[T]{}, inverse.ApplyPoint(frame.Eye()), tol)
	// The target sits on the negative z-axis at the eye-target distance.
	vec3Near(t, lin.Vec3[T]{Z: -frame.Distance()}, inverse.ApplyPoint(frame.Target()), tol)
}

func TestFrameView(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameView[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testFrameView[float64](t, 1e-12) })
}

func testFrameLerpSlerp[T lin.Float](t *testing.T, tol float64) {
	a := lookAtFrame[T]()
	b := trackball.LookAt(
		lin.Vec3[T]{X: 2},
		lin.Vec3[T]{X: 2, Y: 0, Z: 3},
		lin.YAxis[T](),
	)
	start, ok := a.TryLerpSlerp(b, 0, lin.Epsilon[T]())
	require.True(t, ok)
	vec3Near(t, a.Target(), start.Target(), tol)
	require.InDelta(t, float64(a.Distance()), float64(start.Distance()), tol)

	end, ok := a.TryLerpSlerp(b, 1, lin.Epsilon[T]())
	require.True(t, ok)
	vec3Near(t, b.Target(), end.Target(), tol)
	require.InDelta(t, float64(b.Distance()), float64(end.Distance()), tol)

	half, ok := a.TryLerpSlerp(b, 0.5, lin.Epsilon[T]())
	require.True(t, ok)
	vec3Near(t, lin.Vec3[T]{X: 1}, half.Target(), tol)
	require.InDelta(t, 4, float64(half.Distance()), tol)
}

func TestFrameLerpSlerp(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameLerpSlerp[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testFrameLerpSlerp[float64](t, 1e-12) })
}

func testFrameRenormalize[T lin.Float](t *testing.T, tol float64) {
	frame := lookAtFrame[T]()
	for i := 0; i < 1000; i++ {
		frame.Orbit(lin.QuatFromAxisAngle(lin.Vec3[T]{X: 1, Y: 1}.Normalize(), 1e-3))
	}
	norm := frame.Renormalize()
	require.InDelta(t, 1, float64(norm), 1e-3)
	require.InDelta(t, 1, float64(frame.Renormalize()), tol)
}

func TestFrameRenormalize(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFrameRenormalize[float32](t, 1e-6) })
	t.Run("float64", func(t *testing.T) { testFrameRenormalize[float64](t, 1e-12) })
}
