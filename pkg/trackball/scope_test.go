package trackball_test

import (
	"math"
	"testing"

	"github.com/qu1x/trackball/pkg/lin"
	"github.com/qu1x/trackball/pkg/trackball"
	"github.com/stretchr/testify/require"
)

func testFixedConversions[T lin.Float](t *testing.T, tol float64) {
	max := lin.Vec2[T]{X: 800, Y: 600}
	ver := trackball.FixedVer(T(math.Pi / 2))

	hor := ver.ToHor(max)
	require.InDelta(t, 2*math.Atan(4.0/3.0), float64(hor.Value()), tol)
	// Conversions roundtrip for a fixed screen.
	require.InDelta(t, math.Pi/2, float64(hor.ToVer(max).Value()), tol)

	upp := ver.ToUpp(max)
	require.InDelta(t, 2.0/600.0, float64(upp.Value()), tol)
	require.InDelta(t, math.Pi/2, float64(upp.ToVer(max).Value()), tol)
}

func TestFixedConversions(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFixedConversions[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testFixedConversions[float64](t, 1e-12) })
}

func testFixedMaxAndUpp[T lin.Float](t *testing.T, tol float64) {
	max := lin.Vec2[T]{X: 800, Y: 600}

	cmax, upp := trackball.FixedVer(T(math.Pi/2)).MaxAndUpp(2, max)
	require.InDelta(t, 8.0/3.0, float64(cmax.X), tol)
	require.InDelta(t, 2, float64(cmax.Y), tol)
	require.InDelta(t, 1.0/150.0, float64(upp), tol)

	cmax, upp = trackball.FixedUpp[T](0.01).MaxAndUpp(2, max)
	require.InDelta(t, 8, float64(cmax.X), tol)
	require.InDelta(t, 6, float64(cmax.Y), tol)
	require.InDelta(t, 0.02, float64(upp), tol)
}

func TestFixedMaxAndUpp(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testFixedMaxAndUpp[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testFixedMaxAndUpp[float64](t, 1e-12) })
}

func testScopeClipPlanes[T lin.Float](t *testing.T, tol float64) {
	scope := trackball.NewScope[T]()
	znear, zfar := scope.ClipPlanes(5)
	require.InDelta(t, 1e-1, float64(znear), tol)
	require.InDelta(t, 1e+3, float64(zfar), tol)

	// Object inspection mode measures from the target instead of the eye.
	scope.SetScale(true)
	scope.SetClipPlanes(1, 10)
	znear, zfar = scope.ClipPlanes(5)
	require.InDelta(t, 4, float64(znear), tol)
	require.InDelta(t, 15, float64(zfar), tol)
}

func TestScopeClipPlanes(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testScopeClipPlanes[float32](t, 1e-6) })
	t.Run("float64", func(t *testing.T) { testScopeClipPlanes[float64](t, 1e-12) })
}

func testScopeProjection[T lin.Float](t *testing.T, tol float64) {
	max := lin.Vec2[T]{X: 800, Y: 600}
	scope := trackball.NewScope[T]()
	scope.SetFov(trackball.FixedVer(T(math.Pi / 2)))

	// Perspective focal length is the reciprocal tangent of half the fov.
	proj, upp := scope.ProjectionAndUpp(2, max)
	require.InDelta(t, 3.0/4.0, float64(proj[0]), tol)
	require.InDelta(t, 1, float64(proj[5]), tol)
	require.InDelta(t, -1, float64(proj[11]), tol)
	require.InDelta(t, 1.0/150.0, float64(upp), tol)

	// Orthographic extents match the frustum on the focus plane.
	scope.SetOrtho(true)
	proj, upp = scope.ProjectionAndUpp(2, max)
	require.InDelta(t, 3.0/8.0, float64(proj[0]), tol)
	require.InDelta(t, 1.0/2.0, float64(proj[5]), tol)
	require.InDelta(t, 0, float64(proj[11]), tol)
	require.InDelta(t, 1.0/150.0, float64(upp), tol)
}

func TestScopeProjection(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testScopeProjection[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testScopeProjection[float64](t, 1e-12) })
}
