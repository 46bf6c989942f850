package trackball_test

import (
	"math"
	"testing"

	"github.com/qu1x/trackball/pkg/lin"
	"github.com/qu1x/trackball/pkg/trackball"
	"github.com/stretchr/testify/require"
)

func testCenterPos[T lin.Float](t *testing.T, tol float64) {
	max := lin.Vec2[T]{X: 800, Y: 600}
	pos, half := trackball.CenterPos(lin.Vec2[T]{X: 500, Y: 100}, max)
	require.InDelta(t, 100, float64(pos.X), tol)
	require.InDelta(t, 200, float64(pos.Y), tol)
	require.InDelta(t, 400, float64(half.X), tol)
	require.InDelta(t, 300, float64(half.Y), tol)

	clamped := trackball.ClampPos(lin.Vec2[T]{X: -10, Y: 700}, max)
	require.InDelta(t, 0, float64(clamped.X), tol)
	require.InDelta(t, 600, float64(clamped.Y), tol)

	vec := trackball.CenterVec(lin.Vec2[T]{X: 3, Y: 4})
	require.InDelta(t, 3, float64(vec.X), tol)
	require.InDelta(t, -4, float64(vec.Y), tol)
}

func TestCenterPos(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testCenterPos[float32](t, 1e-6) })
	t.Run("float64", func(t *testing.T) { testCenterPos[float64](t, 1e-12) })
}

func testImageCaching[T lin.Float](t *testing.T) {
	frame := lookAtFrame[T]()
	scope := trackball.NewScope[T]()
	image := trackball.NewImage(frame, scope, lin.Vec2[T]{X: 800, Y: 600})

	// Unchanged parameters leave the cached matrices untouched.
	changed, ok := image.Compute(frame, scope)
	require.False(t, changed)
	require.True(t, ok)

	// A moved frame recomputes.
	frame.SetDistance(7)
	changed, ok = image.Compute(frame, scope)
	require.True(t, changed)
	require.True(t, ok)

	// A resized screen recomputes even with unchanged frame and scope.
	image.SetMax(lin.Vec2[T]{X: 400, Y: 300})
	changed, ok = image.Compute(frame, scope)
	require.True(t, changed)
	require.True(t, ok)

	// A changed scope recomputes.
	scope.SetOrtho(true)
	changed, ok = image.Compute(frame, scope)
	require.True(t, changed)
	require.True(t, ok)
}

func TestImageCaching(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testImageCaching[float32](t) })
	t.Run("float64", func(t *testing.T) { testImageCaching[float64](t) })
}

func testImageProject[T lin.Float](t *testing.T, tol float64) {
	frame := lookAtFrame[T]()
	scope := trackball.NewScope[T]()
	max := lin.Vec2[T]{X: 800, Y: 600}
	image := trackball.NewImage(frame, scope, max)

	// The screen's center maps to the target on the focus plane.
	pos := image.TransformPos(lin.Vec2[T]{X: 400, Y: 300})
	require.InDelta(t, 0, float64(pos.X), tol)
	require.InDelta(t, 0, float64(pos.Y), tol)
	vec3Near(t, lin.Vec3[T]{}, image.ProjectPos(lin.Vec2[T]{X: 400, Y: 300}), tol)

	// The unit per pixel spans the vertical field of view on the focus
	// plane over the screen's height.
	upp := 5 * math.Tan(math.Pi/8) * 2 / 600
	require.InDelta(t, upp, float64(image.Upp()), tol)

	// Displacements flip the y-axis from screen to camera space.
	vec := image.ProjectVec(lin.Vec2[T]{X: 60, Y: -30})
	require.InDelta(t, 60*upp, float64(vec.X), tol)
	require.InDelta(t, 30*upp, float64(vec.Y), tol)
	require.InDelta(t, 0, float64(vec.Z), tol)
}

func TestImageProject(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testImageProject[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testImageProject[float64](t, 1e-12) })
}

func testImageTransformation[T lin.Float](t *testing.T, tol float64) {
	frame := trackball.LookAt(
		lin.Vec3[T]{X: 1, Y: 2, Z: 3},
		lin.Vec3[T]{X: -2, Y: 4, Z: 9},
		lin.YAxis[T](),
	)
	scope := trackball.NewScope[T]()
	image := trackball.NewImage(frame, scope, lin.Vec2[T]{X: 800, Y: 600})

	// The target projects onto the screen's center.
	target := frame.Target()
	x, y, _, w := image.Transformation().MulVec4(target.X, target.Y, target.Z, 1)
	require.InDelta(t, 0, float64(x/w), tol)
	require.InDelta(t, 0, float64(y/w), tol)

	// The inverse transformation undoes the transformation.
	p := lin.Vec3[T]{X: 0.5, Y: -1, Z: 2}
	cx, cy, cz, cw := image.Transformation().MulVec4(p.X, p.Y, p.Z, 1)
	ix, iy, iz, iw := image.InverseTransformation().MulVec4(cx, cy, cz, cw)
	require.InDelta(t, float64(p.X), float64(ix/iw), tol)
	require.InDelta(t, float64(p.Y), float64(iy/iw), tol)
	require.InDelta(t, float64(p.Z), float64(iz/iw), tol)

	// The view isometry maps the eye to the origin of camera space.
	vec3Near(t, lin.Vec3[T]{}, image.ViewIsometry().ApplyPoint(frame.Eye()), tol)
}

func TestImageTransformation(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testImageTransformation[float32](t, 1e-3) })
	t.Run("float64", func(t *testing.T) { testImageTransformation[float64](t, 1e-9) })
}
