package trackball

import (
	"github.com/qu1x/trackball/pkg/lin"
)

// ClampPos clamps a position in screen space to the screen bounds given by
// the maximum position max as the screen's width and height.
func ClampPos[T lin.Float](pos, max lin.Vec2[T]) lin.Vec2[T] {
	return lin.Vec2[T]{
		X: lin.Clamp(pos.X, 0, max.X),
		Y: lin.Clamp(pos.Y, 0, max.Y),
	}
}

// CenterPos transforms a position and its maximum from screen space with
// origin in the top left corner and y-axis downwards into the centered
// camera space with y-axis upwards, returning the centered position and the
// half extents.
func CenterPos[T lin.Float](pos, max lin.Vec2[T]) (lin.Vec2[T], lin.Vec2[T]) {
	half := max.Mul(0.5)
	return lin.Vec2[T]{X: pos.X - half.X, Y: half.Y - pos.Y}, half
}

// CenterVec flips the y-axis of a displacement from screen to camera space.
func CenterVec[T lin.Float](vec lin.Vec2[T]) lin.Vec2[T] {
	return lin.Vec2[T]{X: vec.X, Y: -vec.Y}
}

// Image caches the transformations projecting a scene with respect to Frame
// and Scope.
type Image[T lin.Float] struct {
	// Current position in screen space of a hovering input device.
	pos lin.Vec2[T]
	// Maximum position in screen space as the screen's width and height.
	max lin.Vec2[T]
	// Cached unit per pixel on the focus plane to scale and project
	// positions and vectors onto the focus plane.
	upp T
	// Cached previous frame and scope.
	frame Frame[T]
	scope Scope[T]
	// Cached view isometry from world to camera space coinciding with
	// right-handed look-at space.
	viewIso lin.Isometry3[T]
	// Cached homogeneous view matrix computed from the view isometry.
	viewMat lin.Mat4[T]
	// Cached scale-identical orthographic or perspective projection.
	projMat lin.Mat4[T]
	// Cached transformation and its inverse.
	projViewMat lin.Mat4[T]
	projViewInv lin.Mat4[T]
	// Whether to compute the transformation and its inverse.
	computeMat bool
	computeInv bool
	// Whether the maximum position changed since the last computation.
	dirty bool
}

// NewImage computes the initial transformations from frame, scope, and the
// screen's width and height.
func NewImage[T lin.Float](frame Frame[T], scope Scope[T], max lin.Vec2[T]) *Image[T] {
	image := &Image[T]{
		max:        max,
		frame:      frame,
		scope:      scope,
		computeMat: true,
		computeInv: true,
	}
	image.ComputeView(frame)
	image.ComputeProjectionAndUpp(frame.Distance(), scope)
	image.ComputeTransformation()
	image.ComputeInverseTransformation()
	return image
}

// Compute recomputes only the cached matrices whose parameters have
// changed, see SetCompute.
//
// Returns changed false with no changes, otherwise ok false on a singular
// transformation whose inverse was requested.
func (i *Image[T]) Compute(frame Frame[T], scope Scope[T]) (changed, ok bool) {
	if i.frame != frame || i.dirty {
		i.ComputeView(frame)
		changed = true
	}
	if i.frame.Distance() != frame.Distance() || i.scope != scope || i.dirty {
		i.ComputeProjectionAndUpp(frame.Distance(), scope)
		changed = true
	}
	i.frame = frame
	i.scope = scope
	i.dirty = false
	if !changed {
		return false, true
	}
	if i.computeMat || i.computeInv {
		i.ComputeTransformation()
	}
	if i.computeInv {
		return true, i.ComputeInverseTransformation()
	}
	return true, true
}

// SetCompute sets whether to compute the transformation and its inverse
// with Compute. Default is both.
func (i *Image[T]) SetCompute(computeMat, computeInv bool) {
	i.computeMat = computeMat
	i.computeInv = computeInv
}

// Pos returns the current position in screen space of a hovering input
// device.
func (i *Image[T]) Pos() lin.Vec2[T] {
	return i.pos
}

// SetPos sets the current position in screen space of a hovering input
// device.
func (i *Image[T]) SetPos(pos lin.Vec2[T]) {
	i.pos = pos
}

// Max returns the maximum position in screen space as the screen's width
// and height.
func (i *Image[T]) Max() lin.Vec2[T] {
	return i.max
}

// SetMax sets the maximum position in screen space as the screen's width
// and height.
func (i *Image[T]) SetMax(max lin.Vec2[T]) {
	if i.max != max {
		i.dirty = true
	}
	i.max = max
}

// Upp returns the cached unit per pixel on the focus plane.
func (i *Image[T]) Upp() T {
	return i.upp
}

// ViewIsometry returns the cached view isometry.
func (i *Image[T]) ViewIsometry() lin.Isometry3[T] {
	return i.viewIso
}

// View returns the cached view matrix.
func (i *Image[T]) View() lin.Mat4[T] {
	return i.viewMat
}

// ComputeView computes the view isometry and matrix from the frame with
// respect to camera eye and target.
func (i *Image[T]) ComputeView(frame Frame[T]) {
	i.viewIso = frame.InverseView()
	i.viewMat = i.viewIso.Mat4()
}

// Projection returns the cached projection matrix.
func (i *Image[T]) Projection() lin.Mat4[T] {
	return i.projMat
}

// ComputeProjectionAndUpp computes the projection matrix and the unit per
// pixel on the focus plane.
func (i *Image[T]) ComputeProjectionAndUpp(zat T, scope Scope[T]) {
	i.projMat, i.upp = scope.ProjectionAndUpp(zat, i.max)
}

// Transformation returns the cached projection view matrix.
func (i *Image[T]) Transformation() lin.Mat4[T] {
	return i.projViewMat
}

// ComputeTransformation computes the projection view matrix.
func (i *Image[T]) ComputeTransformation() {
	i.projViewMat = i.projMat.Mul(i.viewMat)
}

// InverseTransformation returns the cached inverse projection view matrix.
func (i *Image[T]) InverseTransformation() lin.Mat4[T] {
	return i.projViewInv
}

// ComputeInverseTransformation computes the inverse of the projection view
// matrix, returning false if it is singular.
func (i *Image[T]) ComputeInverseTransformation() bool {
	inv, ok := i.projViewMat.TryInverse()
	if ok {
		i.projViewInv = inv
	}
	return ok
}

// TransformPos transforms a position from screen to camera space.
func (i *Image[T]) TransformPos(pos lin.Vec2[T]) lin.Vec2[T] {
	cpos, _ := CenterPos(pos, i.max)
	return cpos
}

// ProjectPos transforms a position from screen to camera space and projects
// it onto the focus plane.
func (i *Image[T]) ProjectPos(pos lin.Vec2[T]) lin.Vec3[T] {
	cpos := i.TransformPos(pos).Mul(i.upp)
	return lin.Vec3[T]{X: cpos.X, Y: cpos.Y}
}

// ProjectVec transforms a displacement from screen to camera space and
// projects it onto the focus plane.
func (i *Image[T]) ProjectVec(vec lin.Vec2[T]) lin.Vec3[T] {
	cvec := CenterVec(vec).Mul(i.upp)
	return lin.Vec3[T]{X: cvec.X, Y: cvec.Y}
}
