package main

import (
	"flag"
	"log"
	"math"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qu1x/trackball/internal/openglhelper"
	"github.com/qu1x/trackball/pkg/lin"
	"github.com/qu1x/trackball/pkg/trackball"
)

const vertexShaderSource = `
#version 460 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 view;
uniform mat4 projection;

out vec3 Normal;

void main() {
	gl_Position = projection * view * vec4(aPos, 1.0);
	Normal = aNormal;
}
`

const fragmentShaderSource = `
#version 460 core
in vec3 Normal;

uniform vec3 lightDir;

out vec4 FragColor;

void main() {
	float diffuse = max(dot(normalize(Normal), -lightDir), 0.0);
	vec3 color = vec3(0.2, 0.5, 0.8) * (0.3 + 0.7 * diffuse);
	FragColor = vec4(color, 1.0);
}
`

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

// camera drives a clamped trackball camera from pointer gestures.
type camera struct {
	frame trackball.Frame[float32]
	scope trackball.Scope[float32]
	bound trackball.Bound[float32]
	image *trackball.Image[float32]

	orbit trackball.Orbit[float32]
	slide trackball.Slide[float32]
	scale trackball.Scale[float32]
	first trackball.First[float32]
	look  trackball.Slide[float32]

	orbiting bool
	sliding  bool
}

func newCamera(width, height int, fov float64, ortho bool) *camera {
	frame := trackball.LookAt(
		lin.Vec3[float32]{},
		lin.Vec3[float32]{Y: 1.5, Z: 4},
		lin.YAxis[float32](),
	)
	scope := trackball.NewScope[float32]()
	scope.SetFov(trackball.FixedVer(float32(fov * math.Pi / 180)))
	scope.SetOrtho(ortho)

	// Keep the target within the scene and the eye at a sane distance.
	bound := trackball.NewBound[float32]()
	bound.MinTarget = lin.Vec3[float32]{X: -2, Y: -2, Z: -2}
	bound.MaxTarget = lin.Vec3[float32]{X: 2, Y: 2, Z: 2}
	bound.MinDistance = 1
	bound.MaxDistance = 50

	c := &camera{
		frame: frame,
		scope: scope,
		bound: bound,
		image: trackball.NewImage(frame, scope, lin.Vec2[float32]{
			X: float32(width),
			Y: float32(height),
		}),
		scale: trackball.NewScale[float32](),
	}
	// One scroll notch scales by ten percent.
	c.scale.SetDenominator(10)
	return c
}

// apply clamps the delta against the boundary conditions and advances the
// frame.
func (c *camera) apply(delta trackball.Delta[float32]) {
	min, _, _ := trackball.ClampDelta[float32](c.bound, c.frame, c.scope, delta)
	c.frame = min.Transform(c.frame)
	c.frame.Renormalize()
}

func (c *camera) onCursorPos(x, y float64) {
	pos := lin.Vec2[float32]{X: float32(x), Y: float32(y)}
	c.image.SetPos(pos)
	max := c.image.Max()
	switch {
	case c.first.Enabled():
		if vec, ok := c.look.Compute(pos); ok {
			pitch, yaw, yawAxis, ok := c.first.Compute(vec, max)
			if ok {
				c.apply(trackball.DeltaFirst[float32]{
					Pitch:   pitch,
					Yaw:     yaw,
					YawAxis: yawAxis,
				})
			}
		}
	case c.orbiting:
		if rot, ok := c.orbit.Compute(pos, max); ok {
			c.apply(trackball.DeltaOrbit[float32]{Rot: rot})
		}
	case c.sliding:
		if vec, ok := c.slide.Compute(pos); ok {
			c.apply(trackball.DeltaSlide[float32]{Vec: c.image.ProjectVec(vec)})
		}
	}
}

func (c *camera) onMouseButton(button glfw.MouseButton, action glfw.Action) {
	switch button {
	case glfw.MouseButtonLeft:
		c.orbiting = action == glfw.Press
		if !c.orbiting {
			c.orbit.Discard()
		}
	case glfw.MouseButtonRight:
		c.sliding = action == glfw.Press
		if !c.sliding {
			c.slide.Discard()
		}
	}
}

func (c *camera) onScroll(_, yoff float64) {
	c.apply(trackball.DeltaScale[float32]{Rat: c.scale.Compute(float32(yoff))})
}

func (c *camera) onResize(width, height int) {
	c.image.SetMax(lin.Vec2[float32]{X: float32(width), Y: float32(height)})
}

// setFirstPerson enters or leaves first person view capturing the yaw axis.
func (c *camera) setFirstPerson(enabled bool) {
	if enabled == c.first.Enabled() {
		return
	}
	if enabled {
		c.first.Capture(c.frame.YawAxis())
	} else {
		c.first.Discard()
	}
	c.look.Discard()
}

func main() {
	width := flag.Int("width", 800, "Window width (in pixels)")
	height := flag.Int("height", 600, "Window height (in pixels)")
	fov := flag.Float64("fov", 45, "Vertical field of view (in degrees)")
	ortho := flag.Bool("ortho", false, "Orthographic instead of perspective projection")
	vsync := flag.Bool("vsync", true, "Enable vertical synchronization")
	flag.Parse()

	window, err := openglhelper.NewWindow(*width, *height, "Trackball Demo", *vsync)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Close()

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		log.Fatalf("Failed to create shader: %v", err)
	}
	defer shader.Delete()

	cube := openglhelper.NewCube()
	defer cube.Delete()

	cam := newCamera(*width, *height, *fov, *ortho)
	window.OnCursorPos(cam.onCursorPos)
	window.OnMouseButton(cam.onMouseButton)
	window.OnScroll(cam.onScroll)
	window.OnResize(cam.onResize)

	for !window.ShouldClose() {
		window.PollEvents()
		// Hold F to look around in first person view.
		cam.setFirstPerson(window.GetKeyState(glfw.KeyF) == glfw.Press)

		if _, ok := cam.image.Compute(cam.frame, cam.scope); !ok {
			log.Printf("Singular transformation, keeping stale inverse")
		}

		window.Clear(mgl32.Vec4{0.1, 0.1, 0.15, 1})
		shader.Use()
		shader.SetMat4("view", mgl32.Mat4(cam.image.View()))
		shader.SetMat4("projection", mgl32.Mat4(cam.image.Projection()))
		shader.SetVec3("lightDir", mgl32.Vec3{-0.4, -0.8, -0.45}.Normalize())
		cube.Draw()
		window.SwapBuffers()
	}
}
