package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// CursorPosHandler is called on pointer position events in screen space with
// the origin in the top left corner.
type CursorPosHandler func(x, y float64)

// MouseButtonHandler is called on mouse button events.
type MouseButtonHandler func(button glfw.MouseButton, action glfw.Action)

// ScrollHandler is called on scroll wheel events.
type ScrollHandler func(xoff, yoff float64)

// ResizeHandler is called on framebuffer resize events.
type ResizeHandler func(width, height int)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string
	onResize   ResizeHandler
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	// Create window
	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1) // Enable vsync
	} else {
		glfw.SwapInterval(0) // Disable vsync
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Configure global OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	window := &Window{
		glfwWindow: glfwWindow,
		width:      width,
		height:     height,
		title:      title,
	}
	glfwWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		window.width, window.height = w, h
		gl.Viewport(0, 0, int32(w), int32(h))
		if window.onResize != nil {
			window.onResize(w, h)
		}
	})
	return window, nil
}

// OnCursorPos registers the pointer position handler
func (w *Window) OnCursorPos(handler CursorPosHandler) {
	w.glfwWindow.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		handler(x, y)
	})
}

// OnMouseButton registers the mouse button handler
func (w *Window) OnMouseButton(handler MouseButtonHandler) {
	w.glfwWindow.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		handler(button, action)
	})
}

// OnScroll registers the scroll wheel handler
func (w *Window) OnScroll(handler ScrollHandler) {
	w.glfwWindow.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		handler(xoff, yoff)
	})
}

// OnResize registers the framebuffer resize handler
func (w *Window) OnResize(handler ResizeHandler) {
	w.onResize = handler
}

// CursorPos returns the current pointer position in screen space
func (w *Window) CursorPos() (x, y float64) {
	return w.glfwWindow.GetCursorPos()
}

// Clear clears the screen
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// Close releases all resources
func (w *Window) Close() {
	glfw.Terminate()
}

// Size returns the window dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.title = title
	w.glfwWindow.SetTitle(title)
}

// GetKeyState returns the state of the given key
func (w *Window) GetKeyState(key glfw.Key) glfw.Action {
	return w.glfwWindow.GetKey(key)
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}
