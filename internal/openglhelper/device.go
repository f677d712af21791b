package openglhelper

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-glcanvas/pkg/render"
)

// maxVertices is the capacity of the device's vertex buffer.
const maxVertices = 3 * 64

// Device implements render.Device on the OpenGL context of a GLFW window.
type Device struct {
	glfwWindow *glfw.Window
	shader     *Shader
	mesh       *Mesh
	logger     *slog.Logger
	released   bool
}

var _ render.Device = (*Device)(nil)

// newDevice makes the window's context current, loads the GL function
// pointers and builds the triangle pipeline.
func newDevice(win *glfw.Window, logger *slog.Logger) (*Device, error) {
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	shader, err := NewTriangleShader()
	if err != nil {
		return nil, fmt.Errorf("failed to build triangle shader: %w", err)
	}

	return &Device{
		glfwWindow: win,
		shader:     shader,
		mesh:       NewMesh(maxVertices, shader),
		logger:     logger,
	}, nil
}

// MakeCurrent makes the context current on the calling thread
func (d *Device) MakeCurrent() {
	d.glfwWindow.MakeContextCurrent()
}

// SetViewport sets the GL viewport
func (d *Device) SetViewport(v render.Viewport) {
	gl.Viewport(int32(v.X), int32(v.Y), int32(v.Width), int32(v.Height))
}

// Clear clears the color buffer
func (d *Device) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawTriangles uploads the vertices and draws them
func (d *Device) DrawTriangles(vertices []render.Vertex) {
	if err := d.mesh.Update(render.Interleave(vertices)); err != nil {
		d.logger.Error("failed to upload vertices", "error", err)
		return
	}
	d.mesh.Draw()
}

// Flush flushes the GL command stream
func (d *Device) Flush() {
	gl.Flush()
}

// Present swaps the front and back buffers
func (d *Device) Present() {
	d.glfwWindow.SwapBuffers()
}

// Release deletes the GL objects owned by the device
func (d *Device) Release() error {
	if d.released {
		return nil
	}
	d.released = true

	d.glfwWindow.MakeContextCurrent()
	d.mesh.Delete()
	d.shader.Delete()

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error 0x%x while releasing resources", code)
	}
	return nil
}
