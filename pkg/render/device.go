// Package render provides the canvas that draws the demo triangle.
// It drives a Device, which hides the host graphics context, so the drawing
// lifecycle can be exercised without a GPU.
package render

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrContextUnavailable is returned when the parent window cannot provide a
// compatible rendering context.
var ErrContextUnavailable = errors.New("render: rendering context unavailable")

// Viewport is the pixel rectangle rendering output is mapped into.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Vertex is a 2D position with a flat RGB color.
type Vertex struct {
	Position mgl32.Vec2
	Color    mgl32.Vec3
}

// Device is a live rendering context bound to a window region.
// All methods must be called from the thread that owns the context.
type Device interface {
	// MakeCurrent binds the context to the calling thread.
	MakeCurrent()
	SetViewport(v Viewport)
	Clear(color mgl32.Vec4)
	// DrawTriangles submits len(vertices)/3 triangles.
	DrawTriangles(vertices []Vertex)
	Flush()
	// Present swaps the back buffer to the screen.
	Present()
	Release() error
}

// ContextProvider creates a Device bound to its drawable region.
type ContextProvider interface {
	CreateContext() (Device, error)
}

// Background is the color the canvas is cleared to every frame.
var Background = mgl32.Vec4{0, 0, 0, 1}

// Triangle is the red/green/blue gradient triangle, in submission order.
var Triangle = [3]Vertex{
	{Position: mgl32.Vec2{-0.5, -0.5}, Color: mgl32.Vec3{1, 0, 0}},
	{Position: mgl32.Vec2{0.5, -0.5}, Color: mgl32.Vec3{0, 1, 0}},
	{Position: mgl32.Vec2{0, 0.5}, Color: mgl32.Vec3{0, 0, 1}},
}

// FloatsPerVertex is the interleaved size of a Vertex: x, y, r, g, b.
const FloatsPerVertex = 5

// Interleave packs vertices into a flat x, y, r, g, b slice for upload.
func Interleave(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		data = append(data, v.Position[0], v.Position[1], v.Color[0], v.Color[1], v.Color[2])
	}
	return data
}
