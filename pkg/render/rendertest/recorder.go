// Package rendertest provides an in-memory render.Device for tests.
package rendertest

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-glcanvas/pkg/render"
)

// Call is one recorded device operation
type Call struct {
	Op       string
	Viewport render.Viewport
	Color    mgl32.Vec4
	Vertices []render.Vertex
}

// Recorder is a render.Device that records every call
type Recorder struct {
	Calls    []Call
	Released int
	// ReleaseErr is returned from Release when set.
	ReleaseErr error
}

// MakeCurrent records a context bind
func (r *Recorder) MakeCurrent() { r.Calls = append(r.Calls, Call{Op: "MakeCurrent"}) }

// SetViewport records a viewport update
func (r *Recorder) SetViewport(v render.Viewport) {
	r.Calls = append(r.Calls, Call{Op: "SetViewport", Viewport: v})
}

// Clear records a clear
func (r *Recorder) Clear(color mgl32.Vec4) {
	r.Calls = append(r.Calls, Call{Op: "Clear", Color: color})
}

// DrawTriangles records a copy of the submitted vertices
func (r *Recorder) DrawTriangles(vertices []render.Vertex) {
	r.Calls = append(r.Calls, Call{Op: "DrawTriangles", Vertices: append([]render.Vertex(nil), vertices...)})
}

// Flush records a flush
func (r *Recorder) Flush() { r.Calls = append(r.Calls, Call{Op: "Flush"}) }

// Present records a buffer swap
func (r *Recorder) Present() { r.Calls = append(r.Calls, Call{Op: "Present"}) }

// Release counts releases
func (r *Recorder) Release() error {
	r.Released++
	return r.ReleaseErr
}

// Ops returns the recorded operation names in order
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Find returns every recorded call with the given operation name
func (r *Recorder) Find(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Provider is a render.ContextProvider handing out a Recorder
type Provider struct {
	Device *Recorder
	Err    error
	// Created counts CreateContext calls.
	Created int
}

// CreateContext returns p.Device, or p.Err when set
func (p *Provider) CreateContext() (render.Device, error) {
	p.Created++
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Device == nil {
		p.Device = &Recorder{}
	}
	return p.Device, nil
}
