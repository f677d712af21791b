package render

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-glcanvas/pkg/event"
)

// Surface is the canvas region and its rendering context
type Surface struct {
	device   Device
	viewport Viewport
	visible  bool
	dirty    bool
	closed   bool
	logger   *slog.Logger
}

// SurfaceOption configures a Surface
type SurfaceOption func(*Surface)

// WithLogger sets the logger used by the surface
func WithLogger(l *slog.Logger) SurfaceOption {
	return func(s *Surface) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSurface acquires a rendering context from parent. The surface starts
// hidden with a 0x1 viewport.
func NewSurface(parent ContextProvider, opts ...SurfaceOption) (*Surface, error) {
	s := &Surface{
		viewport: Viewport{Height: 1},
		logger:   NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	device, err := parent.CreateContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create rendering context: %w: %w", ErrContextUnavailable, err)
	}
	if device == nil {
		return nil, ErrContextUnavailable
	}
	s.device = device

	s.logger.Debug("render surface created")
	return s, nil
}

// DrawFrame clears the canvas and draws the triangle. It does nothing while
// the surface is hidden or closed.
func (s *Surface) DrawFrame() {
	if s.closed || !s.visible {
		s.logger.Debug("skipping draw", "visible", s.visible, "closed", s.closed)
		return
	}

	s.device.MakeCurrent()
	s.device.SetViewport(s.viewport)
	s.device.Clear(Background)
	s.device.DrawTriangles(Triangle[:])
	s.device.Flush()
	s.device.Present()

	s.dirty = false
}

// Erase clears the whole drawable to color and presents it. The main window
// uses it to paint its client area while the canvas is hidden.
func (s *Surface) Erase(color mgl32.Vec4) {
	if s.closed {
		return
	}
	s.device.MakeCurrent()
	s.device.Clear(color)
	s.device.Flush()
	s.device.Present()
}

// Resize stores the new viewport and requests a redraw. Height is clamped to 1
// and width to 0.
func (s *Surface) Resize(width, height int) {
	if height < 1 {
		height = 1
	}
	if width < 0 {
		width = 0
	}
	s.viewport = Viewport{X: 0, Y: 0, Width: width, Height: height}
	s.dirty = true
}

// Viewport returns the current viewport
func (s *Surface) Viewport() Viewport {
	return s.viewport
}

// Show makes the surface visible and reports whether it was hidden before.
func (s *Surface) Show() bool {
	if s.visible {
		return false
	}
	s.visible = true
	s.dirty = true
	s.logger.Info("render surface shown")
	return true
}

// Hide hides the surface and reports whether it was visible before.
func (s *Surface) Hide() bool {
	if !s.visible {
		return false
	}
	s.visible = false
	return true
}

// Visible reports whether the surface is shown
func (s *Surface) Visible() bool {
	return s.visible
}

// RedrawPending reports whether a redraw was requested since the last frame.
func (s *Surface) RedrawPending() bool {
	return s.dirty && s.visible && !s.closed
}

// CancelRedraw drops any pending redraw request
func (s *Surface) CancelRedraw() {
	s.dirty = false
}

// HandleEvent reacts to paint and resize events
func (s *Surface) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.Paint:
		s.DrawFrame()
	case event.Resize:
		s.Resize(e.Width, e.Height)
	}
}

// Close releases the rendering context. Calling it more than once is a no-op.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.dirty = false
	if err := s.device.Release(); err != nil {
		return fmt.Errorf("failed to release rendering context: %w", err)
	}
	return nil
}
