package render_test

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-glcanvas/pkg/event"
	"github.com/leterax/go-glcanvas/pkg/render"
	"github.com/leterax/go-glcanvas/pkg/render/rendertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSurface(t *testing.T) (*render.Surface, *rendertest.Recorder) {
	t.Helper()
	provider := &rendertest.Provider{}
	s, err := render.NewSurface(provider)
	require.NoError(t, err)
	require.Equal(t, 1, provider.Created)
	return s, provider.Device
}

func TestNewSurface_StartsHidden(t *testing.T) {
	s, dev := newSurface(t)

	assert.False(t, s.Visible())
	assert.False(t, s.RedrawPending())
	assert.Equal(t, render.Viewport{Height: 1}, s.Viewport())
	assert.Empty(t, dev.Calls, "construction must not draw")
}

func TestNewSurface_ContextFailure(t *testing.T) {
	cause := errors.New("no visual")
	s, err := render.NewSurface(&rendertest.Provider{Err: cause})

	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, render.ErrContextUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestResize_ClampsZeroHeight(t *testing.T) {
	s, _ := newSurface(t)

	s.Resize(640, 0)
	assert.Equal(t, render.Viewport{Width: 640, Height: 1}, s.Viewport())

	s.Resize(-5, -20)
	assert.Equal(t, render.Viewport{Width: 0, Height: 1}, s.Viewport())
}

func TestResize_Idempotent(t *testing.T) {
	s, _ := newSurface(t)
	s.Show()

	s.Resize(800, 600)
	first := s.Viewport()
	s.Resize(800, 600)

	assert.Equal(t, first, s.Viewport())
	assert.True(t, s.RedrawPending())
}

func TestDrawFrame_SkippedWhileHidden(t *testing.T) {
	s, dev := newSurface(t)

	s.DrawFrame()

	assert.Empty(t, dev.Calls)
}

func TestDrawFrame_SubmitsOneTriangle(t *testing.T) {
	s, dev := newSurface(t)
	s.Show()
	s.Resize(800, 600)

	s.DrawFrame()

	assert.Equal(t,
		[]string{"MakeCurrent", "SetViewport", "Clear", "DrawTriangles", "Flush", "Present"},
		dev.Ops())

	assert.Equal(t, render.Viewport{X: 0, Y: 0, Width: 800, Height: 600}, dev.Find("SetViewport")[0].Viewport)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, dev.Find("Clear")[0].Color)

	draws := dev.Find("DrawTriangles")
	require.Len(t, draws, 1)
	vertices := draws[0].Vertices
	require.Len(t, vertices, 3)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, vertices[0].Color)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, vertices[1].Color)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, vertices[2].Color)
	assert.Equal(t, mgl32.Vec2{-0.5, -0.5}, vertices[0].Position)
	assert.Equal(t, mgl32.Vec2{0.5, -0.5}, vertices[1].Position)
	assert.Equal(t, mgl32.Vec2{0, 0.5}, vertices[2].Position)

	assert.False(t, s.RedrawPending(), "drawing consumes the pending redraw")
}

func TestDrawFrame_SameEveryTime(t *testing.T) {
	s, dev := newSurface(t)
	s.Show()
	s.Resize(320, 240)

	s.DrawFrame()
	first := append([]rendertest.Call(nil), dev.Calls...)
	dev.Reset()
	s.DrawFrame()

	assert.Equal(t, first, dev.Calls)
}

func TestShow_OnlyTransitionsOnce(t *testing.T) {
	s, _ := newSurface(t)

	assert.True(t, s.Show())
	assert.False(t, s.Show())
	assert.True(t, s.Visible())

	assert.True(t, s.Hide())
	assert.False(t, s.Hide())
	assert.False(t, s.Visible())
}

func TestErase(t *testing.T) {
	s, dev := newSurface(t)
	grey := mgl32.Vec4{0.5, 0.5, 0.5, 1}

	s.Erase(grey)

	assert.Equal(t, []string{"MakeCurrent", "Clear", "Flush", "Present"}, dev.Ops())
	assert.Equal(t, grey, dev.Find("Clear")[0].Color)
}

func TestHandleEvent(t *testing.T) {
	s, dev := newSurface(t)
	s.Show()

	s.HandleEvent(event.Resize{Width: 100, Height: 0})
	assert.Equal(t, render.Viewport{Width: 100, Height: 1}, s.Viewport())

	s.HandleEvent(event.Paint{})
	assert.Len(t, dev.Find("DrawTriangles"), 1)

	s.HandleEvent(event.KeyPress{Key: 'H'})
	assert.Len(t, dev.Calls, 6, "unrelated events are ignored")
}

func TestClose_ReleasesOnce(t *testing.T) {
	s, dev := newSurface(t)
	s.Show()

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, dev.Released)

	s.DrawFrame()
	s.Erase(render.Background)
	assert.Empty(t, dev.Calls, "closed surface must not touch the device")
	assert.False(t, s.RedrawPending())
}

func TestClose_ReleaseError(t *testing.T) {
	provider := &rendertest.Provider{Device: &rendertest.Recorder{ReleaseErr: errors.New("lost")}}
	s, err := render.NewSurface(provider)
	require.NoError(t, err)

	assert.Error(t, s.Close())
}
