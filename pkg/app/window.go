// Package app wires the main window, its menu commands and the render
// surface, and runs the host event loop.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-glcanvas/pkg/event"
	"github.com/leterax/go-glcanvas/pkg/render"
)

const (
	// DefaultTitle is the base window title
	DefaultTitle = "Hello World OpenGL"

	WelcomeStatus = "Welcome to go-glcanvas!"
	HelloMessage  = "Hello world from go-glcanvas!"
	AboutTitle    = "About Hello World"
	AboutMessage  = "This is a go-glcanvas Hello World example"
)

// FrameBackground is the client area color while the canvas is hidden.
var FrameBackground = mgl32.Vec4{0.94, 0.94, 0.94, 1}

// ErrUnknownCommand is returned when no handler is registered for a command.
var ErrUnknownCommand = errors.New("app: unknown command")

// Frame is the host window that hosts the main window contents.
type Frame interface {
	render.ContextProvider
	// FramebufferSize returns the client area size in pixels.
	FramebufferSize() (width, height int)
	SetTitle(title string)
	// RequestClose asks the host to close the window after the current event.
	RequestClose()
	// PostRedraw wakes the event loop so a pending paint is serviced.
	PostRedraw()
}

// MainWindow owns the menu bar, the command handlers and the render surface.
type MainWindow struct {
	frame    Frame
	surface  *render.Surface
	menus    MenuBar
	handlers map[CommandID]func()
	status   string
	repaint  bool
	closing  bool

	title      string
	background mgl32.Vec4
	notifier   Notifier
	logger     *slog.Logger
}

// NewMainWindow builds the menus and a hidden render surface inside frame.
// It fails when frame cannot provide a rendering context.
func NewMainWindow(frame Frame, opts ...Option) (*MainWindow, error) {
	o := buildOptions(opts)

	surface, err := render.NewSurface(frame, render.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL canvas: %w", err)
	}

	w := &MainWindow{
		frame:      frame,
		surface:    surface,
		menus:      DefaultMenuBar(),
		title:      o.title,
		background: o.background,
		notifier:   o.notifier,
		logger:     o.logger,
		repaint:    true,
	}
	w.handlers = map[CommandID]func(){
		CommandHello:  w.OnHello,
		CommandExit:   w.OnExit,
		CommandAbout:  w.OnInfo,
		CommandOpenGL: w.OnToggleView,
	}
	w.SetStatus(WelcomeStatus)

	return w, nil
}

// Menus returns the menu bar
func (w *MainWindow) Menus() MenuBar {
	return w.menus
}

// Surface returns the owned render surface
func (w *MainWindow) Surface() *render.Surface {
	return w.surface
}

// Status returns the status text
func (w *MainWindow) Status() string {
	return w.status
}

// SetStatus replaces the status text, shown in the window title.
func (w *MainWindow) SetStatus(text string) {
	w.status = text
	if text == "" {
		w.frame.SetTitle(w.title)
		return
	}
	w.frame.SetTitle(w.title + " - " + text)
}

// Closing reports whether exit was requested
func (w *MainWindow) Closing() bool {
	return w.closing
}

// OnToggleView shows the canvas and lays it out. Calling it again while the
// canvas is visible has no further effect.
func (w *MainWindow) OnToggleView() {
	if w.surface.Show() {
		w.logger.Debug("canvas visible")
	}
	w.Layout()
}

// OnInfo shows the About dialog
func (w *MainWindow) OnInfo() {
	if err := w.notifier.Info(AboutTitle, AboutMessage); err != nil {
		w.logger.Warn("failed to show about dialog", "error", err)
	}
}

// OnHello logs the greeting
func (w *MainWindow) OnHello() {
	w.logger.Info(HelloMessage)
	w.SetStatus(HelloMessage)
}

// OnExit drops pending redraws and asks the host to close.
func (w *MainWindow) OnExit() {
	w.closing = true
	w.repaint = false
	w.surface.CancelRedraw()
	w.frame.RequestClose()
}

// Layout fits the visible canvas to the client area
func (w *MainWindow) Layout() {
	width, height := w.frame.FramebufferSize()
	w.layout(width, height)
}

func (w *MainWindow) layout(width, height int) {
	if w.closing {
		return
	}
	if w.surface.Visible() {
		w.surface.Resize(width, height)
	}
	w.repaint = true
	w.frame.PostRedraw()
}

// NeedsPaint reports whether a paint is pending
func (w *MainWindow) NeedsPaint() bool {
	if w.closing {
		return false
	}
	return w.repaint || w.surface.RedrawPending()
}

// Paint draws the canvas when it is visible and the frame background otherwise.
func (w *MainWindow) Paint() {
	if w.closing {
		return
	}
	if w.surface.Visible() {
		w.surface.DrawFrame()
	} else {
		w.surface.Erase(w.background)
	}
	w.repaint = false
}

// Dispatch runs the handler registered for id
func (w *MainWindow) Dispatch(id CommandID) error {
	handler, ok := w.handlers[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	w.logger.Debug("dispatching command", "command", id)
	handler()
	return nil
}

// HandleEvent routes host events to the window and its canvas
func (w *MainWindow) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.Command:
		if err := w.Dispatch(CommandID(e.ID)); err != nil {
			w.logger.Warn("command ignored", "error", err)
		}
	case event.KeyPress:
		if id, ok := w.menus.Lookup(e.Key, e.Mods); ok {
			if err := w.Dispatch(id); err != nil {
				w.logger.Warn("shortcut ignored", "error", err)
			}
		}
	case event.Resize:
		w.layout(e.Width, e.Height)
	case event.Paint:
		w.Paint()
	case event.Close:
		w.OnExit()
	}
}

// Close releases the render surface
func (w *MainWindow) Close() error {
	return w.surface.Close()
}
