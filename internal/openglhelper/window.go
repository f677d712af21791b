package openglhelper

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-glcanvas/pkg/event"
	"github.com/leterax/go-glcanvas/pkg/render"
)

// maxEventWait bounds WaitEvents so the caller can observe cancellation.
const maxEventWait = 50 * time.Millisecond

// WindowConfig describes the window to create
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
	Logger *slog.Logger
}

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	title      string
	vsync      bool
	device     *Device
	handler    event.Handler
	logger     *slog.Logger
}

// NewWindow creates a hidden GLFW window with an OpenGL 4.1 core context
func NewWindow(cfg WindowConfig) (*Window, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = render.NopLogger()
	}

	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	// Create window
	glfwWindow, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	w := &Window{
		glfwWindow: glfwWindow,
		title:      cfg.Title,
		vsync:      cfg.VSync,
		handler:    event.HandlerFunc(func(event.Event) {}),
		logger:     logger,
	}

	glfwWindow.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	glfwWindow.SetRefreshCallback(w.refreshCallback)
	glfwWindow.SetKeyCallback(w.keyCallback)
	glfwWindow.SetCloseCallback(w.closeCallback)

	return w, nil
}

// CreateContext binds the window's OpenGL context and returns the device
// drawing into it. A window provides one context only.
func (w *Window) CreateContext() (render.Device, error) {
	if w.device != nil {
		return nil, errors.New("context already acquired")
	}

	device, err := newDevice(w.glfwWindow, w.logger)
	if err != nil {
		return nil, err
	}

	if w.vsync {
		glfw.SwapInterval(1) // Enable vsync
	} else {
		glfw.SwapInterval(0) // Disable vsync
	}

	w.device = device
	return device, nil
}

// SetEventHandler installs the receiver of window events
func (w *Window) SetEventHandler(h event.Handler) {
	w.handler = h
}

// Show maps the window
func (w *Window) Show() {
	w.glfwWindow.Show()
}

// WaitEvents processes pending events, sleeping until one arrives or a short
// timeout elapses.
func (w *Window) WaitEvents() {
	glfw.WaitEventsTimeout(maxEventWait.Seconds())
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// RequestClose flags the window for closing and wakes the event loop
func (w *Window) RequestClose() {
	w.glfwWindow.SetShouldClose(true)
	glfw.PostEmptyEvent()
}

// PostRedraw wakes the event loop
func (w *Window) PostRedraw() {
	glfw.PostEmptyEvent()
}

// FramebufferSize returns the drawable size in pixels
func (w *Window) FramebufferSize() (width, height int) {
	return w.glfwWindow.GetFramebufferSize()
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.title = title
	w.glfwWindow.SetTitle(title)
}

// Title returns the window title
func (w *Window) Title() string {
	return w.title
}

// Close destroys the window and releases GLFW
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Callback functions
func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.handler.HandleEvent(event.Resize{Width: width, Height: height})
}

func (w *Window) refreshCallback(_ *glfw.Window) {
	w.handler.HandleEvent(event.Paint{})
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if action != Press {
		return
	}
	w.handler.HandleEvent(event.KeyPress{Key: keyFromGLFW(key), Mods: event.Modifier(mods)})
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.handler.HandleEvent(event.Close{})
}
