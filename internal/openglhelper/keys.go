package openglhelper

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-glcanvas/pkg/event"
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// keyFromGLFW maps a GLFW key to an event.Key. GLFW already uses upper-case
// ASCII for printable keys and the same codes for function keys.
func keyFromGLFW(key glfw.Key) event.Key {
	switch {
	case key == glfw.KeyUnknown:
		return event.KeyUnknown
	case key >= glfw.KeySpace && key <= glfw.KeyGraveAccent:
		return event.Key(key)
	case key == glfw.KeyEscape:
		return event.KeyEscape
	case key >= glfw.KeyF1 && key <= glfw.KeyF25:
		return event.KeyF1 + event.Key(key-glfw.KeyF1)
	}
	return event.KeyUnknown
}
