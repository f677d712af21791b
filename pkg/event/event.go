// Package event defines the host events routed through the application.
// The host window translates its native callbacks into these values and
// hands them to a Handler on the UI thread.
package event

// Event is any value delivered to a Handler.
type Event interface{}

// Handler reacts to events. Implementations run to completion before the
// next event is dispatched.
type Handler interface {
	HandleEvent(Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(Event)

// HandleEvent calls f(ev).
func (f HandlerFunc) HandleEvent(ev Event) { f(ev) }

// Paint asks the receiver to redraw its contents.
type Paint struct{}

// Resize reports a new client area size in pixels.
type Resize struct {
	Width  int
	Height int
}

// KeyPress reports a key going down.
type KeyPress struct {
	Key  Key
	Mods Modifier
}

// Command carries a menu command identifier.
type Command struct {
	ID int
}

// Close reports that the user asked to close the window.
type Close struct{}

// Key identifies a keyboard key independent of the host toolkit. Letter keys
// use their upper-case ASCII value.
type Key int

// Keys used by menu accelerators.
const (
	KeyUnknown Key = -1
	KeyF1      Key = 290
	KeyF2      Key = 291
	KeyEscape  Key = 256
)

// Modifier is a bit set of held modifier keys.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether all bits of o are set in m.
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}
