package app

import (
	"fmt"
	"strings"

	"github.com/leterax/go-glcanvas/pkg/event"
)

// CommandID identifies a menu command
type CommandID int

// Menu command identifiers. Exit and About keep the stock identifiers
// desktop toolkits reserve for them.
const (
	CommandHello  CommandID = 1
	CommandOpenGL CommandID = 2
	CommandExit   CommandID = 5006
	CommandAbout  CommandID = 5014
)

func (id CommandID) String() string {
	switch id {
	case CommandHello:
		return "hello"
	case CommandOpenGL:
		return "opengl"
	case CommandExit:
		return "exit"
	case CommandAbout:
		return "about"
	}
	return fmt.Sprintf("command(%d)", int(id))
}

// Modifiers that take part in shortcut matching. Lock keys are ignored.
const shortcutMods = event.ModShift | event.ModCtrl | event.ModAlt | event.ModSuper

// Shortcut is a keyboard accelerator
type Shortcut struct {
	Key  event.Key
	Mods event.Modifier
}

// Matches reports whether a key press triggers the shortcut
func (s Shortcut) Matches(key event.Key, mods event.Modifier) bool {
	return s.Key != 0 && s.Key == key && s.Mods == mods&shortcutMods
}

func (s Shortcut) String() string {
	if s.Key == 0 {
		return ""
	}
	var b strings.Builder
	if s.Mods.Has(event.ModCtrl) {
		b.WriteString("Ctrl-")
	}
	if s.Mods.Has(event.ModAlt) {
		b.WriteString("Alt-")
	}
	if s.Mods.Has(event.ModShift) {
		b.WriteString("Shift-")
	}
	if s.Mods.Has(event.ModSuper) {
		b.WriteString("Super-")
	}
	switch {
	case s.Key >= event.KeyF1 && s.Key < event.KeyF1+25:
		fmt.Fprintf(&b, "F%d", int(s.Key-event.KeyF1)+1)
	case s.Key == event.KeyEscape:
		b.WriteString("Esc")
	case s.Key > ' ' && s.Key < 127:
		b.WriteRune(rune(s.Key))
	default:
		fmt.Fprintf(&b, "key(%d)", int(s.Key))
	}
	return b.String()
}

// MenuItem is a single entry of a menu. Separator items carry no command.
type MenuItem struct {
	ID        CommandID
	Label     string
	Help      string
	Shortcut  Shortcut
	Separator bool
}

// Menu is a titled group of items
type Menu struct {
	Title string
	Items []MenuItem
}

// MenuBar is the ordered list of menus of the main window
type MenuBar struct {
	Menus []Menu
}

// DefaultMenuBar returns the File, View and Help menus
func DefaultMenuBar() MenuBar {
	return MenuBar{Menus: []Menu{
		{
			Title: "File",
			Items: []MenuItem{
				{
					ID:       CommandHello,
					Label:    "Hello...",
					Help:     "Help string shown in status bar for this menu item",
					Shortcut: Shortcut{Key: 'H', Mods: event.ModCtrl},
				},
				{Separator: true},
				{
					ID:       CommandExit,
					Label:    "Exit",
					Help:     "Quit this program",
					Shortcut: Shortcut{Key: 'Q', Mods: event.ModCtrl},
				},
			},
		},
		{
			Title: "View",
			Items: []MenuItem{
				{
					ID:       CommandOpenGL,
					Label:    "OpenGL",
					Help:     "OpenGL view",
					Shortcut: Shortcut{Key: 'G', Mods: event.ModCtrl},
				},
			},
		},
		{
			Title: "Help",
			Items: []MenuItem{
				{
					ID:       CommandAbout,
					Label:    "About",
					Help:     "Show about dialog",
					Shortcut: Shortcut{Key: event.KeyF1},
				},
			},
		},
	}}
}

// Lookup finds the command bound to a key press
func (b MenuBar) Lookup(key event.Key, mods event.Modifier) (CommandID, bool) {
	for _, m := range b.Menus {
		for _, item := range m.Items {
			if !item.Separator && item.Shortcut.Matches(key, mods) {
				return item.ID, true
			}
		}
	}
	return 0, false
}

// Item returns the menu item for a command
func (b MenuBar) Item(id CommandID) (MenuItem, bool) {
	for _, m := range b.Menus {
		for _, item := range m.Items {
			if !item.Separator && item.ID == id {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

// Commands returns every command identifier in menu order
func (b MenuBar) Commands() []CommandID {
	var ids []CommandID
	for _, m := range b.Menus {
		for _, item := range m.Items {
			if !item.Separator {
				ids = append(ids, item.ID)
			}
		}
	}
	return ids
}

// String renders the menu bar as text, one menu per line.
func (b MenuBar) String() string {
	var sb strings.Builder
	for i, m := range b.Menus {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.Title)
		sb.WriteString(":")
		for _, item := range m.Items {
			if item.Separator {
				sb.WriteString(" |")
				continue
			}
			fmt.Fprintf(&sb, " [%s", item.Label)
			if sc := item.Shortcut.String(); sc != "" {
				fmt.Fprintf(&sb, " %s", sc)
			}
			sb.WriteString("]")
		}
	}
	return sb.String()
}
