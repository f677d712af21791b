package app

import (
	"testing"

	"github.com/leterax/go-glcanvas/pkg/event"
	"github.com/stretchr/testify/assert"
)

func TestShortcutString(t *testing.T) {
	assert.Equal(t, "Ctrl-H", Shortcut{Key: 'H', Mods: event.ModCtrl}.String())
	assert.Equal(t, "F1", Shortcut{Key: event.KeyF1}.String())
	assert.Equal(t, "Ctrl-Shift-F2", Shortcut{Key: event.KeyF2, Mods: event.ModCtrl | event.ModShift}.String())
	assert.Equal(t, "Esc", Shortcut{Key: event.KeyEscape}.String())
	assert.Equal(t, "", Shortcut{}.String())
}

func TestShortcutMatches(t *testing.T) {
	sc := Shortcut{Key: 'H', Mods: event.ModCtrl}

	assert.True(t, sc.Matches('H', event.ModCtrl))
	assert.False(t, sc.Matches('H', event.ModCtrl|event.ModShift))
	assert.False(t, sc.Matches('J', event.ModCtrl))
	assert.False(t, Shortcut{}.Matches(0, 0), "empty shortcut never matches")
}

func TestMenuBarLookup(t *testing.T) {
	bar := DefaultMenuBar()

	id, ok := bar.Lookup(event.KeyF1, 0)
	assert.True(t, ok)
	assert.Equal(t, CommandAbout, id)

	_, ok = bar.Lookup(0, 0)
	assert.False(t, ok, "separators are not commands")
}

func TestMenuBarItem(t *testing.T) {
	bar := DefaultMenuBar()

	item, ok := bar.Item(CommandOpenGL)
	assert.True(t, ok)
	assert.Equal(t, "OpenGL", item.Label)
	assert.Equal(t, "OpenGL view", item.Help)

	_, ok = bar.Item(CommandID(99))
	assert.False(t, ok)
}

func TestMenuBarString(t *testing.T) {
	want := "File: [Hello... Ctrl-H] | [Exit Ctrl-Q]\n" +
		"View: [OpenGL Ctrl-G]\n" +
		"Help: [About F1]"
	assert.Equal(t, want, DefaultMenuBar().String())
}

func TestCommandIDString(t *testing.T) {
	assert.Equal(t, "opengl", CommandOpenGL.String())
	assert.Equal(t, "command(7)", CommandID(7).String())
}
