package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierHas(t *testing.T) {
	m := ModCtrl | ModShift

	assert.True(t, m.Has(ModCtrl))
	assert.True(t, m.Has(ModCtrl|ModShift))
	assert.False(t, m.Has(ModAlt))
	assert.False(t, m.Has(ModCtrl|ModAlt))
}

func TestHandlerFunc(t *testing.T) {
	var got []Event
	var h Handler = HandlerFunc(func(ev Event) { got = append(got, ev) })

	h.HandleEvent(Paint{})
	h.HandleEvent(Resize{Width: 2, Height: 3})

	assert.Equal(t, []Event{Paint{}, Resize{Width: 2, Height: 3}}, got)
}
