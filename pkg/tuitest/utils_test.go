package tuitest

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[31mred\x1b[0m   \nplain  \n\n"
	assert.Equal(t, "red\nplain", StripANSI(in))
}

func TestKeyPress_String(t *testing.T) {
	assert.Equal(t, "x", KeyPress('x').String())
	assert.Equal(t, "enter", KeyCode(tea.KeyEnter).String())
	assert.Equal(t, "ctrl+o", KeyCtrl('o').String())
	assert.Equal(t, "shift+tab", KeyShiftTab().String())
}

func TestType(t *testing.T) {
	msgs := Type("hi")
	assert.Len(t, msgs, 2)
	assert.Equal(t, "h", msgs[0].String())
}
