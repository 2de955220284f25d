package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newButton() (*Node, *Node) {
	return NewNode("uk-button", "uk-button-primary"), NewNode("uk-icon-check")
}

func TestLoaderStartStop(t *testing.T) {
	button, icon := newButton()
	l := NewLoader(button, icon)

	l.Start()
	assert.True(t, icon.HasClass(SpinnerClass))
	assert.True(t, icon.HasClass(SpinClass))
	v, ok := button.Attr(DisabledAttr)
	assert.True(t, ok)
	assert.Equal(t, DisabledAttr, v)
	assert.True(t, l.Loading())

	l.Stop()
	assert.False(t, icon.HasClass(SpinnerClass))
	assert.False(t, icon.HasClass(SpinClass))
	_, ok = button.Attr(DisabledAttr)
	assert.False(t, ok)
	assert.False(t, l.Loading())

	// Unrelated classes survive the round trip
	assert.Equal(t, []string{"uk-icon-check"}, icon.Classes())
	assert.Equal(t, []string{"uk-button", "uk-button-primary"}, button.Classes())
}

func TestLoaderIsIdempotent(t *testing.T) {
	for _, starts := range []int{0, 1, 2, 5} {
		button, icon := newButton()
		l := NewLoader(button, icon)

		for i := 0; i < starts; i++ {
			l.Start()
		}
		l.Stop()

		assert.False(t, icon.HasClass(SpinnerClass), "starts=%d", starts)
		assert.False(t, icon.HasClass(SpinClass), "starts=%d", starts)
		assert.False(t, l.Loading(), "starts=%d", starts)
	}

	button, icon := newButton()
	l := NewLoader(button, icon)
	l.Stop()
	l.Stop()
	l.Start()
	assert.True(t, l.Loading())
}

func TestLoaderMissingElements(t *testing.T) {
	button, _ := newButton()
	l := NewLoader(button, nil)
	assert.NotPanics(t, l.Start)
	assert.True(t, l.Loading())
	assert.NotPanics(t, l.Stop)

	_, icon := newButton()
	l = NewLoader(nil, icon)
	assert.NotPanics(t, l.Start)
	assert.True(t, icon.HasClass(SpinClass))
	assert.False(t, l.Loading())

	var nilLoader *Loader
	assert.NotPanics(t, nilLoader.Start)
	assert.NotPanics(t, nilLoader.Stop)
}
