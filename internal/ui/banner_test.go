package ui

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/AlexZinkM/pagekit/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeViewport records scroll requests
type fakeViewport struct {
	top      float64
	scroll   float64
	measure  error
	animate  error
	panics   bool
	scrolled []float64
	measured int
}

func (v *fakeViewport) ScrollTop() (float64, error) {
	return v.scroll, nil
}

func (v *fakeViewport) OffsetTop(Element) (float64, error) {
	v.measured++
	if v.panics {
		panic("offset of undefined")
	}
	return v.top, v.measure
}

func (v *fakeViewport) AnimateScrollTo(top float64) error {
	if v.animate != nil {
		return v.animate
	}
	v.scrolled = append(v.scrolled, top)
	v.scroll = top
	return nil
}

func TestShowErrorFalsyClearsBanner(t *testing.T) {
	var nilErr *model.APIError
	for _, v := range []any{nil, "", false, 0, nilErr, json.RawMessage("null")} {
		el := NewNode("uk-alert", "uk-alert-danger")
		el.SetText("previous")
		b := NewBanner(el)

		b.ShowError(v)

		assert.True(t, el.HasClass(HiddenClass), "%#v", v)
		assert.False(t, el.Visible(), "%#v", v)
		assert.Empty(t, el.Text(), "%#v", v)
		assert.True(t, el.HasClass("uk-alert-danger"))
	}
}

func TestShowErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"message over error", map[string]any{"error": "value:invalid", "message": "Invalid email."}, "Invalid email."},
		{"error without message", map[string]any{"error": "value:invalid"}, "value:invalid"},
		{"api error message", model.ValueError("email", "Invalid email."), "Invalid email."},
		{"api error code", &model.APIError{Code: "bad_input"}, "bad_input"},
		{"network error", model.NetworkError(500), "Network error (HTTP 500)"},
		{"raw body", json.RawMessage(`{"error":"auth:failed","message":"Invalid password."}`), "Invalid password."},
		{"plain string", "Something broke", "Something broke"},
		{"go error", errors.New("dial tcp: refused"), "dial tcp: refused"},
		{"wrapped api error", errWrap{model.ValueError("name", "Name is required.")}, "Name is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := NewNode(HiddenClass)
			el.Hide()
			b := NewBanner(el)

			b.ShowError(tt.v)

			assert.Equal(t, tt.want, el.Text())
			assert.False(t, el.HasClass(HiddenClass))
			assert.True(t, el.Visible())
		})
	}
}

type errWrap struct{ err error }

func (e errWrap) Error() string { return "wrapped: " + e.err.Error() }
func (e errWrap) Unwrap() error { return e.err }

func TestShowErrorScrollsBannerIntoView(t *testing.T) {
	tests := []struct {
		name     string
		top      float64
		scroll   float64
		scrolled []float64
	}{
		{"banner above viewport", 100, 500, []float64{100 - DefaultHeaderOffset}},
		{"banner visible", 100, 120, nil},
		{"banner at header edge", 100, 100 + DefaultHeaderOffset, nil},
		{"page not scrolled", 100, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := &fakeViewport{top: tt.top, scroll: tt.scroll}
			b := NewBanner(NewNode(), WithViewport(vp))

			b.ShowError("boom")

			assert.Equal(t, tt.scrolled, vp.scrolled)
		})
	}
}

func TestShowErrorHeaderOffset(t *testing.T) {
	vp := &fakeViewport{top: 300, scroll: 1000}
	b := NewBanner(NewNode(), WithViewport(vp), WithHeaderOffset(60))

	b.ShowError("boom")

	assert.Equal(t, []float64{240}, vp.scrolled)
}

func TestShowErrorClearDoesNotScroll(t *testing.T) {
	vp := &fakeViewport{top: 0, scroll: 1000}
	b := NewBanner(NewNode(), WithViewport(vp))

	b.Clear()

	assert.Zero(t, vp.measured)
	assert.Empty(t, vp.scrolled)
}

func TestRevealFailuresAreSwallowed(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
	}{
		{"no viewport", nil},
		{"measure error", &fakeViewport{measure: ErrNoLayout}},
		{"animate error", &fakeViewport{top: 0, scroll: 500, animate: errors.New("no animation")}},
		{"viewport panic", &fakeViewport{panics: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			el := NewNode(HiddenClass)
			opts := []BannerOption{WithBannerLogger(zap.New(core))}
			if tt.vp != nil {
				opts = append(opts, WithViewport(tt.vp))
			}
			b := NewBanner(el, opts...)

			require.NotPanics(t, func() { b.ShowError("still shown") })

			assert.Equal(t, "still shown", el.Text())
			assert.True(t, el.Visible())
			assert.Equal(t, 1, logs.FilterMessage("banner reveal skipped").Len())
		})
	}
}

func TestRevealReturnsError(t *testing.T) {
	b := NewBanner(NewNode(), WithViewport(&fakeViewport{panics: true}))
	assert.ErrorContains(t, b.Reveal(), "viewport panic")

	b = NewBanner(NewNode())
	assert.ErrorIs(t, b.Reveal(), ErrNoLayout)
}

func TestShowErrorNilBanner(t *testing.T) {
	var b *Banner
	assert.NotPanics(t, func() { b.ShowError("x") })
	assert.NotPanics(t, func() { NewBanner(nil).ShowError("x") })
}
