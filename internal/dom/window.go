//go:build js && !wasm

package dom

import (
	"github.com/AlexZinkM/pagekit/internal/ui"

	"github.com/gopherjs/gopherjs/js"
	"honnef.co/go/js/dom"
)

// Window measures and scrolls the browser viewport
type Window struct {
	w dom.Window
}

func NewWindow() *Window {
	return &Window{w: dom.GetWindow()}
}

func (v *Window) ScrollTop() (float64, error) {
	return float64(v.w.ScrollY()), nil
}

// OffsetTop returns the element's top edge in document coordinates
func (v *Window) OffsetTop(el ui.Element) (float64, error) {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return 0, ui.ErrNoLayout
	}
	rect := e.el.GetBoundingClientRect()
	return rect.Top + float64(v.w.ScrollY()), nil
}

// AnimateScrollTo scrolls smoothly where the browser supports it
func (v *Window) AnimateScrollTo(top float64) error {
	js.Global.Call("scrollTo", js.M{"top": top, "behavior": "smooth"})
	return nil
}

var _ ui.Viewport = (*Window)(nil)
