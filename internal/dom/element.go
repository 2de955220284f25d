//go:build js && !wasm

// Package dom binds the page elements to the browser DOM.
package dom

import (
	"strings"

	"github.com/AlexZinkM/pagekit/internal/ui"

	"honnef.co/go/js/dom"
)

// Element adapts a DOM element to ui.Element
type Element struct {
	el dom.Element
}

// Wrap returns nil for a missing element so callers can pass the result
// straight to ui constructors that skip nil elements.
func Wrap(el dom.Element) ui.Element {
	if el == nil {
		return nil
	}
	return &Element{el: el}
}

func (e *Element) AddClass(names ...string) {
	list := e.el.Class()
	for _, name := range names {
		for _, c := range strings.Fields(name) {
			list.Add(c)
		}
	}
}

func (e *Element) RemoveClass(names ...string) {
	list := e.el.Class()
	for _, name := range names {
		for _, c := range strings.Fields(name) {
			list.Remove(c)
		}
	}
}

func (e *Element) HasClass(name string) bool {
	return e.el.Class().Contains(name)
}

func (e *Element) SetText(text string) {
	e.el.SetTextContent(text)
}

func (e *Element) Text() string {
	return e.el.TextContent()
}

func (e *Element) SetAttr(name, value string) {
	e.el.SetAttribute(name, value)
}

func (e *Element) RemoveAttr(name string) {
	e.el.RemoveAttribute(name)
}

func (e *Element) Attr(name string) (string, bool) {
	if !e.el.HasAttribute(name) {
		return "", false
	}
	return e.el.GetAttribute(name), true
}

// Show clears an inline display:none
func (e *Element) Show() {
	if h, ok := e.el.(dom.HTMLElement); ok {
		h.Style().RemoveProperty("display")
	}
}

func (e *Element) Hide() {
	if h, ok := e.el.(dom.HTMLElement); ok {
		h.Style().SetProperty("display", "none", "")
	}
}

func (e *Element) Visible() bool {
	h, ok := e.el.(dom.HTMLElement)
	if !ok {
		return true
	}
	return h.Style().GetPropertyValue("display") != "none"
}

var _ ui.Element = (*Element)(nil)
