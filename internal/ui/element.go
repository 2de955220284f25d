// Package ui holds the page-side controllers: the error banner and the
// submit button loading state. They mutate injected elements only, so the
// same code drives a browser page, a terminal, or an in-memory test double.
package ui

import "errors"

// ErrNoLayout is returned by a Viewport that cannot measure the page
var ErrNoLayout = errors.New("layout information unavailable")

// Element is the subset of a page element the controllers touch
type Element interface {
	AddClass(names ...string)
	RemoveClass(names ...string)
	HasClass(name string) bool

	SetText(text string)
	Text() string

	SetAttr(name, value string)
	RemoveAttr(name string)
	Attr(name string) (string, bool)

	Show()
	Hide()
	Visible() bool
}

// Viewport exposes the scroll state used to bring the banner into view
type Viewport interface {
	// ScrollTop returns the current vertical scroll offset of the page
	ScrollTop() (float64, error)
	// OffsetTop returns the element's top relative to the document
	OffsetTop(el Element) (float64, error)
	// AnimateScrollTo scrolls the page to top, animated where supported
	AnimateScrollTo(top float64) error
}
