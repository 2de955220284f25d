//go:build js && !wasm

package dom

import (
	"github.com/AlexZinkM/pagekit/internal/client"
	"github.com/AlexZinkM/pagekit/internal/ui"

	"honnef.co/go/js/dom"
)

// Selectors locate the elements of a form page
type Selectors struct {
	// Alert is matched against the whole document
	Alert string
	// Form scopes the Submit lookup
	Form   string
	Submit string
	// Icon is matched inside the submit button
	Icon string
}

func DefaultSelectors() Selectors {
	return Selectors{
		Alert:  "div.uk-alert-danger",
		Form:   "form",
		Submit: "button[type=submit]",
		Icon:   "i",
	}
}

// NewBanner binds a banner to the first element matching sel.Alert
func NewBanner(sel Selectors, opts ...ui.BannerOption) *ui.Banner {
	doc := dom.GetWindow().Document()
	opts = append([]ui.BannerOption{ui.WithViewport(NewWindow())}, opts...)
	return ui.NewBanner(Wrap(doc.QuerySelector(sel.Alert)), opts...)
}

// NewLoader binds a loader to the submit button of the first form
func NewLoader(sel Selectors) *ui.Loader {
	doc := dom.GetWindow().Document()
	form := doc.QuerySelector(sel.Form)
	if form == nil {
		return ui.NewLoader(nil, nil)
	}
	button := form.QuerySelector(sel.Submit)
	if button == nil {
		return ui.NewLoader(nil, nil)
	}
	return ui.NewLoader(Wrap(button), Wrap(button.QuerySelector(sel.Icon)))
}

// NewPage resolves the selectors once and returns the bound page
func NewPage(c *client.Client, sel Selectors, opts ...ui.BannerOption) *ui.Page {
	return ui.NewPage(c, NewBanner(sel, opts...), NewLoader(sel))
}
