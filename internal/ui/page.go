package ui

import (
	"encoding/json"

	"github.com/AlexZinkM/pagekit/internal/client"
)

// Page ties the banner and loader of one form to an API client
type Page struct {
	Banner *Banner
	Loader *Loader
	client *client.Client
}

// NewPage creates a Page. banner and loader may be nil.
func NewPage(c *client.Client, banner *Banner, loader *Loader) *Page {
	return &Page{Banner: banner, Loader: loader, client: c}
}

// Client returns the API client the page submits through
func (p *Page) Client() *client.Client {
	return p.client
}

// Submit runs the usual form flow: clear the banner, start loading, send the
// request, then show the error or hand the body to done. Loading stops once
// the outcome has been handled. The returned channel yields the Result after
// the page has been updated, then closes.
func (p *Page) Submit(method, path string, data any, done func(body json.RawMessage)) <-chan client.Result {
	p.Banner.ShowError(nil)
	p.Loader.Start()

	out := make(chan client.Result, 1)
	go func() {
		defer close(out)
		result := <-p.client.Go(method, path, data)
		if result.Err != nil {
			p.Banner.ShowError(result.Err)
		} else if done != nil {
			done(result.Body)
		}
		p.Loader.Stop()
		out <- result
	}()
	return out
}
