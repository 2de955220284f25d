//go:build js && !wasm

// Command pagekit-js is compiled with GopherJS and exposes the page helpers
// on window: showError, getApi, postApi, startLoading and stopLoading.
package main

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/AlexZinkM/pagekit/internal/client"
	pagedom "github.com/AlexZinkM/pagekit/internal/dom"
	"github.com/AlexZinkM/pagekit/internal/model"
	"github.com/AlexZinkM/pagekit/internal/ui"

	"github.com/gopherjs/gopherjs/js"
	"go.uber.org/zap"
)

var (
	logger    = newLogger()
	api       = client.NewClient(documentBase(), client.WithLogger(logger))
	selectors = pagedom.DefaultSelectors()
)

func main() {
	js.Global.Set("showError", showError)
	js.Global.Set("getApi", func(args ...*js.Object) { request(http.MethodGet, args) })
	js.Global.Set("postApi", func(args ...*js.Object) { request(http.MethodPost, args) })
	js.Global.Set("startLoading", func() { pagedom.NewLoader(selectors).Start() })
	js.Global.Set("stopLoading", func() { pagedom.NewLoader(selectors).Stop() })
}

func newLogger() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// documentBase is the directory of the current page, so relative API paths
// resolve the way the browser would resolve them.
func documentBase() string {
	u, err := url.Parse(js.Global.Get("location").Get("href").String())
	if err != nil {
		return ""
	}
	u.RawQuery, u.Fragment = "", ""
	u.Path = u.Path[:strings.LastIndex(u.Path, "/")+1]
	return u.String()
}

func showError(err *js.Object) {
	opts := []ui.BannerOption{ui.WithBannerLogger(logger)}
	// Pages with a different header height set window.pagekitHeaderOffset
	if offset := js.Global.Get("pagekitHeaderOffset"); offset != js.Undefined && offset != nil {
		opts = append(opts, ui.WithHeaderOffset(offset.Float()))
	}
	pagedom.NewBanner(selectors, opts...).ShowError(errorValue(err))
}

// errorValue converts a JS error argument into a value the banner understands
func errorValue(o *js.Object) any {
	if !truthy(o) {
		return nil
	}
	if truthy(o.Get("message")) || truthy(o.Get("error")) {
		return map[string]any{
			"message": o.Get("message").Interface(),
			"error":   o.Get("error").Interface(),
		}
	}
	return o.String()
}

func truthy(o *js.Object) bool {
	return o != nil && o != js.Undefined && o.Bool()
}

// request implements getApi/postApi(url, [data,] callback)
func request(method string, args []*js.Object) {
	if len(args) == 0 {
		return
	}
	path := args[0].String()

	var data, cb *js.Object
	switch len(args) {
	case 1:
	case 2:
		cb = args[1]
	default:
		data, cb = args[1], args[2]
	}

	var params any
	if truthy(data) {
		params = data.Interface()
		// Pre-encoded query strings are accepted as-is
		if q, ok := params.(string); ok {
			values, err := url.ParseQuery(q)
			if err != nil {
				logger.Warn("invalid request data", zap.String("url", path), zap.Error(err))
			}
			params = values
		}
	}

	var callback client.Callback
	if truthy(cb) {
		callback = func(apiErr *model.APIError, body json.RawMessage) {
			if apiErr != nil {
				cb.Invoke(errorObject(apiErr))
				return
			}
			cb.Invoke(nil, parseJSON(body))
		}
	}
	api.Request(method, path, params, callback)
}

func errorObject(e *model.APIError) any {
	if e.Raw != nil {
		return parseJSON(e.Raw)
	}
	return js.M{"error": e.Code, "message": e.Message}
}

func parseJSON(raw json.RawMessage) *js.Object {
	if raw == nil {
		return nil
	}
	return js.Global.Get("JSON").Call("parse", string(raw))
}
