package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexZinkM/pagekit/internal/model"

	"github.com/tidwall/gjson"
)

// Result is the outcome of one API call. Exactly one of Err and the success
// body is meaningful: when Err is nil the call succeeded and Body holds the
// decoded response (nil for 204 No Content).
type Result struct {
	Body   json.RawMessage
	Err    *model.APIError
	Status int
}

// Callback receives the outcome of a request: (err, nil) on failure or
// (nil, body) on success.
type Callback func(err *model.APIError, body json.RawMessage)

// OK reports whether the call succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Get looks up a gjson path in the success body
func (r Result) Get(path string) gjson.Result {
	if r.Err != nil || len(r.Body) == 0 {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.Body, path)
}

// Decode unmarshals the success body into v
func (r Result) Decode(v any) error {
	if r.Err != nil {
		return r.Err
	}
	if len(r.Body) == 0 {
		return errors.New("empty response body")
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Deliver hands the outcome to cb in the callback shape
func (r Result) Deliver(cb Callback) {
	if r.Err != nil {
		cb(r.Err, nil)
		return
	}
	cb(nil, r.Body)
}
