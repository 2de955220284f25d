package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/tidwall/gjson"
)

const (
	FieldError   = "error"   // JSON field flagging an application error
	FieldMessage = "message" // JSON field carrying the human readable text
)

// Truthy reports whether v would be truthy in the page script that consumes
// the API: nil, typed nil, "", false, zero numbers and empty or falsy JSON
// documents are falsy. Everything else, including empty maps, is truthy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.RawMessage:
		return truthyRaw(t)
	case []byte:
		return truthyRaw(t)
	case gjson.Result:
		return TruthyJSON(t)
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int:
		return t != 0
	case int64:
		return t != 0
	case int32:
		return t != 0
	case uint:
		return t != 0
	case uint64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	}

	// Typed nil pointers, interfaces, maps and funcs stored in an interface
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// TruthyJSON applies the same rules to a JSON value
func TruthyJSON(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	case gjson.JSON:
		// Objects and arrays are truthy even when empty
		return true
	}
	return false
}

func truthyRaw(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return TruthyJSON(gjson.ParseBytes(b))
}

// BodyError returns the "error" field of a JSON body when the body is an
// object and the field is truthy.
func BodyError(body []byte) (gjson.Result, bool) {
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return gjson.Result{}, false
	}
	field := doc.Get(FieldError)
	return field, TruthyJSON(field)
}

// DisplayText resolves the text to show for an error-like value. Precedence:
// a truthy "message" field, then a truthy "error" field, then the value
// itself rendered as a string.
func DisplayText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.RawMessage:
		return displayRaw(t)
	case []byte:
		return displayRaw(t)
	case gjson.Result:
		return displayJSON(t)
	case map[string]any:
		if m, ok := t[FieldMessage]; ok && Truthy(m) {
			return fmt.Sprint(m)
		}
		if e, ok := t[FieldError]; ok && Truthy(e) {
			return fmt.Sprint(e)
		}
		return "[object Object]"
	case map[string]string:
		if t[FieldMessage] != "" {
			return t[FieldMessage]
		}
		if t[FieldError] != "" {
			return t[FieldError]
		}
		return "[object Object]"
	case interface{ DisplayText() string }:
		return t.DisplayText()
	case error:
		var dt interface{ DisplayText() string }
		if errors.As(t, &dt) {
			return dt.DisplayText()
		}
		return t.Error()
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

func displayRaw(b []byte) string {
	if !gjson.ValidBytes(b) {
		return string(b)
	}
	return displayJSON(gjson.ParseBytes(b))
}

func displayJSON(r gjson.Result) string {
	if r.IsObject() {
		if m := r.Get(FieldMessage); TruthyJSON(m) {
			return m.String()
		}
		if e := r.Get(FieldError); TruthyJSON(e) {
			return e.String()
		}
		return "[object Object]"
	}
	if r.Type == gjson.String {
		return r.Str
	}
	return r.Raw
}
