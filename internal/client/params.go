package client

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"

	"github.com/google/go-querystring/query"
)

// EncodeParams flattens request data into form values.
//
// Accepted shapes: nil (empty), url.Values, map[string]string, map[string]any
// holding scalars or slices of scalars, and structs (or pointers to structs)
// tagged with `url:"name"`.
func EncodeParams(data any) (url.Values, error) {
	switch d := data.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		if d == nil {
			return url.Values{}, nil
		}
		return d, nil
	case map[string]string:
		values := make(url.Values, len(d))
		for k, v := range d {
			values.Set(k, v)
		}
		return values, nil
	case map[string][]string:
		return url.Values(d), nil
	case map[string]any:
		return encodeMap(d)
	}

	values, err := query.Values(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request data: %w", err)
	}
	return values, nil
}

func encodeMap(m map[string]any) (url.Values, error) {
	values := make(url.Values, len(m))

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := m[k]
		if v == nil {
			// Missing values are sent as empty strings
			values.Add(k, "")
			continue
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				item := rv.Index(i)
				if !isScalar(item) {
					return nil, fmt.Errorf("failed to encode request data: %q holds a nested %s", k, item.Kind())
				}
				values.Add(k, fmt.Sprint(item.Interface()))
			}
		default:
			if !isScalar(rv) {
				return nil, fmt.Errorf("failed to encode request data: %q holds a nested %s", k, rv.Kind())
			}
			values.Add(k, fmt.Sprint(v))
		}
	}
	return values, nil
}

func isScalar(v reflect.Value) bool {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array, reflect.Func, reflect.Chan, reflect.Interface:
		return false
	}
	return true
}
