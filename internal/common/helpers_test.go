package common

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type displayer struct{ text string }

func (d displayer) DisplayText() string { return d.text }
func (d displayer) Error() string       { return "displayer" }

func TestTruthy(t *testing.T) {
	var nilMap map[string]any
	var nilErr *displayer

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"string", "x", true},
		{"false", false, false},
		{"true", true, true},
		{"zero int", 0, false},
		{"int", 3, true},
		{"zero float", 0.0, false},
		{"typed nil map", nilMap, false},
		{"typed nil pointer", nilErr, false},
		{"empty map", map[string]any{}, true},
		{"empty raw", json.RawMessage(nil), false},
		{"raw null", json.RawMessage("null"), false},
		{"raw empty string", json.RawMessage(`""`), false},
		{"raw zero", json.RawMessage("0"), false},
		{"raw empty object", json.RawMessage("{}"), true},
		{"raw empty array", json.RawMessage("[]"), true},
		{"struct", struct{}{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.v))
		})
	}
}

func TestBodyError(t *testing.T) {
	tests := []struct {
		body   string
		flag   bool
		result string
	}{
		{`{"error":"bad_input"}`, true, "bad_input"},
		{`{"error":true}`, true, "true"},
		{`{"error":1}`, true, "1"},
		{`{"error":{}}`, true, "{}"},
		{`{"error":""}`, false, ""},
		{`{"error":null}`, false, ""},
		{`{"error":false}`, false, "false"},
		{`{"error":0}`, false, "0"},
		{`{"ok":true}`, false, ""},
		{`[{"error":"x"}]`, false, ""},
		{`"error"`, false, ""},
		{`null`, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			field, ok := BodyError([]byte(tt.body))
			assert.Equal(t, tt.flag, ok)
			if tt.flag {
				assert.Equal(t, tt.result, field.String())
			}
		})
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string", "boom", "boom"},
		{"message wins over error", map[string]any{"error": "e", "message": "m"}, "m"},
		{"error when message missing", map[string]any{"error": "e"}, "e"},
		{"error when message empty", map[string]any{"error": "e", "message": ""}, "e"},
		{"bare object", map[string]any{"x": 1}, "[object Object]"},
		{"string map", map[string]string{"error": "e"}, "e"},
		{"raw message wins", json.RawMessage(`{"error":"e","message":"m"}`), "m"},
		{"raw error", json.RawMessage(`{"error":"value:invalid","data":"email"}`), "value:invalid"},
		{"raw string", json.RawMessage(`"text"`), "text"},
		{"raw number", json.RawMessage(`42`), "42"},
		{"invalid raw", []byte("not json"), "not json"},
		{"displayer", displayer{"shown"}, "shown"},
		{"plain error", errors.New("plain"), "plain"},
		{"number", 7, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayText(tt.v))
		})
	}
}
