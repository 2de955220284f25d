package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name               string
		items, index, size int
		want               Page
	}{
		{"first of three", 25, 1, 10, Page{ItemCount: 25, PageIndex: 1, PageSize: 10, PageCount: 3, Offset: 0, Limit: 10, HasNext: true}},
		{"last partial", 25, 3, 10, Page{ItemCount: 25, PageIndex: 3, PageSize: 10, PageCount: 3, Offset: 20, Limit: 10, HasPrevious: true}},
		{"past the end", 25, 4, 10, Page{ItemCount: 25, PageIndex: 1, PageSize: 10, PageCount: 3, HasNext: true}},
		{"empty", 0, 1, 10, Page{PageIndex: 1, PageSize: 10}},
		{"defaults", 5, 0, 0, Page{ItemCount: 5, PageIndex: 1, PageSize: 10, PageCount: 1, Limit: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPage(tt.items, tt.index, tt.size))
		})
	}
}

func TestNetworkError(t *testing.T) {
	e := NetworkError(500)
	assert.Equal(t, "HTTP500", e.Code)
	assert.Equal(t, "Network error (HTTP 500)", e.Message)
	assert.True(t, e.IsNetworkError())
	assert.Equal(t, "Network error (HTTP 500)", e.DisplayText())

	assert.False(t, ValueError("email", "Invalid email.").IsNetworkError())
	assert.Equal(t, "value:invalid: Invalid email.", ValueError("email", "Invalid email.").Error())
	assert.Equal(t, "Forbidden", PermissionError("").Message)
}
