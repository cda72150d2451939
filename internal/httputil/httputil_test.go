package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTTPMethod(t *testing.T) {
	for _, m := range Methods {
		assert.True(t, IsHTTPMethod(m), m)
	}
	for _, key := range []string{"parameters", "summary", "description", "servers", "GET", "x-extension"} {
		assert.False(t, IsHTTPMethod(key), key)
	}
}

func TestIsIdempotent(t *testing.T) {
	tests := []struct {
		method string
		want   bool
	}{
		{"GET", true},
		{"get", true},
		{"HEAD", true},
		{"OPTIONS", true},
		{"PUT", true},
		{"DELETE", true},
		{"POST", false},
		{"PATCH", false},
		{"TRACE", false},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIdempotent(tt.method))
		})
	}
}

func TestIsJSONMediaType(t *testing.T) {
	tests := []struct {
		mediaType string
		want      bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"application/problem+json", true},
		{"application/xml", false},
		{"text/plain", false},
		{"multipart/form-data", false},
		{"not a media type", false},
	}
	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsJSONMediaType(tt.mediaType))
		})
	}
}

func TestHTTPMethodConstants(t *testing.T) {
	assert.Equal(t, "get", MethodGet)
	assert.Equal(t, "post", MethodPost)
	assert.Len(t, Methods, 8)
}
