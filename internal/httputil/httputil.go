// Package httputil provides HTTP method and media type helpers shared by the
// parser, the generator and the runtime client.
package httputil

import (
	"mime"
	"net/http"
	"strings"
)

// HTTP Method Constants, lower-cased as they appear as OpenAPI path item keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// JSONMediaType is the media type whose request body schema feeds generated parameters.
const JSONMediaType = "application/json"

// Methods lists the path item keys that denote operations.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// IsHTTPMethod reports whether a path item key names an operation.
func IsHTTPMethod(key string) bool {
	for _, m := range Methods {
		if m == key {
			return true
		}
	}
	return false
}

// IsIdempotent reports whether requests with this method may be safely retried.
// The comparison is case-insensitive.
func IsIdempotent(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// IsJSONMediaType reports whether a content key describes a JSON payload,
// including structured suffixes such as "application/problem+json".
func IsJSONMediaType(mediaType string) bool {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	return mt == JSONMediaType || (strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}
