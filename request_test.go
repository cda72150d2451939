package namabar

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestBuilder(t *testing.T) {
	r := newRequest(http.MethodGet, "/accounts/{accountId}/messages/{id}")
	r.setPath("accountId", int64(42))
	r.setPath("id", "a/b c")
	r.addQuery("tag", []any{"x", int64(2)})
	r.addQuery("limit", int64(10))
	r.addQuery("verbose", true)
	r.setHeader("X-Request-ID", "req-1")
	r.addCookie("session", "s1")

	assert.Equal(t, "/accounts/42/messages/a%2Fb%20c", r.path)
	assert.Equal(t, []string{"x", "2"}, r.query["tag"])
	assert.Equal(t, "10", r.query.Get("limit"))
	assert.Equal(t, "true", r.query.Get("verbose"))
	assert.Equal(t, "req-1", r.header.Get("X-Request-ID"))
	if assert.Len(t, r.cookies, 1) {
		assert.Equal(t, "session", r.cookies[0].Name)
		assert.Equal(t, "s1", r.cookies[0].Value)
	}
	assert.Nil(t, r.body, "no body properties set")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "abc", "abc"},
		{"int", int64(-3), "-3"},
		{"float", 1.5, "1.5"},
		{"bool", false, "false"},
		{"slice", []any{"a", 1, true}, "a,1,true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.value))
		})
	}
}
