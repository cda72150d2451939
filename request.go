package namabar

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// request is an endpoint call under construction. The generated methods
// create one per call and fill it parameter by parameter.
type request struct {
	method  string
	path    string
	query   url.Values
	header  http.Header
	cookies []*http.Cookie
	body    map[string]any
}

func newRequest(method, path string) *request {
	return &request{method: method, path: path}
}

// setPath substitutes the {name} placeholder with the escaped value.
func (r *request) setPath(name string, value any) {
	r.path = strings.ReplaceAll(r.path, "{"+name+"}", url.PathEscape(formatValue(value)))
}

// addQuery adds value under name. Slices add one entry per element.
func (r *request) addQuery(name string, value any) {
	if r.query == nil {
		r.query = url.Values{}
	}
	if items, ok := value.([]any); ok {
		for _, item := range items {
			r.query.Add(name, formatValue(item))
		}
		return
	}
	r.query.Add(name, formatValue(value))
}

func (r *request) setHeader(name string, value any) {
	if r.header == nil {
		r.header = http.Header{}
	}
	r.header.Set(name, formatValue(value))
}

func (r *request) addCookie(name string, value any) {
	r.cookies = append(r.cookies, &http.Cookie{Name: name, Value: formatValue(value)})
}

// setBody stores a JSON body property. Only properties that were set are
// sent, and a body with no properties sends no payload.
func (r *request) setBody(name string, value any) {
	if r.body == nil {
		r.body = make(map[string]any)
	}
	r.body[name] = value
}

// formatValue renders a parameter for use in a URL, header or cookie.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
