package namabar

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Response is the raw result of an API call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return errors.Errorf("namabar: HTTP %d response has an empty body", r.StatusCode)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrapf(err, "namabar: decoding HTTP %d response", r.StatusCode)
	}
	return nil
}
