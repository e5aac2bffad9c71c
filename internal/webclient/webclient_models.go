package webclient

import (
	"net/http"
	"strings"
	"time"
)

type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

type Response struct {
	Request    *Request
	Headers    http.Header
	Body       []byte
	StatusCode int
	FetchedAt  time.Time
}

// ContentType returns the media type of the response without parameters.
func (r *Response) ContentType() string {
	ct, _, _ := strings.Cut(r.Headers.Get("Content-Type"), ";")
	return strings.TrimSpace(ct)
}

// Location returns the Location header, empty if absent.
func (r *Response) Location() string {
	return r.Headers.Get("Location")
}
