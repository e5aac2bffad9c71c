// Package webclient wraps HTTP access to the scanner so the pipeline stages
// depend on a small interface instead of net/http directly.
package webclient

import "context"

type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)

	// Get is a convenience wrapper for simple GET requests.
	Get(ctx context.Context, url string) (*Response, error)

	// Post sends body with the given content type.
	Post(ctx context.Context, url, contentType string, body []byte) (*Response, error)

	Close() error
}
