package httpx

import (
	"errors"
	"net/http"
)

// HTTPStatusCoder is implemented by client errors that carry the upstream
// HTTP status.
type HTTPStatusCoder interface {
	HTTPStatusCode() int
}

// StatusCode extracts the upstream HTTP status from an error chain, or 0.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	var sc HTTPStatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatusCode()
	}
	return 0
}

// IsRateLimited reports whether the error chain carries an upstream 429.
func IsRateLimited(err error) bool {
	return StatusCode(err) == http.StatusTooManyRequests
}
