package aigateway

import (
	"fmt"
	"net/http"
	"strings"
)

type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "<empty body>"
	}
	if len(msg) > 4000 {
		msg = msg[:4000] + "..."
	}
	return fmt.Sprintf("ai gateway http %d: %s", e.StatusCode, msg)
}

func (e *HTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

// RateLimitError is the upstream throttle signal, kept distinct so the
// transport layer can answer 429 with a soft apology instead of a hard
// failure.
type RateLimitError struct {
	Body string
}

func (e *RateLimitError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "rate limited"
	}
	if len(msg) > 4000 {
		msg = msg[:4000] + "..."
	}
	return fmt.Sprintf("ai gateway http 429: %s", msg)
}

func (e *RateLimitError) HTTPStatusCode() int { return http.StatusTooManyRequests }
