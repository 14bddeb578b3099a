package httpx

import (
	"fmt"
	"net/http"
	"testing"
)

type codedError struct {
	code int
}

func (e *codedError) Error() string       { return fmt.Sprintf("http %d", e.code) }
func (e *codedError) HTTPStatusCode() int { return e.code }

func TestStatusCode(t *testing.T) {
	t.Parallel()

	if got := StatusCode(nil); got != 0 {
		t.Fatalf("nil error: got=%d want=0", got)
	}
	if got := StatusCode(fmt.Errorf("plain")); got != 0 {
		t.Fatalf("plain error: got=%d want=0", got)
	}
	if got := StatusCode(&codedError{code: 502}); got != 502 {
		t.Fatalf("coded error: got=%d want=502", got)
	}

	wrapped := fmt.Errorf("outer: %w", &codedError{code: 429})
	if got := StatusCode(wrapped); got != 429 {
		t.Fatalf("wrapped error: got=%d want=429", got)
	}
}

func TestIsRateLimited(t *testing.T) {
	t.Parallel()

	if !IsRateLimited(&codedError{code: http.StatusTooManyRequests}) {
		t.Fatalf("429 should report rate limited")
	}
	if IsRateLimited(&codedError{code: http.StatusBadGateway}) {
		t.Fatalf("502 should not report rate limited")
	}
	if IsRateLimited(nil) {
		t.Fatalf("nil should not report rate limited")
	}
}
