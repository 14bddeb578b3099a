package aigateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

var (
	testLogOnce sync.Once
	testLog     *logger.Logger
)

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	testLogOnce.Do(func() {
		l, err := logger.New("test")
		if err != nil {
			tb.Fatalf("failed to init logger: %v", err)
		}
		testLog = l
	})
	return testLog
}

func TestCompleteSendsWireFormat(t *testing.T) {
	t.Parallel()

	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	c := New(testLogger(t), srv.URL, "test-key", "test-model", srv.Client())
	got, err := c.Complete(context.Background(), ChatRequest{
		Messages: []Message{SystemMessage("be helpful"), UserMessage("hi")},
		Tools: []Tool{{
			Name:        "find_contact",
			Description: "Search contacts",
			Parameters:  map[string]any{"type": "object"},
		}},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got.Text() != "hello" {
		t.Fatalf("unexpected text: got=%q", got.Text())
	}

	if captured["model"] != "test-model" {
		t.Fatalf("unexpected model: %v", captured["model"])
	}
	tools, ok := captured["tools"].([]any)
	if !ok || len(tools) != 1 {
		t.Fatalf("unexpected tools payload: %v", captured["tools"])
	}
	tool := tools[0].(map[string]any)
	if tool["type"] != "function" {
		t.Fatalf("unexpected tool type: %v", tool["type"])
	}
	fn := tool["function"].(map[string]any)
	if fn["name"] != "find_contact" {
		t.Fatalf("unexpected function name: %v", fn["name"])
	}
	if captured["tool_choice"] != "auto" {
		t.Fatalf("expected tool_choice=auto when tools are offered, got %v", captured["tool_choice"])
	}
}

func TestCompleteOmitsToolChoiceWithoutTools(t *testing.T) {
	t.Parallel()

	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	c := New(testLogger(t), srv.URL, "test-key", "test-model", srv.Client())
	if _, err := c.Complete(context.Background(), ChatRequest{Messages: []Message{UserMessage("hi")}}); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if _, present := captured["tool_choice"]; present {
		t.Fatalf("tool_choice must be omitted without tools: %v", captured)
	}
}

func TestCompleteParsesToolCalls(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","tool_calls":[` +
			`{"id":"call_1","type":"function","function":{"name":"check_spam","arguments":"{\"phone_number\":\"5550001111\"}"}},` +
			`{"id":"call_2","type":"function","function":{"name":"make_call","arguments":"not json"}}` +
			`]},"finish_reason":"tool_calls"}]}`))
	}))
	defer srv.Close()

	c := New(testLogger(t), srv.URL, "test-key", "test-model", srv.Client())
	got, err := c.Complete(context.Background(), ChatRequest{Messages: []Message{UserMessage("check it")}})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	calls := got.ToolCalls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 tool calls, got %d", len(calls))
	}
	if calls[0].Name != "check_spam" {
		t.Fatalf("unexpected name: got=%q", calls[0].Name)
	}
	if calls[0].Arguments["phone_number"] != "5550001111" {
		t.Fatalf("unexpected arguments: %v", calls[0].Arguments)
	}
	// Unparseable arguments keep the call in place with empty arguments so
	// positional alignment survives.
	if calls[1].Name != "make_call" || len(calls[1].Arguments) != 0 {
		t.Fatalf("unexpected second call: %+v", calls[1])
	}
}

func TestCompleteRateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slow down"}`))
	}))
	defer srv.Close()

	c := New(testLogger(t), srv.URL, "test-key", "test-model", srv.Client())
	_, err := c.Complete(context.Background(), ChatRequest{Messages: []Message{UserMessage("hi")}})
	if err == nil {
		t.Fatalf("expected error")
	}
	var rle *RateLimitError
	if !errors.As(err, &rle) {
		t.Fatalf("expected RateLimitError, got %T: %v", err, err)
	}
	if rle.HTTPStatusCode() != http.StatusTooManyRequests {
		t.Fatalf("unexpected status: %d", rle.HTTPStatusCode())
	}
}

func TestCompleteUpstreamFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(testLogger(t), srv.URL, "test-key", "test-model", srv.Client())
	_, err := c.Complete(context.Background(), ChatRequest{Messages: []Message{UserMessage("hi")}})
	if err == nil {
		t.Fatalf("expected error")
	}
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %T: %v", err, err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", httpErr.StatusCode)
	}
}

func TestCompleteRejectsEmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := New(testLogger(t), srv.URL, "test-key", "test-model", srv.Client())
	if _, err := c.Complete(context.Background(), ChatRequest{Messages: []Message{UserMessage("hi")}}); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}
