package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/agent"
	"github.com/yungbote/truecall-backend/internal/clients/aigateway"
	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/data/repos/testutil"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

var (
	ginModeOnce sync.Once
)

func setGinTestMode() {
	ginModeOnce.Do(func() { gin.SetMode(gin.TestMode) })
}

type stubGateway struct {
	completion *aigateway.ChatCompletion
	err        error
}

func (s *stubGateway) Complete(context.Context, aigateway.ChatRequest) (*aigateway.ChatCompletion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.completion, nil
}

func newAgentRouterForTest(t *testing.T, gateway aigateway.Client) (*agent.Router, *gorm.DB, *logger.Logger) {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	exec := agent.NewExecutor(
		gdb,
		log,
		repos.NewContactRepo(gdb, log),
		repos.NewCallLogRepo(gdb, log),
		repos.NewSpamRepo(gdb, log),
	)
	return agent.NewRouter(gdb, log, gateway, exec, repos.NewInteractionRepo(gdb, log)), gdb, log
}

func newAgentEngine(t *testing.T, gateway aigateway.Client) *gin.Engine {
	t.Helper()
	setGinTestMode()
	router, _, log := newAgentRouterForTest(t, gateway)
	h := NewAgentHandler(log, router)
	r := gin.New()
	r.POST("/api/agent/message", h.HandleMessage)
	return r
}

func TestHandleMessageOK(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{completion: &aigateway.ChatCompletion{
		Choices: []aigateway.Choice{{
			Message: aigateway.Message{Role: "assistant", Content: "Hello!"},
		}},
	}}
	r := newAgentEngine(t, gw)

	req := httptest.NewRequest(http.MethodPost, "/api/agent/message", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var body struct {
		Response      string           `json:"response"`
		Intent        string           `json:"intent"`
		Confidence    float64          `json:"confidence"`
		Plan          []map[string]any `json:"plan"`
		ToolsExecuted []map[string]any `json:"tools_executed"`
		Mode          string           `json:"mode"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Response != "Hello!" {
		t.Fatalf("unexpected response: got=%q", body.Response)
	}
	if body.Intent != "general_query" || body.Confidence != 0.9 {
		t.Fatalf("unexpected intent/confidence: %q/%v", body.Intent, body.Confidence)
	}
	if body.Plan == nil || body.ToolsExecuted == nil {
		t.Fatalf("plan and tools_executed must serialize as arrays: %s", rec.Body.String())
	}
	if body.Mode != "assistant" {
		t.Fatalf("unexpected mode: got=%q", body.Mode)
	}
}

func TestHandleMessageRequiresMessage(t *testing.T) {
	t.Parallel()

	r := newAgentEngine(t, &stubGateway{})

	for _, payload := range []string{`{}`, `{"message":"   "}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/agent/message", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: unexpected status: got=%d want=%d", payload, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestHandleMessageRateLimited(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{err: &aigateway.RateLimitError{Body: "slow down"}}
	r := newAgentEngine(t, gw)

	req := httptest.NewRequest(http.MethodPost, "/api/agent/message", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusTooManyRequests)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Rate limit exceeded. Please try again later." {
		t.Fatalf("unexpected error text: %q", body["error"])
	}
	if body["response"] != "I'm a bit busy right now. Please try again in a moment." {
		t.Fatalf("unexpected response text: %q", body["response"])
	}
}

func TestHandleMessageGatewayFailure(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{err: &aigateway.HTTPError{StatusCode: http.StatusBadGateway, Body: "boom"}}
	r := newAgentEngine(t, gw)

	req := httptest.NewRequest(http.MethodPost, "/api/agent/message", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["response"] != "I'm sorry, I encountered an error. Please try again." {
		t.Fatalf("unexpected response text: %q", body["response"])
	}
}
