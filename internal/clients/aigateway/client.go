package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/truecall-backend/internal/platform/envutil"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

// Client is the reasoning-service boundary: one chat-completion round trip
// against any OpenAI-compatible gateway, with optional tool calling. There is
// no retry here; a transient failure is terminal for the exchange.
type Client interface {
	Complete(ctx context.Context, req ChatRequest) (*ChatCompletion, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	apiKey := envutil.FirstString("", "TRUECALL_AI_API_KEY", "LOVABLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing TRUECALL_AI_API_KEY")
	}

	baseURL := envutil.String("TRUECALL_AI_BASE_URL", "https://ai.gateway.lovable.dev")
	baseURL = strings.TrimRight(baseURL, "/")

	model := envutil.String("TRUECALL_AI_MODEL", "google/gemini-2.5-flash")

	timeoutSec := envutil.Int("TRUECALL_AI_TIMEOUT_SECONDS", 60)

	return &client{
		log:        log.With("client", "AIGatewayClient"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

// New returns a client with explicit settings, for tests and alternate
// gateways.
func New(log *logger.Logger, baseURL, apiKey, model string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &client{
		log:        log.With("client", "AIGatewayClient"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

type completionRequest struct {
	Model      string     `json:"model"`
	Messages   []Message  `json:"messages"`
	Tools      []wireTool `json:"tools,omitempty"`
	ToolChoice string     `json:"tool_choice,omitempty"`
}

type wireTool struct {
	Type     string       `json:"type"`
	Function wireFunction `json:"function"`
}

type wireFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

func (c *client) Complete(ctx context.Context, req ChatRequest) (*ChatCompletion, error) {
	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = c.model
	}

	body := completionRequest{
		Model:    model,
		Messages: req.Messages,
	}
	for _, t := range req.Tools {
		body.Tools = append(body.Tools, wireTool{
			Type: "function",
			Function: wireFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	if len(body.Tools) > 0 {
		body.ToolChoice = "auto"
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.log.Warn("Gateway rate limited", "status", resp.StatusCode)
		return nil, &RateLimitError{Body: string(raw)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("Gateway request failed", "status", resp.StatusCode)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out ChatCompletion
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("gateway decode error: %w; raw=%s", err, truncate(string(raw), 2000))
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("gateway returned no choices")
	}
	return &out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
