package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/clients/aigateway"
	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

// defaultConfidence is reported on every exchange; the gateway does not
// surface a model confidence.
const defaultConfidence = 0.9

const defaultIntent = "general_query"

// PlannedCall is one operation the model asked for, in request order.
type PlannedCall struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

// ExecutedCall pairs a planned operation with its result. The executed list
// always aligns positionally with the plan.
type ExecutedCall struct {
	Tool   string         `json:"tool"`
	Result map[string]any `json:"result"`
}

type RouteResult struct {
	Response   string         `json:"response"`
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Plan       []PlannedCall  `json:"plan"`
	Executed   []ExecutedCall `json:"tools_executed"`
	Mode       string         `json:"mode"`
}

// Router drives one assistant exchange: ask the reasoning service what to
// do, execute any requested operations strictly in order, feed the results
// back for the final phrasing, and persist the whole exchange.
type Router struct {
	db           *gorm.DB
	log          *logger.Logger
	gateway      aigateway.Client
	executor     *Executor
	interactions repos.InteractionRepo
}

func NewRouter(db *gorm.DB, baseLog *logger.Logger, gateway aigateway.Client, executor *Executor, interactions repos.InteractionRepo) *Router {
	return &Router{
		db:           db,
		log:          baseLog.With("service", "AgentRouter"),
		gateway:      gateway,
		executor:     executor,
		interactions: interactions,
	}
}

func (r *Router) Route(ctx context.Context, message, mode, language string) (*RouteResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if mode == "" {
		mode = domain.InteractionModeAssistant
	}
	if language == "" {
		language = "en"
	}

	r.log.Info("Processing agent request", "mode", mode, "language", language)

	first, err := r.gateway.Complete(ctx, aigateway.ChatRequest{
		Messages: []aigateway.Message{
			aigateway.SystemMessage(SystemPrompt),
			aigateway.UserMessage(message),
		},
		Tools: Catalog(),
	})
	if err != nil {
		// Nothing executed, nothing recorded.
		return nil, err
	}

	result := &RouteResult{
		Intent:     defaultIntent,
		Confidence: defaultConfidence,
		Plan:       []PlannedCall{},
		Executed:   []ExecutedCall{},
		Mode:       mode,
	}

	toolCalls := first.ToolCalls()
	if len(toolCalls) == 0 {
		result.Response = first.Text()
	} else {
		r.log.Info("Tool calls requested", "count", len(toolCalls))

		// Strictly sequential: later operations may depend on earlier
		// writes, and the result list must align with the plan.
		for _, call := range toolCalls {
			result.Plan = append(result.Plan, PlannedCall{Tool: call.Name, Arguments: call.Arguments})
			execResult := r.executor.Execute(ctx, call.Name, call.Arguments)
			result.Executed = append(result.Executed, ExecutedCall{Tool: call.Name, Result: execResult})
			result.Intent = call.Name
		}

		result.Response = r.finalReply(ctx, message, first, toolCalls, result.Executed)
	}

	r.record(ctx, message, mode, language, result)

	r.log.Info("Agent exchange complete", "intent", result.Intent, "tools", len(result.Executed))
	return result, nil
}

// finalReply asks the reasoning service to phrase the executed results. If
// that second call fails the operations are already committed, so the reply
// falls back to a deterministic summary instead of surfacing an error.
func (r *Router) finalReply(ctx context.Context, message string, first *aigateway.ChatCompletion, calls []aigateway.ToolCall, executed []ExecutedCall) string {
	messages := []aigateway.Message{
		aigateway.SystemMessage(SystemPrompt),
		aigateway.UserMessage(message),
		first.AssistantMessage(),
	}
	for i, call := range calls {
		messages = append(messages, aigateway.ToolResultMessage(call.ID, executed[i].Result))
	}

	final, err := r.gateway.Complete(ctx, aigateway.ChatRequest{Messages: messages})
	if err != nil {
		r.log.Warn("Final reply call failed, falling back to summary", "error", err)
		return summarizeExecuted(executed)
	}
	return final.Text()
}

// summarizeExecuted builds a plain-language reply straight from the results
// when the model cannot.
func summarizeExecuted(executed []ExecutedCall) string {
	parts := make([]string, 0, len(executed))
	for _, ec := range executed {
		if errMsg, ok := ec.Result["error"].(string); ok {
			parts = append(parts, fmt.Sprintf("%s failed: %s", ec.Tool, errMsg))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s completed", ec.Tool))
	}
	if len(parts) == 0 {
		return "Done."
	}
	return "I did the following: " + strings.Join(parts, "; ") + "."
}

// record persists the exchange. A failed insert is logged and tolerated;
// the user already has their reply and executed operations stay committed.
func (r *Router) record(ctx context.Context, message, mode, language string, result *RouteResult) {
	interaction := &domain.AIInteraction{
		UserInput:      message,
		DetectedIntent: result.Intent,
		Confidence:     result.Confidence,
		FinalResponse:  result.Response,
		Language:       language,
		Mode:           mode,
	}
	if len(result.Plan) > 0 {
		if raw, err := json.Marshal(result.Plan); err == nil {
			interaction.AIPlan = datatypes.JSON(raw)
		}
	}
	if len(result.Executed) > 0 {
		if raw, err := json.Marshal(result.Executed); err == nil {
			interaction.ToolsExecuted = datatypes.JSON(raw)
		}
	}

	if _, err := r.interactions.Create(ctx, nil, []*domain.AIInteraction{interaction}); err != nil {
		r.log.Warn("Failed to record interaction", "error", err)
	}
}
