package aigateway

import (
	"encoding/json"
	"strings"
)

type ChatRequest struct {
	Model    string
	Messages []Message
	Tools    []Tool
}

// Tool is one function declaration offered to the model. Parameters is a
// JSON-schema object.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Message is one chat turn in OpenAI chat-completions wire shape.
type Message struct {
	Role       string            `json:"role"`
	Content    string            `json:"content,omitempty"`
	ToolCalls  []ToolCallPayload `json:"tool_calls,omitempty"`
	ToolCallID string            `json:"tool_call_id,omitempty"`
}

type ToolCallPayload struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

func SystemMessage(content string) Message {
	return Message{Role: "system", Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: "user", Content: content}
}

// ToolResultMessage is the synthetic turn feeding one executed tool result
// back to the model.
func ToolResultMessage(toolCallID string, result any) Message {
	content, err := json.Marshal(result)
	if err != nil {
		content = []byte(`{"error":"unserializable result"}`)
	}
	return Message{Role: "tool", ToolCallID: toolCallID, Content: string(content)}
}

type ChatCompletion struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Text returns the assistant's direct text output, if any.
func (c *ChatCompletion) Text() string {
	if c == nil || len(c.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(c.Choices[0].Message.Content)
}

// AssistantMessage returns the assistant turn verbatim, for replay in a
// follow-up request.
func (c *ChatCompletion) AssistantMessage() Message {
	if c == nil || len(c.Choices) == 0 {
		return Message{Role: "assistant"}
	}
	return c.Choices[0].Message
}

// ToolCall is a requested operation with its arguments decoded.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// ToolCalls decodes the requested operations in request order. Arguments
// that fail to parse decode to an empty map rather than dropping the call,
// so the executed list stays aligned with the plan.
func (c *ChatCompletion) ToolCalls() []ToolCall {
	if c == nil || len(c.Choices) == 0 {
		return nil
	}
	payloads := c.Choices[0].Message.ToolCalls
	if len(payloads) == 0 {
		return nil
	}
	out := make([]ToolCall, 0, len(payloads))
	for _, p := range payloads {
		args := map[string]any{}
		if raw := strings.TrimSpace(p.Function.Arguments); raw != "" {
			_ = json.Unmarshal([]byte(raw), &args)
		}
		out = append(out, ToolCall{
			ID:        p.ID,
			Name:      p.Function.Name,
			Arguments: args,
		})
	}
	return out
}
