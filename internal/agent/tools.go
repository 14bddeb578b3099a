package agent

import (
	"fmt"
	"strings"

	"github.com/yungbote/truecall-backend/internal/clients/aigateway"
)

// ToolName enumerates the closed set of operations the assistant may invoke.
// Adding an operation means extending this list, Catalog, and
// Executor.Execute together.
type ToolName string

const (
	ToolFindContact  ToolName = "find_contact"
	ToolSaveContact  ToolName = "save_contact"
	ToolReadCallLogs ToolName = "read_call_logs"
	ToolMakeCall     ToolName = "make_call"
	ToolBlockNumber  ToolName = "block_number"
	ToolCheckSpam    ToolName = "check_spam"
)

// AllTools lists every operation in catalogue order.
func AllTools() []ToolName {
	return []ToolName{
		ToolFindContact,
		ToolSaveContact,
		ToolReadCallLogs,
		ToolMakeCall,
		ToolBlockNumber,
		ToolCheckSpam,
	}
}

// Catalog returns the operation signatures declared to the reasoning
// service.
func Catalog() []aigateway.Tool {
	return []aigateway.Tool{
		{
			Name:        string(ToolFindContact),
			Description: "Find a contact by name or phone number",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{"type": "string", "description": "Name or phone number to search"},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        string(ToolSaveContact),
			Description: "Save a new contact with name and phone number",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":         map[string]any{"type": "string", "description": "Contact name"},
					"phone_number": map[string]any{"type": "string", "description": "Phone number"},
				},
				"required": []string{"name", "phone_number"},
			},
		},
		{
			Name:        string(ToolReadCallLogs),
			Description: "Read recent call logs",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"limit": map[string]any{"type": "number", "description": "Number of logs to retrieve", "default": 5},
				},
			},
		},
		{
			Name:        string(ToolMakeCall),
			Description: "Initiate a call to a contact or number",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"number":  map[string]any{"type": "string", "description": "Phone number to call"},
					"message": map[string]any{"type": "string", "description": "Optional message to deliver"},
				},
				"required": []string{"number"},
			},
		},
		{
			Name:        string(ToolBlockNumber),
			Description: "Block a spam number",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"phone_number": map[string]any{"type": "string", "description": "Phone number to block"},
					"reason":       map[string]any{"type": "string", "description": "Reason for blocking"},
				},
				"required": []string{"phone_number"},
			},
		},
		{
			Name:        string(ToolCheckSpam),
			Description: "Check if a number is spam",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"phone_number": map[string]any{"type": "string", "description": "Phone number to check"},
				},
				"required": []string{"phone_number"},
			},
		},
	}
}

func stringArg(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	if v, ok := args[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func intArg(args map[string]any, key string, def int) int {
	if args == nil {
		return def
	}
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		var i int
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%d", &i); err == nil {
			return i
		}
	}
	return def
}
