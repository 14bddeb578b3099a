package agent

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

// Executor performs one requested operation against the store. A failed
// read or write is folded into the result as {error: ...} and handed back
// to the reasoning service as a tool result, so the model can phrase the
// failure to the user; nothing is retried.
type Executor struct {
	db       *gorm.DB
	log      *logger.Logger
	contacts repos.ContactRepo
	callLogs repos.CallLogRepo
	spam     repos.SpamRepo
}

func NewExecutor(db *gorm.DB, baseLog *logger.Logger, contacts repos.ContactRepo, callLogs repos.CallLogRepo, spam repos.SpamRepo) *Executor {
	return &Executor{
		db:       db,
		log:      baseLog.With("service", "AgentExecutor"),
		contacts: contacts,
		callLogs: callLogs,
		spam:     spam,
	}
}

func (e *Executor) Execute(ctx context.Context, name string, args map[string]any) map[string]any {
	switch ToolName(name) {
	case ToolFindContact:
		return e.findContact(ctx, args)
	case ToolSaveContact:
		return e.saveContact(ctx, args)
	case ToolReadCallLogs:
		return e.readCallLogs(ctx, args)
	case ToolMakeCall:
		return e.makeCall(args)
	case ToolBlockNumber:
		return e.blockNumber(ctx, args)
	case ToolCheckSpam:
		return e.checkSpam(ctx, args)
	default:
		e.log.Warn("Unsupported tool requested", "tool", name)
		return map[string]any{"error": fmt.Sprintf("unsupported tool: %s", name)}
	}
}

func (e *Executor) findContact(ctx context.Context, args map[string]any) map[string]any {
	query := stringArg(args, "query")
	if query == "" {
		return map[string]any{"error": "query is required"}
	}

	contacts, err := e.contacts.Search(ctx, nil, query, 5)
	if err != nil {
		e.log.Warn("Contact search failed", "error", err)
		return map[string]any{"error": err.Error()}
	}
	if contacts == nil {
		contacts = []*domain.Contact{}
	}
	return map[string]any{
		"contacts": contacts,
		"found":    len(contacts) > 0,
	}
}

func (e *Executor) saveContact(ctx context.Context, args map[string]any) map[string]any {
	name := stringArg(args, "name")
	phoneNumber := stringArg(args, "phone_number")
	if name == "" || phoneNumber == "" {
		return map[string]any{"error": "name and phone_number are required"}
	}

	contact := &domain.Contact{
		Name:        name,
		PhoneNumber: phoneNumber,
		Source:      domain.ContactSourceAI,
	}
	saved, err := e.contacts.Create(ctx, nil, []*domain.Contact{contact})
	if err != nil {
		e.log.Warn("Contact save failed", "error", err)
		return map[string]any{"error": err.Error()}
	}
	return map[string]any{
		"saved":   true,
		"contact": saved[0],
	}
}

func (e *Executor) readCallLogs(ctx context.Context, args map[string]any) map[string]any {
	limit := intArg(args, "limit", 5)

	logs, err := e.callLogs.ListRecent(ctx, nil, limit)
	if err != nil {
		e.log.Warn("Call log read failed", "error", err)
		return map[string]any{"error": err.Error()}
	}
	if logs == nil {
		logs = []*domain.CallLog{}
	}
	return map[string]any{"logs": logs}
}

// makeCall has no real telephony side effect; the acknowledgment is handed
// to the device, which places the call natively.
func (e *Executor) makeCall(args map[string]any) map[string]any {
	number := stringArg(args, "number")
	if number == "" {
		return map[string]any{"error": "number is required"}
	}
	return map[string]any{
		"status":  "initiated",
		"number":  number,
		"message": stringArg(args, "message"),
		"action":  "CALL_INITIATED",
	}
}

func (e *Executor) blockNumber(ctx context.Context, args map[string]any) map[string]any {
	phoneNumber := stringArg(args, "phone_number")
	if phoneNumber == "" {
		return map[string]any{"error": "phone_number is required"}
	}

	category := stringArg(args, "reason")
	if category == "" {
		category = "user_blocked"
	}
	record := &domain.SpamRecord{
		PhoneNumber: phoneNumber,
		SpamScore:   domain.SpamScoreMax,
		Category:    category,
	}
	if _, err := e.spam.Upsert(ctx, nil, record); err != nil {
		e.log.Warn("Block number failed", "error", err)
		return map[string]any{"error": err.Error()}
	}
	return map[string]any{"blocked": true}
}

func (e *Executor) checkSpam(ctx context.Context, args map[string]any) map[string]any {
	phoneNumber := stringArg(args, "phone_number")
	if phoneNumber == "" {
		return map[string]any{"error": "phone_number is required"}
	}

	record, err := e.spam.GetByPhone(ctx, nil, phoneNumber)
	if err != nil {
		e.log.Warn("Spam check failed", "error", err)
		return map[string]any{"error": err.Error()}
	}
	if record == nil {
		return map[string]any{
			"is_spam":    false,
			"spam_score": 0,
			"category":   "",
		}
	}
	return map[string]any{
		"is_spam":    true,
		"spam_score": record.SpamScore,
		"category":   record.Category,
	}
}
