package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type RecordCallInput struct {
	PhoneNumber     string
	CallerName      string
	CallType        string
	DurationSeconds int
	IsSpam          bool
	AIHandled       bool
}

type CallLogService interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.CallLog, error)
	Record(ctx context.Context, input RecordCallInput) (*domain.CallLog, error)
}

type callLogService struct {
	db          *gorm.DB
	log         *logger.Logger
	callLogRepo repos.CallLogRepo
	contactRepo repos.ContactRepo
}

func NewCallLogService(db *gorm.DB, baseLog *logger.Logger, callLogRepo repos.CallLogRepo, contactRepo repos.ContactRepo) CallLogService {
	return &callLogService{
		db:          db,
		log:         baseLog.With("service", "CallLogService"),
		callLogRepo: callLogRepo,
		contactRepo: contactRepo,
	}
}

func (cls *callLogService) ListRecent(ctx context.Context, limit int) ([]*domain.CallLog, error) {
	return cls.callLogRepo.ListRecent(ctx, nil, limit)
}

func (cls *callLogService) Record(ctx context.Context, input RecordCallInput) (*domain.CallLog, error) {
	phoneNumber := strings.TrimSpace(input.PhoneNumber)
	if phoneNumber == "" {
		return nil, fmt.Errorf("phone_number is required")
	}

	callType := strings.TrimSpace(input.CallType)
	switch callType {
	case domain.CallTypeIncoming, domain.CallTypeOutgoing, domain.CallTypeMissed:
	default:
		return nil, fmt.Errorf("call_type must be one of incoming, outgoing, missed")
	}

	entry := &domain.CallLog{
		PhoneNumber:     phoneNumber,
		CallType:        callType,
		DurationSeconds: input.DurationSeconds,
		IsSpam:          input.IsSpam,
		AIHandled:       input.AIHandled,
	}
	if name := strings.TrimSpace(input.CallerName); name != "" {
		entry.CallerName = &name
	}

	// Link the entry to a saved contact when the number matches one.
	contact, err := cls.contactRepo.GetByPhone(ctx, nil, phoneNumber)
	if err != nil {
		return nil, err
	}
	if contact != nil {
		id := contact.ID
		entry.ContactID = &id
		if entry.CallerName == nil {
			name := contact.Name
			entry.CallerName = &name
		}
	}

	created, err := cls.callLogRepo.Create(ctx, nil, []*domain.CallLog{entry})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}
