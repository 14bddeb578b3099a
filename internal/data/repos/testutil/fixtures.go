package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/domain"
)

func SeedContact(tb testing.TB, ctx context.Context, tx *gorm.DB, name, phoneNumber string) *domain.Contact {
	tb.Helper()
	c := &domain.Contact{
		ID:          uuid.New(),
		Name:        name,
		PhoneNumber: phoneNumber,
		Source:      domain.ContactSourceManual,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed contact: %v", err)
	}
	return c
}

func SeedCallLog(tb testing.TB, ctx context.Context, tx *gorm.DB, phoneNumber string, callerName *string, createdAt time.Time) *domain.CallLog {
	tb.Helper()
	cl := &domain.CallLog{
		ID:          uuid.New(),
		PhoneNumber: phoneNumber,
		CallerName:  callerName,
		CallType:    domain.CallTypeIncoming,
		CreatedAt:   createdAt,
	}
	if err := tx.WithContext(ctx).Create(cl).Error; err != nil {
		tb.Fatalf("seed call log: %v", err)
	}
	return cl
}

func SeedSpamRecord(tb testing.TB, ctx context.Context, tx *gorm.DB, phoneNumber string, score int, category string) *domain.SpamRecord {
	tb.Helper()
	s := &domain.SpamRecord{
		ID:          uuid.New(),
		PhoneNumber: phoneNumber,
		SpamScore:   score,
		Category:    category,
		ReportCount: 1,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed spam record: %v", err)
	}
	return s
}

func SeedVoiceMessage(tb testing.TB, ctx context.Context, tx *gorm.DB, callLogID uuid.UUID, transcript string) *domain.VoiceMessage {
	tb.Helper()
	vm := &domain.VoiceMessage{
		ID:         uuid.New(),
		CallLogID:  callLogID,
		Transcript: transcript,
		Language:   "en",
	}
	if err := tx.WithContext(ctx).Create(vm).Error; err != nil {
		tb.Fatalf("seed voice message: %v", err)
	}
	return vm
}

func StrPtr(s string) *string { return &s }
