package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type CallLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*domain.CallLog) ([]*domain.CallLog, error)
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.CallLog, error)
	LatestNamedByPhone(ctx context.Context, tx *gorm.DB, phoneNumber string) (*domain.CallLog, error)
}

type callLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCallLogRepo(db *gorm.DB, baseLog *logger.Logger) CallLogRepo {
	repoLog := baseLog.With("repo", "CallLogRepo")
	return &callLogRepo{db: db, log: repoLog}
}

func (clr *callLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*domain.CallLog) ([]*domain.CallLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = clr.db
	}

	if len(logs) == 0 {
		return []*domain.CallLog{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}

func (clr *callLogRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.CallLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = clr.db
	}
	if limit <= 0 {
		limit = 5
	}

	var results []*domain.CallLog
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// LatestNamedByPhone returns the most recent call log for this number that
// carries a community-supplied caller name, or nil when none exists.
func (clr *callLogRepo) LatestNamedByPhone(ctx context.Context, tx *gorm.DB, phoneNumber string) (*domain.CallLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = clr.db
	}

	var result domain.CallLog
	err := transaction.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		Where("caller_name IS NOT NULL").
		Order("created_at DESC").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
