package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type SpamRepo interface {
	GetByPhone(ctx context.Context, tx *gorm.DB, phoneNumber string) (*domain.SpamRecord, error)
	Upsert(ctx context.Context, tx *gorm.DB, record *domain.SpamRecord) (*domain.SpamRecord, error)
	Report(ctx context.Context, tx *gorm.DB, phoneNumber, category string, scoreDelta int) (*domain.SpamRecord, error)
}

type spamRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSpamRepo(db *gorm.DB, baseLog *logger.Logger) SpamRepo {
	repoLog := baseLog.With("repo", "SpamRepo")
	return &spamRepo{db: db, log: repoLog}
}

// GetByPhone returns the registry entry for this exact number, or nil when
// none exists.
func (sr *spamRepo) GetByPhone(ctx context.Context, tx *gorm.DB, phoneNumber string) (*domain.SpamRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result domain.SpamRecord
	err := transaction.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// Upsert writes the record keyed on phone_number, replacing score and
// category on conflict.
func (sr *spamRepo) Upsert(ctx context.Context, tx *gorm.DB, record *domain.SpamRecord) (*domain.SpamRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"spam_score", "category", "updated_at"}),
		}).
		Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Report records one community spam report: report_count is incremented and
// the score raised by scoreDelta, capped at the scale ceiling.
func (sr *spamRepo) Report(ctx context.Context, tx *gorm.DB, phoneNumber, category string, scoreDelta int) (*domain.SpamRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	existing, err := sr.GetByPhone(ctx, transaction, phoneNumber)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		record := &domain.SpamRecord{
			PhoneNumber: phoneNumber,
			SpamScore:   clampScore(scoreDelta),
			Category:    category,
			ReportCount: 1,
		}
		if err := transaction.WithContext(ctx).Create(record).Error; err != nil {
			return nil, err
		}
		return record, nil
	}

	existing.ReportCount++
	existing.SpamScore = clampScore(existing.SpamScore + scoreDelta)
	if category != "" {
		existing.Category = category
	}
	if err := transaction.WithContext(ctx).
		Model(&domain.SpamRecord{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"report_count": existing.ReportCount,
			"spam_score":   existing.SpamScore,
			"category":     existing.Category,
		}).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > domain.SpamScoreMax {
		return domain.SpamScoreMax
	}
	return score
}
