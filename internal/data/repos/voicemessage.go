package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type VoiceMessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, messages []*domain.VoiceMessage) ([]*domain.VoiceMessage, error)
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.VoiceMessage, error)
}

type voiceMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVoiceMessageRepo(db *gorm.DB, baseLog *logger.Logger) VoiceMessageRepo {
	repoLog := baseLog.With("repo", "VoiceMessageRepo")
	return &voiceMessageRepo{db: db, log: repoLog}
}

func (vr *voiceMessageRepo) Create(ctx context.Context, tx *gorm.DB, messages []*domain.VoiceMessage) ([]*domain.VoiceMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(messages) == 0 {
		return []*domain.VoiceMessage{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}

func (vr *voiceMessageRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.VoiceMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if limit <= 0 {
		limit = 20
	}

	var results []*domain.VoiceMessage
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
