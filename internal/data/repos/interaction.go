package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

// InteractionRepo is append-only: exchange records are never updated or
// deleted here.
type InteractionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, interactions []*domain.AIInteraction) ([]*domain.AIInteraction, error)
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.AIInteraction, error)
}

type interactionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInteractionRepo(db *gorm.DB, baseLog *logger.Logger) InteractionRepo {
	repoLog := baseLog.With("repo", "InteractionRepo")
	return &interactionRepo{db: db, log: repoLog}
}

func (ir *interactionRepo) Create(ctx context.Context, tx *gorm.DB, interactions []*domain.AIInteraction) ([]*domain.AIInteraction, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	if len(interactions) == 0 {
		return []*domain.AIInteraction{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&interactions).Error; err != nil {
		return nil, err
	}

	return interactions, nil
}

func (ir *interactionRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.AIInteraction, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if limit <= 0 {
		limit = 20
	}

	var results []*domain.AIInteraction
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
