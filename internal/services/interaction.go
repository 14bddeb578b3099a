package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type InteractionService interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.AIInteraction, error)
}

type interactionService struct {
	db              *gorm.DB
	log             *logger.Logger
	interactionRepo repos.InteractionRepo
}

func NewInteractionService(db *gorm.DB, baseLog *logger.Logger, interactionRepo repos.InteractionRepo) InteractionService {
	return &interactionService{
		db:              db,
		log:             baseLog.With("service", "InteractionService"),
		interactionRepo: interactionRepo,
	}
}

func (is *interactionService) ListRecent(ctx context.Context, limit int) ([]*domain.AIInteraction, error) {
	return is.interactionRepo.ListRecent(ctx, nil, limit)
}
