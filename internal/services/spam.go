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

// reportScoreDelta is how much one community report raises a number's score.
const reportScoreDelta = 10

type SpamService interface {
	Report(ctx context.Context, phoneNumber, category string) (*domain.SpamRecord, error)
	Check(ctx context.Context, phoneNumber string) (*domain.SpamRecord, error)
}

type spamService struct {
	db       *gorm.DB
	log      *logger.Logger
	spamRepo repos.SpamRepo
}

func NewSpamService(db *gorm.DB, baseLog *logger.Logger, spamRepo repos.SpamRepo) SpamService {
	return &spamService{
		db:       db,
		log:      baseLog.With("service", "SpamService"),
		spamRepo: spamRepo,
	}
}

func (ss *spamService) Report(ctx context.Context, phoneNumber, category string) (*domain.SpamRecord, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, fmt.Errorf("phone_number is required")
	}
	if strings.TrimSpace(category) == "" {
		category = "community_reported"
	}
	return ss.spamRepo.Report(ctx, nil, phoneNumber, category, reportScoreDelta)
}

func (ss *spamService) Check(ctx context.Context, phoneNumber string) (*domain.SpamRecord, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, fmt.Errorf("phone_number is required")
	}
	return ss.spamRepo.GetByPhone(ctx, nil, phoneNumber)
}
