package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type SaveVoiceMessageInput struct {
	CallLogID       uuid.UUID
	AudioURL        string
	Transcript      string
	Summary         string
	Language        string
	DurationSeconds int
}

type VoiceMessageService interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.VoiceMessage, error)
	Save(ctx context.Context, input SaveVoiceMessageInput) (*domain.VoiceMessage, error)
}

type voiceMessageService struct {
	db               *gorm.DB
	log              *logger.Logger
	voiceMessageRepo repos.VoiceMessageRepo
}

func NewVoiceMessageService(db *gorm.DB, baseLog *logger.Logger, voiceMessageRepo repos.VoiceMessageRepo) VoiceMessageService {
	return &voiceMessageService{
		db:               db,
		log:              baseLog.With("service", "VoiceMessageService"),
		voiceMessageRepo: voiceMessageRepo,
	}
}

func (vs *voiceMessageService) ListRecent(ctx context.Context, limit int) ([]*domain.VoiceMessage, error) {
	return vs.voiceMessageRepo.ListRecent(ctx, nil, limit)
}

func (vs *voiceMessageService) Save(ctx context.Context, input SaveVoiceMessageInput) (*domain.VoiceMessage, error) {
	if input.CallLogID == uuid.Nil {
		return nil, fmt.Errorf("call_log_id is required")
	}

	language := input.Language
	if language == "" {
		language = "en"
	}
	message := &domain.VoiceMessage{
		CallLogID:       input.CallLogID,
		AudioURL:        input.AudioURL,
		Transcript:      input.Transcript,
		Summary:         input.Summary,
		Language:        language,
		DurationSeconds: input.DurationSeconds,
	}
	created, err := vs.voiceMessageRepo.Create(ctx, nil, []*domain.VoiceMessage{message})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}
