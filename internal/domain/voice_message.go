package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoiceMessage struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CallLogID       uuid.UUID `gorm:"type:uuid;column:call_log_id;not null;index" json:"call_log_id"`
	CallLog         *CallLog  `gorm:"foreignKey:CallLogID;references:ID" json:"call_log,omitempty"`
	AudioURL        string    `gorm:"column:audio_url" json:"audio_url,omitempty"`
	Transcript      string    `gorm:"column:transcript" json:"transcript,omitempty"`
	Summary         string    `gorm:"column:summary" json:"summary,omitempty"`
	Language        string    `gorm:"column:language;default:'en'" json:"language,omitempty"`
	DurationSeconds int       `gorm:"column:duration_seconds;not null;default:0" json:"duration_seconds"`
	CreatedAt       time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (VoiceMessage) TableName() string { return "voice_messages" }

func (vm *VoiceMessage) BeforeCreate(tx *gorm.DB) error {
	if vm.ID == uuid.Nil {
		vm.ID = uuid.New()
	}
	return nil
}
