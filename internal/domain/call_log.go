package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Call directions for the CallType column.
const (
	CallTypeIncoming = "incoming"
	CallTypeOutgoing = "outgoing"
	CallTypeMissed   = "missed"
)

type CallLog struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PhoneNumber     string     `gorm:"column:phone_number;not null;index" json:"phone_number"`
	CallerName      *string    `gorm:"column:caller_name" json:"caller_name,omitempty"`
	CallType        string     `gorm:"column:call_type;not null" json:"call_type"`
	DurationSeconds int        `gorm:"column:duration_seconds;not null;default:0" json:"duration_seconds"`
	IsSpam          bool       `gorm:"column:is_spam;not null;default:false" json:"is_spam"`
	AIHandled       bool       `gorm:"column:ai_handled;not null;default:false" json:"ai_handled"`
	ContactID       *uuid.UUID `gorm:"type:uuid;column:contact_id;index" json:"contact_id,omitempty"`
	Contact         *Contact   `gorm:"foreignKey:ContactID;references:ID" json:"contact,omitempty"`
	CreatedAt       time.Time  `gorm:"not null;default:now();index" json:"created_at"`
}

func (CallLog) TableName() string { return "call_logs" }

func (cl *CallLog) BeforeCreate(tx *gorm.DB) error {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return nil
}
