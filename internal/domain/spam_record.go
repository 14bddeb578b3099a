package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpamScoreMax is the ceiling of the 0-100 community spam scale. Numbers
// blocked by a user are pinned here.
const SpamScoreMax = 100

type SpamRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PhoneNumber string    `gorm:"column:phone_number;not null;uniqueIndex" json:"phone_number"`
	SpamScore   int       `gorm:"column:spam_score;not null;default:0" json:"spam_score"`
	Category    string    `gorm:"column:category" json:"category,omitempty"`
	ReportCount int       `gorm:"column:report_count;not null;default:0" json:"report_count"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (SpamRecord) TableName() string { return "spam_database" }

func (s *SpamRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
