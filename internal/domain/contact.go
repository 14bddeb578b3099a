package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact provenance values for the Source column.
const (
	ContactSourceManual    = "manual"
	ContactSourceAI        = "ai"
	ContactSourceCommunity = "community"
)

type Contact struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	PhoneNumber string    `gorm:"column:phone_number;not null;index" json:"phone_number"`
	IsFavorite  bool      `gorm:"column:is_favorite;not null;default:false" json:"is_favorite"`
	IsVerified  bool      `gorm:"column:is_verified;not null;default:false" json:"is_verified"`
	IsSpam      bool      `gorm:"column:is_spam;not null;default:false" json:"is_spam"`
	Source      string    `gorm:"column:source;default:'manual'" json:"source,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Contact) TableName() string { return "contacts" }

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
