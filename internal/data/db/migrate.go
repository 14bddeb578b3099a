package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Phonebook
		&domain.Contact{},

		// Call history + attached voicemail
		&domain.CallLog{},
		&domain.VoiceMessage{},

		// Community spam registry
		&domain.SpamRecord{},

		// Assistant exchange log
		&domain.AIInteraction{},
	)
}
