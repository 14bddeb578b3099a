package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type Repos struct {
	Contact      repos.ContactRepo
	CallLog      repos.CallLogRepo
	Spam         repos.SpamRepo
	VoiceMessage repos.VoiceMessageRepo
	Interaction  repos.InteractionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Contact:      repos.NewContactRepo(db, log),
		CallLog:      repos.NewCallLogRepo(db, log),
		Spam:         repos.NewSpamRepo(db, log),
		VoiceMessage: repos.NewVoiceMessageRepo(db, log),
		Interaction:  repos.NewInteractionRepo(db, log),
	}
}
