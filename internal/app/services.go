package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/agent"
	"github.com/yungbote/truecall-backend/internal/callerid"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
	"github.com/yungbote/truecall-backend/internal/services"
)

type Services struct {
	Contact      services.ContactService
	CallLog      services.CallLogService
	VoiceMessage services.VoiceMessageService
	Spam         services.SpamService
	Interaction  services.InteractionService

	AgentRouter *agent.Router
	Resolver    *callerid.Resolver
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	executor := agent.NewExecutor(db, log, reposet.Contact, reposet.CallLog, reposet.Spam)

	return Services{
		Contact:      services.NewContactService(db, log, reposet.Contact),
		CallLog:      services.NewCallLogService(db, log, reposet.CallLog, reposet.Contact),
		VoiceMessage: services.NewVoiceMessageService(db, log, reposet.VoiceMessage),
		Spam:         services.NewSpamService(db, log, reposet.Spam),
		Interaction:  services.NewInteractionService(db, log, reposet.Interaction),

		AgentRouter: agent.NewRouter(db, log, clients.AIGateway, executor, reposet.Interaction),
		Resolver:    callerid.NewResolver(db, log, reposet.Contact, reposet.Spam, reposet.CallLog),
	}
}
