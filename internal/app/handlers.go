package app

import (
	httpH "github.com/yungbote/truecall-backend/internal/http/handlers"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type Handlers struct {
	Agent        *httpH.AgentHandler
	CallerID     *httpH.CallerIDHandler
	Contact      *httpH.ContactHandler
	CallLog      *httpH.CallLogHandler
	VoiceMessage *httpH.VoiceMessageHandler
	Interaction  *httpH.InteractionHandler
	Spam         *httpH.SpamHandler
	Health       *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Agent:        httpH.NewAgentHandler(log, serviceset.AgentRouter),
		CallerID:     httpH.NewCallerIDHandler(log, serviceset.Resolver),
		Contact:      httpH.NewContactHandler(log, serviceset.Contact),
		CallLog:      httpH.NewCallLogHandler(log, serviceset.CallLog),
		VoiceMessage: httpH.NewVoiceMessageHandler(log, serviceset.VoiceMessage),
		Interaction:  httpH.NewInteractionHandler(log, serviceset.Interaction),
		Spam:         httpH.NewSpamHandler(log, serviceset.Spam),
		Health:       httpH.NewHealthHandler(),
	}
}
