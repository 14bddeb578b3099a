package app

import (
	"github.com/gin-gonic/gin"

	apiHTTP "github.com/yungbote/truecall-backend/internal/http"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlerset Handlers) *gin.Engine {
	log.Info("Wiring router...")
	return apiHTTP.NewRouter(apiHTTP.RouterConfig{
		Log: log,

		AgentHandler:        handlerset.Agent,
		CallerIDHandler:     handlerset.CallerID,
		ContactHandler:      handlerset.Contact,
		CallLogHandler:      handlerset.CallLog,
		VoiceMessageHandler: handlerset.VoiceMessage,
		InteractionHandler:  handlerset.Interaction,
		SpamHandler:         handlerset.Spam,

		HealthHandler: handlerset.Health,
	})
}
