package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/truecall-backend/internal/http/handlers"
	httpMW "github.com/yungbote/truecall-backend/internal/http/middleware"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AgentHandler        *httpH.AgentHandler
	CallerIDHandler     *httpH.CallerIDHandler
	ContactHandler      *httpH.ContactHandler
	CallLogHandler      *httpH.CallLogHandler
	VoiceMessageHandler *httpH.VoiceMessageHandler
	InteractionHandler  *httpH.InteractionHandler
	SpamHandler         *httpH.SpamHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("truecall-backend"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Agent
		if cfg.AgentHandler != nil {
			api.POST("/agent/message", cfg.AgentHandler.HandleMessage)
		}

		// Caller ID
		if cfg.CallerIDHandler != nil {
			api.POST("/caller-id/lookup", cfg.CallerIDHandler.Lookup)
		}

		// Contacts
		if cfg.ContactHandler != nil {
			api.GET("/contacts", cfg.ContactHandler.ListContacts)
			api.POST("/contacts", cfg.ContactHandler.CreateContact)
			api.POST("/contacts/:id/favorite", cfg.ContactHandler.SetFavorite)
		}

		// Call logs
		if cfg.CallLogHandler != nil {
			api.GET("/call-logs", cfg.CallLogHandler.ListCallLogs)
			api.POST("/call-logs", cfg.CallLogHandler.RecordCall)
		}

		// Voice messages
		if cfg.VoiceMessageHandler != nil {
			api.GET("/voice-messages", cfg.VoiceMessageHandler.ListVoiceMessages)
			api.POST("/voice-messages", cfg.VoiceMessageHandler.SaveVoiceMessage)
		}

		// Interactions
		if cfg.InteractionHandler != nil {
			api.GET("/interactions", cfg.InteractionHandler.ListInteractions)
		}

		// Spam
		if cfg.SpamHandler != nil {
			api.POST("/spam/report", cfg.SpamHandler.ReportNumber)
		}
	}

	return r
}
