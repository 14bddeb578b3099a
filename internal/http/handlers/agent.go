package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/truecall-backend/internal/agent"
	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/pkg/httpx"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type AgentHandler struct {
	log    *logger.Logger
	router *agent.Router
}

func NewAgentHandler(baseLog *logger.Logger, router *agent.Router) *AgentHandler {
	return &AgentHandler{
		log:    baseLog.With("handler", "AgentHandler"),
		router: router,
	}
}

// POST /api/agent/message
//
// The error payloads double as assistant replies: clients speak the
// "response" field out loud, so it stays apologetic rather than technical.
func (h *AgentHandler) HandleMessage(c *gin.Context) {
	var req struct {
		Message  string `json:"message"`
		Mode     string `json:"mode"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Invalid request body",
			"response": "I'm sorry, I couldn't understand that request.",
		})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Message is required",
			"response": "I'm sorry, I couldn't understand that request.",
		})
		return
	}

	mode := strings.TrimSpace(req.Mode)
	if mode == "" {
		mode = domain.InteractionModeAssistant
	}

	result, err := h.router.Route(c.Request.Context(), req.Message, mode, req.Language)
	if err != nil {
		if httpx.IsRateLimited(err) {
			h.log.Warn("HandleMessage rate limited", "error", err)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":    "Rate limit exceeded. Please try again later.",
				"response": "I'm a bit busy right now. Please try again in a moment.",
			})
			return
		}
		h.log.Error("HandleMessage failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    err.Error(),
			"response": "I'm sorry, I encountered an error. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
