package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/truecall-backend/internal/http/response"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
	"github.com/yungbote/truecall-backend/internal/services"
)

type InteractionHandler struct {
	log          *logger.Logger
	interactions services.InteractionService
}

func NewInteractionHandler(baseLog *logger.Logger, interactions services.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		log:          baseLog.With("handler", "InteractionHandler"),
		interactions: interactions,
	}
}

// GET /api/interactions
func (h *InteractionHandler) ListInteractions(c *gin.Context) {
	limit := 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = n
	}

	interactions, err := h.interactions.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("ListInteractions failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "load_interactions_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"interactions": interactions})
}
