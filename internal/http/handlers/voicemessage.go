package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/truecall-backend/internal/http/response"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
	"github.com/yungbote/truecall-backend/internal/services"
)

type VoiceMessageHandler struct {
	log           *logger.Logger
	voiceMessages services.VoiceMessageService
}

func NewVoiceMessageHandler(baseLog *logger.Logger, voiceMessages services.VoiceMessageService) *VoiceMessageHandler {
	return &VoiceMessageHandler{
		log:           baseLog.With("handler", "VoiceMessageHandler"),
		voiceMessages: voiceMessages,
	}
}

// GET /api/voice-messages
func (h *VoiceMessageHandler) ListVoiceMessages(c *gin.Context) {
	limit := 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = n
	}

	messages, err := h.voiceMessages.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("ListVoiceMessages failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "load_voice_messages_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"voice_messages": messages})
}

// POST /api/voice-messages
func (h *VoiceMessageHandler) SaveVoiceMessage(c *gin.Context) {
	var req struct {
		CallLogID       string `json:"call_log_id"`
		AudioURL        string `json:"audio_url"`
		Transcript      string `json:"transcript"`
		Summary         string `json:"summary"`
		Language        string `json:"language"`
		DurationSeconds int    `json:"duration_seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	callLogID, err := uuid.Parse(strings.TrimSpace(req.CallLogID))
	if err != nil || callLogID == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_call_log_id", err)
		return
	}

	message, err := h.voiceMessages.Save(c.Request.Context(), services.SaveVoiceMessageInput{
		CallLogID:       callLogID,
		AudioURL:        req.AudioURL,
		Transcript:      req.Transcript,
		Summary:         req.Summary,
		Language:        req.Language,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		h.log.Error("SaveVoiceMessage failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "save_voice_message_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"voice_message": message})
}
