package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/truecall-backend/internal/http/response"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
	"github.com/yungbote/truecall-backend/internal/services"
)

type SpamHandler struct {
	log  *logger.Logger
	spam services.SpamService
}

func NewSpamHandler(baseLog *logger.Logger, spam services.SpamService) *SpamHandler {
	return &SpamHandler{
		log:  baseLog.With("handler", "SpamHandler"),
		spam: spam,
	}
}

// POST /api/spam/report
func (h *SpamHandler) ReportNumber(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number"`
		Category    string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.PhoneNumber) == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	record, err := h.spam.Report(c.Request.Context(), req.PhoneNumber, req.Category)
	if err != nil {
		h.log.Error("ReportNumber failed", "error", err, "phone_number", req.PhoneNumber)
		response.RespondError(c, http.StatusInternalServerError, "report_spam_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"spam_record": record})
}
