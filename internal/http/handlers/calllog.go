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

type CallLogHandler struct {
	log      *logger.Logger
	callLogs services.CallLogService
}

func NewCallLogHandler(baseLog *logger.Logger, callLogs services.CallLogService) *CallLogHandler {
	return &CallLogHandler{
		log:      baseLog.With("handler", "CallLogHandler"),
		callLogs: callLogs,
	}
}

// GET /api/call-logs
func (h *CallLogHandler) ListCallLogs(c *gin.Context) {
	limit := 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = n
	}

	logs, err := h.callLogs.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("ListCallLogs failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "load_call_logs_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"call_logs": logs})
}

// POST /api/call-logs
func (h *CallLogHandler) RecordCall(c *gin.Context) {
	var req struct {
		PhoneNumber     string `json:"phone_number"`
		CallerName      string `json:"caller_name"`
		CallType        string `json:"call_type"`
		DurationSeconds int    `json:"duration_seconds"`
		IsSpam          bool   `json:"is_spam"`
		AIHandled       bool   `json:"ai_handled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	entry, err := h.callLogs.Record(c.Request.Context(), services.RecordCallInput{
		PhoneNumber:     req.PhoneNumber,
		CallerName:      req.CallerName,
		CallType:        req.CallType,
		DurationSeconds: req.DurationSeconds,
		IsSpam:          req.IsSpam,
		AIHandled:       req.AIHandled,
	})
	if err != nil {
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "must be one of") {
			response.RespondError(c, http.StatusBadRequest, "invalid_call_log", err)
			return
		}
		h.log.Error("RecordCall failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "record_call_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"call_log": entry})
}
