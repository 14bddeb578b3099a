package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/truecall-backend/internal/callerid"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type CallerIDHandler struct {
	log      *logger.Logger
	resolver *callerid.Resolver
}

func NewCallerIDHandler(baseLog *logger.Logger, resolver *callerid.Resolver) *CallerIDHandler {
	return &CallerIDHandler{
		log:      baseLog.With("handler", "CallerIDHandler"),
		resolver: resolver,
	}
}

// POST /api/caller-id/lookup
func (h *CallerIDHandler) Lookup(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.PhoneNumber) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Phone number is required",
			"found": false,
		})
		return
	}

	result, err := h.resolver.Resolve(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		h.log.Error("Lookup failed", "error", err, "phone_number", req.PhoneNumber)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"found": false,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
