package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/http/response"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
	"github.com/yungbote/truecall-backend/internal/services"
)

type ContactHandler struct {
	log      *logger.Logger
	contacts services.ContactService
}

func NewContactHandler(baseLog *logger.Logger, contacts services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:      baseLog.With("handler", "ContactHandler"),
		contacts: contacts,
	}
}

// GET /api/contacts
func (h *ContactHandler) ListContacts(c *gin.Context) {
	limit := 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = n
	}

	contacts, err := h.contacts.List(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		h.log.Error("ListContacts failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "load_contacts_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"contacts": contacts})
}

// POST /api/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phone_number"`
		IsFavorite  bool   `json:"is_favorite"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	contact, err := h.contacts.Create(c.Request.Context(), req.Name, req.PhoneNumber, req.IsFavorite)
	if err != nil {
		if strings.Contains(err.Error(), "required") {
			response.RespondError(c, http.StatusBadRequest, "invalid_contact", err)
			return
		}
		h.log.Error("CreateContact failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "create_contact_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"contact": contact})
}

// POST /api/contacts/:id/favorite
func (h *ContactHandler) SetFavorite(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil || contactID == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_contact_id", err)
		return
	}

	var req struct {
		IsFavorite bool `json:"is_favorite"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	if err := h.contacts.SetFavorite(c.Request.Context(), contactID, req.IsFavorite); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.RespondError(c, http.StatusNotFound, "contact_not_found", err)
			return
		}
		h.log.Error("SetFavorite failed", "error", err, "contact_id", contactID)
		response.RespondError(c, http.StatusInternalServerError, "set_favorite_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
