// internal/interfaces/http/handlers/contact_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/contact"
)

// ContactHandler handles contact form endpoints
type ContactHandler struct {
	contacts *contact.Service
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts *contact.Service) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	msg, err := h.contacts.Submit(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Message received successfully", msg)
}

// List handles GET /contact
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contacts.List()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Messages fetched successfully", messages)
}
