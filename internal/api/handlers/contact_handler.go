package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/johanstjernquist/portfolio-backend/internal/models"
	"github.com/johanstjernquist/portfolio-backend/internal/service"
	"github.com/johanstjernquist/portfolio-backend/internal/validation"
)

// ============================================
// Contact Handler
// ============================================

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit - Public contact form submission
// POST /contacts
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Normalize()
	if errs := validation.Struct(&req); errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	contact, err := h.contactService.Submit(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		log.Printf("❌ [Contact] submission failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	respondData(c, http.StatusCreated, "Contact form submitted successfully", models.ContactCreatedResponse{
		ID:        contact.ID,
		CreatedAt: contact.CreatedAt,
	})
}

// List - Paginated contact listing, newest first
// GET /contacts (admin)
func (h *ContactHandler) List(c *gin.Context) {
	page := positiveIntQuery(c, "page", 1)
	limit := positiveIntQuery(c, "limit", 10)

	contacts, total, pages, err := h.contactService.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}

	response := make([]models.ContactResponse, len(contacts))
	for i, contact := range contacts {
		response[i] = toContactResponse(contact)
	}

	respondData(c, http.StatusOK, "", models.ContactListResponse{
		Contacts: response,
		Pagination: models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

// MarkRead - Idempotently flags a contact as read
// PATCH /contacts/:id/read (admin)
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	contact, err := h.contactService.MarkRead(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	respondData(c, http.StatusOK, "Contact marked as read", models.ContactReadResponse{
		ID:     contact.ID,
		IsRead: contact.IsRead,
	})
}

// Delete - Hard delete
// DELETE /contacts/:id (admin)
func (h *ContactHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.contactService.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete contact")
		return
	}

	respondData(c, http.StatusOK, "Contact deleted successfully", nil)
}

// positiveIntQuery parses a positive integer query value, falling back
// to the default on anything else.
func positiveIntQuery(c *gin.Context, key string, defaultValue int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
