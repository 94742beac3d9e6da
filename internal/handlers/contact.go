package handlers

import (
	"strconv"

	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{
		contactService: services.NewContactService(db),
	}
}

// Create receives a contact form submission from the public site
// POST /api/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var req services.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"id": contact.ID, "message": "thanks for reaching out"})
}

// List returns the inbox, newest first
// GET /api/admin/contacts
func (h *ContactHandler) List(c *gin.Context) {
	var req services.ContactListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contactService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// GetByID returns a single message
// GET /api/admin/contacts/:id
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid contact id")
		return
	}

	contact, err := h.contactService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, contact)
}

// MarkRead marks a message as read. There is no inverse operation.
// PUT /api/admin/contacts/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid contact id")
		return
	}

	contact, err := h.contactService.MarkRead(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, contact)
}

// Delete removes a message from the inbox
// DELETE /api/admin/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid contact id")
		return
	}

	if err := h.contactService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "contact deleted successfully"})
}

// UnreadCount returns the unread badge counter
// GET /api/admin/contacts/unread-count
func (h *ContactHandler) UnreadCount(c *gin.Context) {
	count, err := h.contactService.UnreadCount()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"unread": count})
}
