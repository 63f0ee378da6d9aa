package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateContactInput DTO for the contact form
type CreateContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CreateContactMessage stores a contact form submission.
func (h *Handler) CreateContactMessage(c *gin.Context) {
	var input CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.contact.CreateMessage(input.Name, input.Email, input.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message received successfully",
		"id":      id,
	})
}

// ListContactMessages retrieves the ten newest contact messages.
func (h *Handler) ListContactMessages(c *gin.Context) {
	messages, err := h.contact.ListRecentMessages()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
