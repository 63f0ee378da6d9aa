package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateCommentInput DTO for commenting on a post
type CreateCommentInput struct {
	Content  string `json:"content" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// CreateComment adds a comment under a post. Requires a logged-in user,
// enforced by the UserAuth middleware.
func (h *Handler) CreateComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.news.GetPost(postID); err != nil {
		writeError(c, err)
		return
	}

	userID := c.GetUint(userIDKey)

	comment, err := h.comments.CreateComment(postID, userID, input.Username, input.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments retrieves the comments under a post, newest first.
func (h *Handler) ListComments(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.ListComments(postID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
