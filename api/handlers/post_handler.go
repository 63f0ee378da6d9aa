package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreatePostInput DTO for creating a company post
type CreatePostInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Image   string `json:"image"`
}

// CreatePost creates a new company post.
func (h *Handler) CreatePost(c *gin.Context) {
	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.news.CreatePost(input.Title, input.Content, input.Author, input.Image)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListPosts retrieves all company posts, newest first.
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.news.ListPosts()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// DeletePost removes a company post by id.
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.news.DeletePost(id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
