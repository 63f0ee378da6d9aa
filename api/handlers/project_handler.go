package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateProjectInput DTO for creating a new project
type CreateProjectInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}

// CreateProject creates a new project with its tags.
func (h *Handler) CreateProject(c *gin.Context) {
	var input CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.catalog.CreateProject(input.Title, input.Description, input.Image, input.Tags)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListProjects retrieves all projects with their tag names.
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.catalog.ListProjects()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// DeleteProject removes a project by id.
func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteProject(id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
