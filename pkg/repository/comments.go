package repository

import (
	"strings"

	"github.com/nekoniyah/velvetdream-website-2-0/pkg/models"
	"gorm.io/gorm"
)

// CommentStore owns the comment threads under company posts
type CommentStore struct {
	db *gorm.DB
}

// NewCommentStore creates a comment store on an existing handle
func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

// CreateComment inserts a comment under the given post and returns it
func (s *CommentStore) CreateComment(postID, userID uint, username, content string) (models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return models.Comment{}, &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if strings.TrimSpace(username) == "" {
		return models.Comment{}, &ValidationError{Field: "username", Reason: "must not be empty"}
	}

	comment := models.Comment{
		PostID:   postID,
		UserID:   userID,
		Username: username,
		Content:  content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return models.Comment{}, &StorageError{Op: "create comment", Err: err}
	}
	return comment, nil
}

// ListComments returns the comments under a post, newest first
func (s *CommentStore) ListComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, &StorageError{Op: "list comments", Err: err}
	}
	return comments, nil
}
