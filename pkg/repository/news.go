package repository

import (
	"errors"
	"strings"

	"github.com/nekoniyah/velvetdream-website-2-0/pkg/models"
	"gorm.io/gorm"
)

// NewsStore owns the company blog posts
type NewsStore struct {
	db *gorm.DB
}

// NewNewsStore creates a news store on an existing handle
func NewNewsStore(db *gorm.DB) *NewsStore {
	return &NewsStore{db: db}
}

// CreatePost inserts a company post and returns its id
func (s *NewsStore) CreatePost(title, content, author, image string) (uint, error) {
	if strings.TrimSpace(title) == "" {
		return 0, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	post := models.CompanyPost{
		Title:   title,
		Content: content,
		Author:  author,
		Image:   image,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return 0, &StorageError{Op: "create post", Err: err}
	}
	return post.ID, nil
}

// ListPosts returns every post, newest first
func (s *NewsStore) ListPosts() ([]models.CompanyPost, error) {
	var posts []models.CompanyPost
	if err := s.db.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, &StorageError{Op: "list posts", Err: err}
	}
	return posts, nil
}

// GetPost retrieves a single post by id
func (s *NewsStore) GetPost(id uint) (models.CompanyPost, error) {
	var post models.CompanyPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CompanyPost{}, ErrNotFound
		}
		return models.CompanyPost{}, &StorageError{Op: "get post", Err: err}
	}
	return post, nil
}

// DeletePost removes a post and, via the foreign key cascade, its comments
func (s *NewsStore) DeletePost(id uint) error {
	res := s.db.Delete(&models.CompanyPost{}, id)
	if res.Error != nil {
		return &StorageError{Op: "delete post", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
