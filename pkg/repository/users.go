package repository

import (
	"errors"
	"strings"

	"github.com/nekoniyah/velvetdream-website-2-0/pkg/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the work factor the site has always used
const bcryptCost = 8

// UserStore owns registered community members
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a user store on an existing handle
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates a user with a bcrypt-hashed password
func (s *UserStore) Register(username, email, password string) (uint, error) {
	if strings.TrimSpace(username) == "" {
		return 0, &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if strings.TrimSpace(email) == "" {
		return 0, &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if password == "" {
		return 0, &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return 0, &StorageError{Op: "hash password", Err: err}
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return 0, &StorageError{Op: "create user", Err: err}
	}
	return user.ID, nil
}

// Authenticate checks a username/password pair and returns the user on
// success. Unknown users and wrong passwords both yield
// ErrInvalidCredentials.
func (s *UserStore) Authenticate(username, password string) (models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, &StorageError{Op: "find user", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
