package repository

import (
	"team-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(id int64) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByLogin retrieves a user by login
func (r *UserRepository) FindByLogin(login string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "login = ?", login).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Save persists all fields of an existing user
func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete deletes a user by ID
func (r *UserRepository) Delete(id int64) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
