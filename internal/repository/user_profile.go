package repository

import (
	"team-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserProfileRepository handles database operations for user profiles
type UserProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new user profile repository
func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

// Create creates a new user profile
func (r *UserProfileRepository) Create(profile *models.UserProfile) error {
	return r.db.Create(profile).Error
}

// FindByID retrieves a user profile by ID with its user preloaded
func (r *UserProfileRepository) FindByID(id int64) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Preload("User").First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserLogin retrieves a user profile by the linked user's login
func (r *UserProfileRepository) FindByUserLogin(login string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Preload("User").
		Joins("JOIN users ON users.id = user_profiles.user_id").
		Where("users.login = ?", login).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindAll retrieves all user profiles with their users
func (r *UserProfileRepository) FindAll() ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := r.db.Preload("User").Find(&profiles).Error
	return profiles, err
}

// Save persists all fields of an existing user profile
func (r *UserProfileRepository) Save(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}

// Delete deletes a user profile by ID
func (r *UserProfileRepository) Delete(id int64) error {
	return r.db.Delete(&models.UserProfile{}, "id = ?", id).Error
}
