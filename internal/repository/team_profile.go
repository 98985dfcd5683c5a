package repository

import (
	"team-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamProfileRepository handles database operations for team profiles
type TeamProfileRepository struct {
	db *gorm.DB
}

// NewTeamProfileRepository creates a new team profile repository
func NewTeamProfileRepository(db *gorm.DB) *TeamProfileRepository {
	return &TeamProfileRepository{db: db}
}

// Create creates a new team profile; the database assigns the ID
func (r *TeamProfileRepository) Create(profile *models.TeamProfile) error {
	return r.db.Create(profile).Error
}

// FindByID retrieves a team profile by ID without associations
func (r *TeamProfileRepository) FindByID(id int64) (*models.TeamProfile, error) {
	var profile models.TeamProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindWithMembers retrieves a team profile with its members and their users
// preloaded. Used both for reads and for the membership authorization check.
func (r *TeamProfileRepository) FindWithMembers(id int64) (*models.TeamProfile, error) {
	var profile models.TeamProfile
	err := r.db.Preload("TeamMembers").Preload("TeamMembers.User").First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindAll retrieves all team profiles with members, in store order
func (r *TeamProfileRepository) FindAll() ([]models.TeamProfile, error) {
	var profiles []models.TeamProfile
	err := r.db.Preload("TeamMembers").Preload("TeamMembers.User").Find(&profiles).Error
	return profiles, err
}

// ExistsByID checks if a team profile exists by ID
func (r *TeamProfileRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamProfile{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Save persists all fields of an existing team profile
func (r *TeamProfileRepository) Save(profile *models.TeamProfile) error {
	return r.db.Save(profile).Error
}

// Delete deletes a team profile by ID. Deleting an absent ID is not an error.
func (r *TeamProfileRepository) Delete(id int64) error {
	return r.db.Select("TeamMembers").Delete(&models.TeamProfile{BaseModel: models.BaseModel{ID: id}}).Error
}

// ReplaceMembers replaces the member association set of a team profile
func (r *TeamProfileRepository) ReplaceMembers(profile *models.TeamProfile, members []models.UserProfile) error {
	return r.db.Model(profile).Association("TeamMembers").Replace(members)
}
