package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"team-portal-backend/internal/config"
	"team-portal-backend/internal/database"
	"team-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Login       string   `yaml:"login"`
	Email       string   `yaml:"email,omitempty"`
	FirstName   string   `yaml:"first_name,omitempty"`
	LastName    string   `yaml:"last_name,omitempty"`
	Authorities []string `yaml:"authorities,omitempty"`
	Activated   *bool    `yaml:"activated,omitempty"`
}

type UserProfileData struct {
	Login     string `yaml:"login"`
	Position  string `yaml:"position,omitempty"`
	Bio       string `yaml:"bio,omitempty"`
	AvatarURL string `yaml:"avatar_url,omitempty"`
}

type TeamProfileData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	GithubOrg   string   `yaml:"github_org,omitempty"`
	AvatarURL   string   `yaml:"avatar_url,omitempty"`
	Members     []string `yaml:"members,omitempty"` // user logins
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type UserProfilesFile struct {
	UserProfiles []UserProfileData `yaml:"user_profiles"`
}

type TeamProfilesFile struct {
	TeamProfiles []TeamProfileData `yaml:"team_profiles"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	userProfiles, err := loadUserProfiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load user profiles: %w", err)
	}

	teamProfiles, err := loadTeamProfiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load team profiles: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Login, err)
		}
		userMap[userData.Login] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create user profiles
	profileMap := make(map[string]*models.UserProfile)
	profileCreated := 0
	for _, profileData := range userProfiles {
		profile, created, err := createUserProfile(db, profileData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create user profile %s: %w", profileData.Login, err)
		}
		profileMap[profileData.Login] = profile
		if created {
			profileCreated++
		}
	}
	log.Printf("User profiles: %d created, %d total", profileCreated, len(userProfiles))

	// Create team profiles with memberships
	teamCreated := 0
	for _, teamData := range teamProfiles {
		_, created, err := createTeamProfile(db, teamData, profileMap)
		if err != nil {
			log.Printf("Warning: failed to create team profile %s: %v", teamData.Name, err)
			continue
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("Team profiles: %d created, %d total", teamCreated, len(teamProfiles))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") && !strings.Contains(path, "user_profiles") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadUserProfiles(dataDir string) ([]UserProfileData, error) {
	var allProfiles []UserProfileData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "user_profiles") {
			var file UserProfilesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProfiles = append(allProfiles, file.UserProfiles...)
		}
		return nil
	})

	return allProfiles, err
}

func loadTeamProfiles(dataDir string) ([]TeamProfileData, error) {
	var allTeams []TeamProfileData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "team_profiles") {
			var file TeamProfilesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.TeamProfiles...)
		}
		return nil
	})

	return allTeams, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("login = ?", userData.Login).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			authorities := userData.Authorities
			if len(authorities) == 0 {
				authorities = []string{models.RoleUser}
			}
			activated := true
			if userData.Activated != nil {
				activated = *userData.Activated
			}

			user = models.User{
				Login:       userData.Login,
				Email:       userData.Email,
				FirstName:   userData.FirstName,
				LastName:    userData.LastName,
				Authorities: authorities,
				Activated:   activated,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil
}

func createUserProfile(db *gorm.DB, profileData UserProfileData, userMap map[string]*models.User) (*models.UserProfile, bool, error) {
	user := userMap[profileData.Login]
	if user == nil {
		return nil, false, fmt.Errorf("user %s not found for profile", profileData.Login)
	}

	var profile models.UserProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			profile = models.UserProfile{
				UserID:    user.ID,
				Position:  profileData.Position,
				Bio:       profileData.Bio,
				AvatarURL: profileData.AvatarURL,
			}

			if err := db.Create(&profile).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user profile: %w", err)
			}
			return &profile, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user profile: %w", err)
	}

	return &profile, false, nil
}

func createTeamProfile(db *gorm.DB, teamData TeamProfileData, profileMap map[string]*models.UserProfile) (*models.TeamProfile, bool, error) {
	var members []models.UserProfile
	for _, login := range teamData.Members {
		profile := profileMap[login]
		if profile == nil {
			return nil, false, fmt.Errorf("user profile %s not found for team %s", login, teamData.Name)
		}
		members = append(members, *profile)
	}

	var team models.TeamProfile
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.TeamProfile{
				Name:        teamData.Name,
				Description: teamData.Description,
				GithubOrg:   teamData.GithubOrg,
				AvatarURL:   teamData.AvatarURL,
				TeamMembers: members,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team profile: %w", err)
			}
			return &team, true, nil
		}
		return nil, false, fmt.Errorf("failed to query team profile: %w", err)
	}

	// Existing team: make sure the declared members are attached
	if len(members) > 0 {
		if err := db.Model(&team).Association("TeamMembers").Replace(members); err != nil {
			return nil, false, fmt.Errorf("failed to set team members: %w", err)
		}
	}

	return &team, false, nil
}
