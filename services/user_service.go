package services

import (
	"errors"
	"strings"

	"sweatfix/config"
	"sweatfix/models"

	"gorm.io/gorm"
)

// Fixed demo identity, created lazily on the first demo login.
const (
	demoGoogleID = "demo_user"
	demoName     = "Demo User"
	demoEmail    = "demo@sweatfix.com"
	demoAvatar   = "https://picsum.photos/seed/demo/200"
)

// FindOrCreateByGoogleID returns the user for an external identity, creating
// it on first sign-in.
func FindOrCreateByGoogleID(googleID, name, email, avatar string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("google_id = ?", googleID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{GoogleID: googleID, Name: name, Email: email, Avatar: avatar}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindOrCreateDemoUser() (*models.User, error) {
	return FindOrCreateByGoogleID(demoGoogleID, demoName, demoEmail, demoAvatar)
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// UpdateUserName is the only profile mutation the dashboard offers.
func UpdateUserName(userID uint, name string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	user.Name = strings.TrimSpace(name)
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
