package services

import (
	"errors"

	"github.com/KanannSharmaa25/ai-life-analytics/config"
	"github.com/KanannSharmaa25/ai-life-analytics/models"
	"github.com/KanannSharmaa25/ai-life-analytics/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailExists        = errors.New("Email exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)

func RegisterUser(email, password string) error {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:          email,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}
	return config.DB.Create(&user).Error
}

// AuthenticateUser verifies the credentials and returns the user together
// with a signed token for the protected profile routes.
func AuthenticateUser(email, password string) (*models.User, string, error) {
	var user models.User
	if err := config.DB.Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}
