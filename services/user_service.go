package services

import (
	"errors"

	"github.com/KanannSharmaa25/ai-life-analytics/config"
	"github.com/KanannSharmaa25/ai-life-analytics/models"
)

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND is_active = ?", email, true).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or inactive")
	}

	return map[string]interface{}{
		"id":         user.ID,
		"email":      user.Email,
		"is_active":  user.IsActive,
		"created_at": user.CreatedAt.Format(dateLayout),
	}, nil
}
