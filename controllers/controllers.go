package controllers

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/Jahnavi-74/e-learning/models"
)

var validate = validator.New()

// addPoints credits a point-earning action to the user inside tx and returns
// the user with the updated total, ready for the badge scan.
func addPoints(tx *gorm.DB, userID uint, points int) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return nil, err
	}
	user.Points += points
	if err := tx.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
