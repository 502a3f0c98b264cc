package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jahnavi-74/e-learning/config"
	"github.com/Jahnavi-74/e-learning/middleware"
	"github.com/Jahnavi-74/e-learning/models"
	"github.com/Jahnavi-74/e-learning/utils"
)

type GamifyController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewGamifyController(db *gorm.DB, cfg *config.Config) *GamifyController {
	return &GamifyController{DB: db, Cfg: cfg}
}

// GetLeaderboard godoc
// @Summary Student leaderboard
// @Description Top 20 students by points, descending
// @Tags gamify
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /api/leaderboard [get]
func (gc *GamifyController) GetLeaderboard(c *fiber.Ctx) error {
	var students []models.User
	if err := gc.DB.Where("role = ?", models.RoleStudent).
		Order("points desc").
		Order("id asc").
		Limit(20).
		Find(&students).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch leaderboard")
	}

	result := make([]fiber.Map, 0, len(students))
	for _, student := range students {
		var badgeCount int64
		gc.DB.Model(&models.UserBadge{}).Where("user_id = ?", student.ID).Count(&badgeCount)

		result = append(result, fiber.Map{
			"username": student.Username,
			"points":   student.Points,
			"badges":   badgeCount,
		})
	}

	return c.JSON(result)
}

// GetUserBadges returns the caller's earned badges with catalog details.
func (gc *GamifyController) GetUserBadges(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var userBadges []models.UserBadge
	if err := gc.DB.Preload("Badge").Where("user_id = ?", claims.UserID).Find(&userBadges).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch badges")
	}

	result := make([]fiber.Map, 0, len(userBadges))
	for _, ub := range userBadges {
		result = append(result, fiber.Map{
			"id":          ub.Badge.ID,
			"name":        ub.Badge.Name,
			"description": ub.Badge.Description,
			"icon":        ub.Badge.Icon,
			"earned_at":   ub.EarnedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(result)
}

func (gc *GamifyController) GetUserPoints(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var user models.User
	if err := gc.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	return c.JSON(fiber.Map{
		"points": user.Points,
	})
}
