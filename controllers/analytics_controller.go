package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jahnavi-74/e-learning/config"
	"github.com/Jahnavi-74/e-learning/middleware"
	"github.com/Jahnavi-74/e-learning/models"
	"github.com/Jahnavi-74/e-learning/utils"
)

type AnalyticsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config) *AnalyticsController {
	return &AnalyticsController{DB: db, Cfg: cfg}
}

// GetClassAnalytics aggregates enrollment, attendance and per-quiz accuracy
// for one class. Teacher-only.
func (ac *AnalyticsController) GetClassAnalytics(c *fiber.Ctx) error {
	classID, err := strconv.Atoi(c.Params("class_id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	var class models.OnlineClass
	if err := ac.DB.First(&class, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Class not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var enrollments []models.ClassEnrollment
	ac.DB.Where("class_id = ?", classID).Find(&enrollments)
	var quizzes []models.Quiz
	ac.DB.Where("class_id = ?", classID).Find(&quizzes)
	var pollCount, challengeCount int64
	ac.DB.Model(&models.Poll{}).Where("class_id = ?", classID).Count(&pollCount)
	ac.DB.Model(&models.Challenge{}).Where("class_id = ?", classID).Count(&challengeCount)

	averageAttendance := 0.0
	if len(enrollments) > 0 {
		total := 0
		for _, e := range enrollments {
			total += e.AttendanceCount
		}
		averageAttendance = float64(total) / float64(len(enrollments))
	}

	quizParticipation := fiber.Map{}
	for _, quiz := range quizzes {
		var responses []models.QuizResponse
		ac.DB.Where("quiz_id = ?", quiz.ID).Find(&responses)

		correct := 0
		for _, r := range responses {
			if r.IsCorrect {
				correct++
			}
		}
		accuracy := 0.0
		if len(responses) > 0 {
			accuracy = float64(correct) / float64(len(responses)) * 100
		}
		quizParticipation[fmt.Sprint(quiz.ID)] = fiber.Map{
			"total_responses":   len(responses),
			"correct_responses": correct,
			"accuracy":          accuracy,
		}
	}

	return c.JSON(fiber.Map{
		"total_students":     len(enrollments),
		"total_quizzes":      len(quizzes),
		"total_polls":        pollCount,
		"total_challenges":   challengeCount,
		"average_attendance": averageAttendance,
		"quiz_participation": quizParticipation,
	})
}

// GetRecommendations builds the rule-based suggestion list for the caller.
func (ac *AnalyticsController) GetRecommendations(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	recommendations := []string{}

	if user.Role == models.RoleStudent {
		var responses []models.QuizResponse
		ac.DB.Where("user_id = ?", user.ID).Find(&responses)

		correct := 0
		for _, r := range responses {
			if r.IsCorrect {
				correct++
			}
		}
		accuracy := 0.0
		if len(responses) > 0 {
			accuracy = float64(correct) / float64(len(responses)) * 100
		}

		if accuracy < 70 {
			recommendations = append(recommendations, "Focus on reviewing quiz questions to improve your accuracy")
		}
		if user.Points < 100 {
			recommendations = append(recommendations, "Participate in more activities to earn points and badges")
		}

		var enrollments []models.ClassEnrollment
		ac.DB.Where("user_id = ?", user.ID).Find(&enrollments)
		for _, enrollment := range enrollments {
			if enrollment.AttendanceCount < 5 {
				var class models.OnlineClass
				if err := ac.DB.First(&class, enrollment.ClassID).Error; err != nil {
					continue
				}
				recommendations = append(recommendations,
					fmt.Sprintf("Attend more classes to improve your attendance in %s", class.Title))
			}
		}

		return c.JSON(fiber.Map{
			"recommendations": recommendations,
			"accuracy":        accuracy,
			"total_points":    user.Points,
		})
	}

	var classes []models.OnlineClass
	ac.DB.Where("teacher_id = ?", user.ID).Find(&classes)
	if len(classes) == 0 {
		recommendations = append(recommendations, "Create your first class to get started")
	} else {
		for _, class := range classes {
			var enrollmentCount int64
			ac.DB.Model(&models.ClassEnrollment{}).Where("class_id = ?", class.ID).Count(&enrollmentCount)
			if enrollmentCount < 2 {
				recommendations = append(recommendations,
					fmt.Sprintf("Invite more students to join %s", class.Title))
			}
			var quizCount int64
			ac.DB.Model(&models.Quiz{}).Where("class_id = ?", class.ID).Count(&quizCount)
			if quizCount < 3 {
				recommendations = append(recommendations,
					fmt.Sprintf("Add more quizzes to %s to engage students", class.Title))
			}
		}
	}

	return c.JSON(fiber.Map{
		"recommendations": recommendations,
		"total_points":    user.Points,
	})
}
