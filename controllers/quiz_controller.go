package controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jahnavi-74/e-learning/config"
	"github.com/Jahnavi-74/e-learning/gamify"
	"github.com/Jahnavi-74/e-learning/middleware"
	"github.com/Jahnavi-74/e-learning/models"
	"github.com/Jahnavi-74/e-learning/utils"
)

type QuizController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewQuizController(db *gorm.DB, cfg *config.Config) *QuizController {
	return &QuizController{DB: db, Cfg: cfg}
}

type CreateQuizInput struct {
	ClassID       uint   `json:"class_id" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Question      string `json:"question" validate:"required"`
	OptionA       string `json:"option_a" validate:"required"`
	OptionB       string `json:"option_b" validate:"required"`
	OptionC       string `json:"option_c" validate:"required"`
	OptionD       string `json:"option_d" validate:"required"`
	CorrectAnswer string `json:"correct_answer" validate:"required"`
	Points        int    `json:"points"`
}

func (qc *QuizController) CreateQuiz(c *fiber.Ctx) error {
	var input CreateQuizInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	correct := strings.ToLower(strings.TrimSpace(input.CorrectAnswer))
	if correct != "a" && correct != "b" && correct != "c" && correct != "d" {
		return utils.BadRequest(c, "Correct answer must be a, b, c or d")
	}
	if input.Points <= 0 {
		input.Points = 10
	}

	quiz := models.Quiz{
		ClassID:       input.ClassID,
		Title:         input.Title,
		Question:      input.Question,
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		OptionD:       input.OptionD,
		CorrectAnswer: correct,
		Points:        input.Points,
	}
	if err := qc.DB.Create(&quiz).Error; err != nil {
		return utils.InternalServerError(c, "Could not create quiz")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Quiz created",
		"quiz_id": quiz.ID,
	})
}

// GetQuiz returns the quiz as a student sees it, without the correct answer.
func (qc *QuizController) GetQuiz(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid quiz ID")
	}

	var quiz models.Quiz
	if err := qc.DB.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Quiz not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"id":       quiz.ID,
		"title":    quiz.Title,
		"question": quiz.Question,
		"option_a": quiz.OptionA,
		"option_b": quiz.OptionB,
		"option_c": quiz.OptionC,
		"option_d": quiz.OptionD,
		"points":   quiz.Points,
	})
}

type SubmitQuizInput struct {
	QuizID uint   `json:"quiz_id" validate:"required"`
	Answer string `json:"answer" validate:"required"`
}

func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var input SubmitQuizInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var quiz models.Quiz
	if err := qc.DB.First(&quiz, input.QuizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Quiz not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Compare normalized, but keep the submission as the student typed it.
	normalized := strings.ToLower(strings.TrimSpace(input.Answer))
	isCorrect := normalized == strings.ToLower(quiz.CorrectAnswer)
	pointsEarned := 0
	if isCorrect {
		pointsEarned = quiz.Points
	}

	err := qc.DB.Transaction(func(tx *gorm.DB) error {
		response := models.QuizResponse{
			QuizID:       quiz.ID,
			UserID:       claims.UserID,
			Answer:       input.Answer,
			IsCorrect:    isCorrect,
			PointsEarned: pointsEarned,
		}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		if !isCorrect {
			return nil
		}
		user, err := addPoints(tx, claims.UserID, pointsEarned)
		if err != nil {
			return err
		}
		if err := gamify.AwardBadges(tx, user); err != nil {
			log.Printf("badge award failed for user %d: %v", user.ID, err)
		}
		return nil
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not submit quiz")
	}

	return c.JSON(fiber.Map{
		"message":        "Quiz submitted",
		"is_correct":     isCorrect,
		"points_earned":  pointsEarned,
		"correct_answer": quiz.CorrectAnswer,
	})
}
