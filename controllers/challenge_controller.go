package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jahnavi-74/e-learning/config"
	"github.com/Jahnavi-74/e-learning/gamify"
	"github.com/Jahnavi-74/e-learning/middleware"
	"github.com/Jahnavi-74/e-learning/models"
	"github.com/Jahnavi-74/e-learning/utils"
)

type ChallengeController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewChallengeController(db *gorm.DB, cfg *config.Config) *ChallengeController {
	return &ChallengeController{DB: db, Cfg: cfg}
}

type CreateChallengeInput struct {
	ClassID       uint   `json:"class_id" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
	ChallengeType string `json:"challenge_type" validate:"omitempty,oneof=quick daily weekly"`
	Points        int    `json:"points"`
	DueDate       string `json:"due_date"`
}

func (cc *ChallengeController) CreateChallenge(c *fiber.Ctx) error {
	var input CreateChallengeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	if input.ChallengeType == "" {
		input.ChallengeType = "quick"
	}
	if input.Points <= 0 {
		input.Points = 20
	}

	var dueDate *time.Time
	if input.DueDate != "" {
		parsed, err := parseDueDate(input.DueDate)
		if err != nil {
			return utils.BadRequest(c, "Invalid due date, use RFC3339 or YYYY-MM-DD")
		}
		dueDate = &parsed
	}

	challenge := models.Challenge{
		ClassID:       input.ClassID,
		Title:         input.Title,
		Description:   input.Description,
		ChallengeType: input.ChallengeType,
		Points:        input.Points,
		DueDate:       dueDate,
	}
	if err := cc.DB.Create(&challenge).Error; err != nil {
		return utils.InternalServerError(c, "Could not create challenge")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Challenge created",
		"challenge_id": challenge.ID,
	})
}

func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (cc *ChallengeController) GetChallenge(c *fiber.Ctx) error {
	challengeID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid challenge ID")
	}

	var challenge models.Challenge
	if err := cc.DB.First(&challenge, challengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Challenge not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var dueDate interface{}
	if challenge.DueDate != nil {
		dueDate = challenge.DueDate.Format(time.RFC3339)
	}

	return c.JSON(fiber.Map{
		"id":             challenge.ID,
		"title":          challenge.Title,
		"description":    challenge.Description,
		"challenge_type": challenge.ChallengeType,
		"points":         challenge.Points,
		"due_date":       dueDate,
	})
}

type SubmitChallengeInput struct {
	ChallengeID uint   `json:"challenge_id" validate:"required"`
	Submission  string `json:"submission"`
}

// SubmitChallenge marks the challenge completed and awards its full points.
// Completion is self-reported; there is no correctness check.
func (cc *ChallengeController) SubmitChallenge(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var input SubmitChallengeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var challenge models.Challenge
	if err := cc.DB.First(&challenge, input.ChallengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Challenge not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		response := models.ChallengeResponse{
			ChallengeID:  challenge.ID,
			UserID:       claims.UserID,
			Submission:   input.Submission,
			PointsEarned: challenge.Points,
			IsCompleted:  true,
		}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		user, err := addPoints(tx, claims.UserID, challenge.Points)
		if err != nil {
			return err
		}
		if err := gamify.AwardBadges(tx, user); err != nil {
			log.Printf("badge award failed for user %d: %v", user.ID, err)
		}
		return nil
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not submit challenge")
	}

	return c.JSON(fiber.Map{
		"message":       "Challenge submitted",
		"points_earned": challenge.Points,
	})
}
