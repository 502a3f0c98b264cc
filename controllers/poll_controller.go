package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jahnavi-74/e-learning/config"
	"github.com/Jahnavi-74/e-learning/gamify"
	"github.com/Jahnavi-74/e-learning/middleware"
	"github.com/Jahnavi-74/e-learning/models"
	"github.com/Jahnavi-74/e-learning/utils"
)

type PollController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPollController(db *gorm.DB, cfg *config.Config) *PollController {
	return &PollController{DB: db, Cfg: cfg}
}

type CreatePollInput struct {
	ClassID  uint   `json:"class_id" validate:"required"`
	Question string `json:"question" validate:"required"`
	Option1  string `json:"option_1" validate:"required"`
	Option2  string `json:"option_2" validate:"required"`
	Option3  string `json:"option_3"`
	Option4  string `json:"option_4"`
	Points   int    `json:"points"`
}

func (pc *PollController) CreatePoll(c *fiber.Ctx) error {
	var input CreatePollInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	if input.Points <= 0 {
		input.Points = 5
	}

	poll := models.Poll{
		ClassID:  input.ClassID,
		Question: input.Question,
		Option1:  input.Option1,
		Option2:  input.Option2,
		Option3:  input.Option3,
		Option4:  input.Option4,
		Points:   input.Points,
	}
	if err := pc.DB.Create(&poll).Error; err != nil {
		return utils.InternalServerError(c, "Could not create poll")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Poll created",
		"poll_id": poll.ID,
	})
}

func (pc *PollController) GetPoll(c *fiber.Ctx) error {
	pollID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid poll ID")
	}

	var poll models.Poll
	if err := pc.DB.First(&poll, pollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Poll not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"id":       poll.ID,
		"question": poll.Question,
		"option_1": poll.Option1,
		"option_2": poll.Option2,
		"option_3": poll.Option3,
		"option_4": poll.Option4,
		"points":   poll.Points,
	})
}

type SubmitPollInput struct {
	PollID         uint `json:"poll_id" validate:"required"`
	SelectedOption int  `json:"selected_option" validate:"required,min=1,max=4"`
}

// SubmitPoll records a vote and awards the poll's points. The second vote
// from the same user is a 400, whether it loses the pre-check or the
// composite unique index.
func (pc *PollController) SubmitPoll(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var input SubmitPollInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var poll models.Poll
	if err := pc.DB.First(&poll, input.PollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Poll not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var existing models.PollResponse
	if err := pc.DB.Where("poll_id = ? AND user_id = ?", poll.ID, claims.UserID).First(&existing).Error; err == nil {
		return utils.BadRequest(c, "Already responded to this poll")
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		response := models.PollResponse{
			PollID:         poll.ID,
			UserID:         claims.UserID,
			SelectedOption: input.SelectedOption,
			PointsEarned:   poll.Points,
		}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		user, err := addPoints(tx, claims.UserID, poll.Points)
		if err != nil {
			return err
		}
		if err := gamify.AwardBadges(tx, user); err != nil {
			log.Printf("badge award failed for user %d: %v", user.ID, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.BadRequest(c, "Already responded to this poll")
		}
		return utils.InternalServerError(c, "Could not submit poll")
	}

	return c.JSON(fiber.Map{
		"message":       "Poll submitted",
		"points_earned": poll.Points,
	})
}
