package controllers

import (
	"crypto/rand"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jahnavi-74/e-learning/config"
	"github.com/Jahnavi-74/e-learning/middleware"
	"github.com/Jahnavi-74/e-learning/models"
	"github.com/Jahnavi-74/e-learning/utils"
)

type ClassController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewClassController(db *gorm.DB, cfg *config.Config) *ClassController {
	return &ClassController{DB: db, Cfg: cfg}
}

const classCodeLength = 6
const classCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateClassCode produces a short join code, retrying while it collides
// with an existing class. The unique index on class_code is the backstop.
func generateClassCode(db *gorm.DB) (string, error) {
	// Largest multiple of the charset size below 256; bytes at or above it
	// are redrawn so every character is equally likely.
	maxUniform := byte(256 / len(classCodeCharset) * len(classCodeCharset))

	for attempt := 0; attempt < 10; attempt++ {
		buf := make([]byte, classCodeLength)
		for i := 0; i < classCodeLength; {
			var b [1]byte
			if _, err := rand.Read(b[:]); err != nil {
				return "", err
			}
			if b[0] >= maxUniform {
				continue
			}
			buf[i] = classCodeCharset[int(b[0])%len(classCodeCharset)]
			i++
		}
		code := string(buf)

		var count int64
		if err := db.Model(&models.OnlineClass{}).Where("class_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique class code")
}

type CreateClassInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var input CreateClassInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	code, err := generateClassCode(cc.DB)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate class code")
	}

	class := models.OnlineClass{
		Title:       input.Title,
		Description: input.Description,
		TeacherID:   claims.UserID,
		ClassCode:   code,
	}
	if err := cc.DB.Create(&class).Error; err != nil {
		return utils.InternalServerError(c, "Could not create class")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Class created",
		"class_id":   class.ID,
		"class_code": class.ClassCode,
	})
}

type JoinClassInput struct {
	ClassCode string `json:"class_code" validate:"required"`
}

func (cc *ClassController) JoinClass(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var input JoinClassInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var class models.OnlineClass
	if err := cc.DB.Where("class_code = ? AND is_active = ?", input.ClassCode, true).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Invalid class code")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var existing models.ClassEnrollment
	if err := cc.DB.Where("user_id = ? AND class_id = ?", claims.UserID, class.ID).First(&existing).Error; err == nil {
		return utils.BadRequest(c, "Already enrolled in this class")
	}

	enrollment := models.ClassEnrollment{
		UserID:  claims.UserID,
		ClassID: class.ID,
	}
	if err := cc.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.BadRequest(c, "Already enrolled in this class")
		}
		return utils.InternalServerError(c, "Could not enroll in class")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Successfully joined class",
		"class_id": class.ID,
	})
}

func (cc *ClassController) GetClass(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	classID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	var class models.OnlineClass
	if err := cc.DB.Preload("Teacher").First(&class, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Class not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Teachers see only their own classes, students only classes they joined.
	if claims.Role == models.RoleTeacher {
		if class.TeacherID != claims.UserID {
			return utils.Forbidden(c, "Unauthorized")
		}
	} else {
		var enrollment models.ClassEnrollment
		if err := cc.DB.Where("user_id = ? AND class_id = ?", claims.UserID, class.ID).First(&enrollment).Error; err != nil {
			return utils.Forbidden(c, "Not enrolled in this class")
		}
	}

	var quizzes []models.Quiz
	cc.DB.Where("class_id = ?", class.ID).Find(&quizzes)
	var polls []models.Poll
	cc.DB.Where("class_id = ?", class.ID).Find(&polls)
	var challenges []models.Challenge
	cc.DB.Where("class_id = ?", class.ID).Find(&challenges)
	var enrollmentCount int64
	cc.DB.Model(&models.ClassEnrollment{}).Where("class_id = ?", class.ID).Count(&enrollmentCount)

	quizList := make([]fiber.Map, 0, len(quizzes))
	for _, q := range quizzes {
		quizList = append(quizList, fiber.Map{
			"id":       q.ID,
			"title":    q.Title,
			"question": q.Question,
			"points":   q.Points,
		})
	}
	pollList := make([]fiber.Map, 0, len(polls))
	for _, p := range polls {
		pollList = append(pollList, fiber.Map{
			"id":       p.ID,
			"question": p.Question,
			"points":   p.Points,
		})
	}
	challengeList := make([]fiber.Map, 0, len(challenges))
	for _, ch := range challenges {
		challengeList = append(challengeList, fiber.Map{
			"id":          ch.ID,
			"title":       ch.Title,
			"description": ch.Description,
			"points":      ch.Points,
		})
	}

	return c.JSON(fiber.Map{
		"id":          class.ID,
		"title":       class.Title,
		"description": class.Description,
		"class_code":  class.ClassCode,
		"teacher":     class.Teacher.Username,
		"quizzes":     quizList,
		"polls":       pollList,
		"challenges":  challengeList,
		"enrollments": enrollmentCount,
		"is_teacher":  claims.Role == models.RoleTeacher,
	})
}

type AttendanceInput struct {
	ClassID uint `json:"class_id" validate:"required"`
}

func (cc *ClassController) MarkAttendance(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var input AttendanceInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var enrollment models.ClassEnrollment
	if err := cc.DB.Where("user_id = ? AND class_id = ?", claims.UserID, input.ClassID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Not enrolled in this class")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	now := time.Now().UTC()
	enrollment.AttendanceCount++
	enrollment.LastAttended = &now
	if err := cc.DB.Save(&enrollment).Error; err != nil {
		return utils.InternalServerError(c, "Could not mark attendance")
	}

	return c.JSON(fiber.Map{
		"message":          "Attendance marked",
		"attendance_count": enrollment.AttendanceCount,
	})
}
