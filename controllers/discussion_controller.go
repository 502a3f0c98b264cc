package controllers

import (
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

type DiscussionController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewDiscussionController(db *gorm.DB, cfg *config.Config) *DiscussionController {
	return &DiscussionController{DB: db, Cfg: cfg}
}

type CreatePostInput struct {
	ClassID  uint   `json:"class_id" validate:"required"`
	Content  string `json:"content" validate:"required"`
	ParentID *uint  `json:"parent_id"`
}

// CreatePost adds a top-level post or a reply. A reply's parent must itself
// be a top-level post, so threads stay one level deep.
func (dc *DiscussionController) CreatePost(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)

	var input CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(&input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if input.ParentID != nil {
		var parent models.DiscussionPost
		if err := dc.DB.First(&parent, *input.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound(c, "Parent post not found")
			}
			return utils.InternalServerError(c, "Could not query database")
		}
		if parent.ParentID != nil {
			return utils.BadRequest(c, "Replies to replies are not allowed")
		}
		if parent.ClassID != input.ClassID {
			return utils.BadRequest(c, "Parent post belongs to another class")
		}
	}

	post := models.DiscussionPost{
		ClassID:  input.ClassID,
		UserID:   claims.UserID,
		Content:  input.Content,
		ParentID: input.ParentID,
	}
	if err := dc.DB.Create(&post).Error; err != nil {
		return utils.InternalServerError(c, "Could not create post")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created",
		"post_id": post.ID,
	})
}

// GetPosts lists a class's top-level posts newest-first with their replies.
func (dc *DiscussionController) GetPosts(c *fiber.Ctx) error {
	classID, err := strconv.Atoi(c.Params("class_id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	var posts []models.DiscussionPost
	if err := dc.DB.Preload("User").Preload("Replies").Preload("Replies.User").
		Where("class_id = ? AND parent_id IS NULL", classID).
		Order("created_at desc").
		Find(&posts).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch posts")
	}

	result := make([]fiber.Map, 0, len(posts))
	for _, post := range posts {
		replies := make([]fiber.Map, 0, len(post.Replies))
		for _, reply := range post.Replies {
			replies = append(replies, fiber.Map{
				"id":         reply.ID,
				"username":   reply.User.Username,
				"content":    reply.Content,
				"created_at": reply.CreatedAt.Format(time.RFC3339),
			})
		}
		result = append(result, fiber.Map{
			"id":         post.ID,
			"username":   post.User.Username,
			"content":    post.Content,
			"created_at": post.CreatedAt.Format(time.RFC3339),
			"replies":    replies,
		})
	}

	return c.JSON(result)
}
