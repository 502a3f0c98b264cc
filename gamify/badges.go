package gamify

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Jahnavi-74/e-learning/models"
)

// AwardBadges grants every badge whose threshold the user's point total has
// crossed and which the user does not hold yet. It runs inside the caller's
// transaction; callers treat a failure as best-effort and never fail the
// surrounding request on it. Badges are never taken away.
func AwardBadges(tx *gorm.DB, user *models.User) error {
	var badges []models.Badge
	if err := tx.Order("points_required asc").Find(&badges).Error; err != nil {
		return err
	}

	var heldIDs []uint
	if err := tx.Model(&models.UserBadge{}).
		Where("user_id = ?", user.ID).
		Pluck("badge_id", &heldIDs).Error; err != nil {
		return err
	}
	held := make(map[uint]bool, len(heldIDs))
	for _, id := range heldIDs {
		held[id] = true
	}

	for _, badge := range badges {
		if held[badge.ID] || user.Points < badge.PointsRequired {
			continue
		}
		award := models.UserBadge{UserID: user.ID, BadgeID: badge.ID}
		if err := tx.Create(&award).Error; err != nil {
			// A concurrent request may have granted it first.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}
	}
	return nil
}
